package configurator

import (
	"errors"
	"strings"
)

// 选择状态校验错误。区别于 Derive 对陈旧引用的静默忽略：
// 变更器在进入引擎之前就拒绝非法输入。
var (
	ErrVariantUnknown      = errors.New("variant not found in catalog")
	ErrCategoryUnknown     = errors.New("configuration category not found in catalog")
	ErrOptionUnknown       = errors.New("option not found in category")
	ErrAccessoryUnknown    = errors.New("accessory not found in catalog")
	ErrFeatureUnknown      = errors.New("configurable feature not found in catalog")
	ErrFeatureFixed        = errors.New("feature is fixed and not user-editable")
	ErrFeatureValueInvalid = errors.New("value not in feature enumeration")
	ErrFeatureNotCustom    = errors.New("feature value is not CUSTOM")
)

// Selection 一次配置会话的选择状态。
// 整个会话只有一份，作为显式可序列化结构传给推导引擎。
type Selection struct {
	VariantID     uint
	Options       map[string]uint   // 配置轴标识 -> 选项ID
	Accessories   map[uint]bool     // 已选配件ID集合
	FeatureValues map[string]string // 特性标识 -> 已选值（枚举值、CUSTOM 或固定值）
	CustomTexts   map[string]string // 特性标识 -> CUSTOM 自由文本（原文，未归一化）
}

// NewSelection 创建空的选择状态
func NewSelection() *Selection {
	return &Selection{
		Options:       make(map[string]uint),
		Accessories:   make(map[uint]bool),
		FeatureValues: make(map[string]string),
		CustomTexts:   make(map[string]string),
	}
}

// Clone 深拷贝选择状态
func (s *Selection) Clone() *Selection {
	if s == nil {
		return NewSelection()
	}
	clone := NewSelection()
	clone.VariantID = s.VariantID
	for k, v := range s.Options {
		clone.Options[k] = v
	}
	for k, v := range s.Accessories {
		clone.Accessories[k] = v
	}
	for k, v := range s.FeatureValues {
		clone.FeatureValues[k] = v
	}
	for k, v := range s.CustomTexts {
		clone.CustomTexts[k] = v
	}
	return clone
}

// Initialize 在目录快照可用后应用一次默认值：
// 未选档位时取展示顺序第一个档位；每个配置轴取 is_default 选项（没有则留空）；
// 每个特性取目录默认值（固定特性恒为其固定值）。
func (s *Selection) Initialize(snap *Snapshot) {
	if s == nil || snap == nil {
		return
	}
	if s.VariantID == 0 && len(snap.Variants) > 0 {
		s.VariantID = snap.Variants[0].ID
	}
	for i := range snap.Categories {
		category := &snap.Categories[i]
		if _, chosen := s.Options[category.Name]; chosen {
			continue
		}
		for j := range category.Options {
			if category.Options[j].IsDefault {
				s.Options[category.Name] = category.Options[j].ID
				break
			}
		}
	}
	for i := range snap.Features {
		feature := &snap.Features[i]
		if !feature.Configurable {
			s.FeatureValues[feature.Name] = feature.DefaultValue
			delete(s.CustomTexts, feature.Name)
			continue
		}
		if _, chosen := s.FeatureValues[feature.Name]; chosen {
			continue
		}
		value := feature.DefaultValue
		if value == "" && len(feature.Values) > 0 {
			value = feature.Values[0]
		}
		if value != "" {
			s.FeatureValues[feature.Name] = value
		}
	}
}

// SelectVariant 切换档位，档位必须属于当前产品
func (s *Selection) SelectVariant(snap *Snapshot, variantID uint) error {
	if snap.VariantByID(variantID) == nil {
		return ErrVariantUnknown
	}
	s.VariantID = variantID
	return nil
}

// SelectOption 在配置轴内单选，新的选择静默替换旧的
func (s *Selection) SelectOption(snap *Snapshot, categoryName string, optionID uint) error {
	category := snap.CategoryByName(categoryName)
	if category == nil {
		return ErrCategoryUnknown
	}
	if category.OptionByID(optionID) == nil {
		return ErrOptionUnknown
	}
	s.Options[categoryName] = optionID
	return nil
}

// ToggleAccessory 翻转配件选中状态，未知配件直接拒绝
func (s *Selection) ToggleAccessory(snap *Snapshot, accessoryID uint) error {
	if snap.AccessoryByID(accessoryID) == nil {
		return ErrAccessoryUnknown
	}
	if s.Accessories[accessoryID] {
		delete(s.Accessories, accessoryID)
	} else {
		s.Accessories[accessoryID] = true
	}
	return nil
}

// SetFeatureValue 设置特性取值。
// 固定特性不可编辑；取值必须在枚举集合内或为 CUSTOM 哨兵。
// 任何取值切换都会清掉已存的自由文本，等待用户重新输入。
func (s *Selection) SetFeatureValue(snap *Snapshot, featureName, value string) error {
	feature := snap.FeatureByName(featureName)
	if feature == nil {
		return ErrFeatureUnknown
	}
	if !feature.Configurable {
		return ErrFeatureFixed
	}
	if value != ValueCustom && value != ValueNotApplicable && !feature.HasValue(value) {
		return ErrFeatureValueInvalid
	}
	s.FeatureValues[featureName] = value
	delete(s.CustomTexts, featureName)
	return nil
}

// SetCustomFeatureText 设置 CUSTOM 自由文本，仅在当前取值为 CUSTOM 时有效。
// 存储原文，归一化推迟到推导阶段。
func (s *Selection) SetCustomFeatureText(snap *Snapshot, featureName, text string) error {
	feature := snap.FeatureByName(featureName)
	if feature == nil {
		return ErrFeatureUnknown
	}
	if !feature.Configurable {
		return ErrFeatureFixed
	}
	if s.FeatureValues[featureName] != ValueCustom {
		return ErrFeatureNotCustom
	}
	s.CustomTexts[featureName] = text
	return nil
}

// CustomText 返回特性的自由文本（去除首尾空白后为空时视为未填写）
func (s *Selection) CustomText(featureName string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(s.CustomTexts[featureName])
}
