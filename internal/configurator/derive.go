package configurator

import (
	"errors"
	"sort"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ErrIncompleteSelection 仅在没有任何档位可解析时返回。
// 其余不完整/陈旧状态一律静默降级，保证编辑中途仍有可用报价。
var ErrIncompleteSelection = errors.New("selection has no variant")

// 摘要条目类型常量
const (
	SummaryKindVariant   = "variant"
	SummaryKindOption    = "option"
	SummaryKindFeature   = "feature"
	SummaryKindAccessory = "accessory"
)

// SummaryItem 展示摘要条目：标签与解析后的取值的投影，不携带派生状态
type SummaryItem struct {
	Kind  string           `json:"kind"`
	Label string           `json:"label"`
	Value string           `json:"value"`
	Price *decimal.Decimal `json:"price,omitempty"`
	Fixed bool             `json:"fixed,omitempty"`
}

// Result 推导结果
type Result struct {
	TotalPrice decimal.Decimal
	PartCode   string
	Summary    []SummaryItem
}

// Derive 纯推导入口：目录快照 + 选择状态 -> 总价 / 型号编码 / 摘要。
// 不修改任何输入；相同输入恒产出相同结果。
// 陈旧的选项/配件引用按条跳过而不是整体失败。
func Derive(snap *Snapshot, sel *Selection) (*Result, error) {
	if snap == nil || sel == nil {
		return nil, ErrIncompleteSelection
	}
	variant := snap.VariantByID(sel.VariantID)
	if variant == nil {
		return nil, ErrIncompleteSelection
	}

	total := variant.BasePrice
	summary := make([]SummaryItem, 0, len(snap.Categories)+len(snap.Features)+len(snap.Accessories)+1)
	basePrice := variant.BasePrice
	summary = append(summary, SummaryItem{
		Kind:  SummaryKindVariant,
		Label: variant.Name,
		Value: variant.PartCodeSuffix,
		Price: &basePrice,
	})

	// 按目录展示顺序遍历配置轴，保证摘要与价格累加与用户选择顺序无关
	for i := range snap.Categories {
		category := &snap.Categories[i]
		optionID, chosen := sel.Options[category.Name]
		if !chosen {
			continue
		}
		option := category.OptionByID(optionID)
		if option == nil {
			// 陈旧选项ID，按未选处理
			continue
		}
		total = total.Add(option.PriceModifier)
		modifier := option.PriceModifier
		summary = append(summary, SummaryItem{
			Kind:  SummaryKindOption,
			Label: category.Label,
			Value: option.Label,
			Price: &modifier,
		})
	}

	for i := range snap.Features {
		feature := &snap.Features[i]
		value, chosen := sel.FeatureValues[feature.Name]
		if !chosen || value == "" {
			continue
		}
		display := value
		if feature.Configurable && value == ValueCustom {
			display = sel.CustomText(feature.Name)
			if display == "" {
				display = ValueCustom
			}
		}
		summary = append(summary, SummaryItem{
			Kind:  SummaryKindFeature,
			Label: feature.Label,
			Value: display,
			Fixed: !feature.Configurable,
		})
	}

	for i := range snap.Accessories {
		accessory := &snap.Accessories[i]
		if !sel.Accessories[accessory.ID] {
			continue
		}
		total = total.Add(accessory.Price)
		price := accessory.Price
		summary = append(summary, SummaryItem{
			Kind:  SummaryKindAccessory,
			Label: accessory.Name,
			Value: accessory.PartCode,
			Price: &price,
		})
	}

	return &Result{
		TotalPrice: total,
		PartCode:   buildPartCode(snap, sel, variant),
		Summary:    summary,
	}, nil
}

// buildPartCode 按固定顺序拼接型号编码：
// 基础编码、档位后缀、配置轴选项后缀（按 part_code_position 顺序）、
// 可配置特性字母前缀 token，空片段省略，单连字符连接。
func buildPartCode(snap *Snapshot, sel *Selection, variant *Variant) string {
	fragments := []string{snap.Product.BasePartCode, variant.PartCodeSuffix}

	positioned := make([]*Category, 0, len(snap.Categories))
	for i := range snap.Categories {
		if snap.Categories[i].PartCodePosition > 0 {
			positioned = append(positioned, &snap.Categories[i])
		}
	}
	sort.SliceStable(positioned, func(i, j int) bool {
		if positioned[i].PartCodePosition != positioned[j].PartCodePosition {
			return positioned[i].PartCodePosition < positioned[j].PartCodePosition
		}
		return positioned[i].DisplayOrder < positioned[j].DisplayOrder
	})
	for _, category := range positioned {
		optionID, chosen := sel.Options[category.Name]
		if !chosen {
			continue
		}
		option := category.OptionByID(optionID)
		if option == nil {
			continue
		}
		fragments = append(fragments, option.PartCodeSuffix)
	}

	for i := range snap.Features {
		fragments = append(fragments, featureToken(&snap.Features[i], sel))
	}

	return joinFragments(fragments)
}

// featureToken 生成特性的型号编码 token：前缀字母 + 归一化取值。
// 固定特性、N/A 取值与空 CUSTOM 文本都不产出 token。
func featureToken(feature *Feature, sel *Selection) string {
	if !feature.Configurable {
		return ""
	}
	value, chosen := sel.FeatureValues[feature.Name]
	if !chosen || value == "" || value == ValueNotApplicable {
		return ""
	}
	if value == ValueCustom {
		value = sel.CustomText(feature.Name)
	}
	normalized := NormalizeToken(value)
	if normalized == "" {
		return ""
	}
	return featureCodeLetter(feature) + normalized
}

func featureCodeLetter(feature *Feature) string {
	letter := strings.TrimSpace(feature.CodeLetter)
	if letter != "" {
		return strings.ToUpper(letter)
	}
	// 目录未显式配置字母时回退到展示名首字母
	label := strings.TrimSpace(feature.Label)
	if label == "" {
		return ""
	}
	return strings.ToUpper(label[:1])
}

// NormalizeToken 归一化编码片段：转大写并去除所有空白字符
func NormalizeToken(value string) string {
	var b strings.Builder
	for _, r := range value {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// joinFragments 省略空片段后用单连字符连接。
// 目录数据中的后缀可能自带前导连字符（如 "-A"），连接前先剥掉，
// 避免产出双连字符。
func joinFragments(fragments []string) string {
	parts := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		cleaned := strings.Trim(strings.TrimSpace(fragment), "-")
		if cleaned == "" {
			continue
		}
		parts = append(parts, cleaned)
	}
	return strings.Join(parts, "-")
}
