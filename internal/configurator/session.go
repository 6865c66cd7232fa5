package configurator

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrNoSnapshot 会话尚未完成任何一次目录加载
	ErrNoSnapshot = errors.New("session has no catalog snapshot")
	// ErrLoadSuperseded 本次加载结果已被更新的加载请求覆盖
	ErrLoadSuperseded = errors.New("catalog load superseded by newer request")
	// ErrProductMismatch 加载器返回的快照与请求的产品不一致
	ErrProductMismatch = errors.New("snapshot product does not match requested product")
)

// Loader 目录快照加载函数，由调用方注入（通常包装仓储查询）
type Loader func(ctx context.Context, productID uint) (*Snapshot, error)

// Session 单个配置会话：持有当前目录快照与选择状态。
// 并发安全；Load 遵循"最后请求胜出"——旧的在途加载被取消，
// 迟到的结果被丢弃，不会覆盖更新的快照。
type Session struct {
	loader Loader

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	productID  uint
	snapshot   *Snapshot
	selection  *Selection
}

// NewSession 创建空会话
func NewSession(loader Loader) *Session {
	return &Session{loader: loader}
}

// Load 加载指定产品的目录并重置选择状态为该目录的默认值。
// 若加载期间又发起了新的 Load，本次结果被丢弃并返回 ErrLoadSuperseded。
func (s *Session) Load(ctx context.Context, productID uint) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	loadCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.generation++
	generation := s.generation
	s.mu.Unlock()

	snap, err := s.loader(loadCtx, productID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return ErrLoadSuperseded
	}
	if err != nil {
		return err
	}
	if snap == nil || snap.Product.ID != productID {
		return ErrProductMismatch
	}
	snap.Normalize()
	selection := NewSelection()
	selection.Initialize(snap)
	s.productID = productID
	s.snapshot = snap
	s.selection = selection
	return nil
}

// Snapshot 返回当前目录快照，未加载时为 nil
func (s *Session) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// Selection 返回当前选择状态的副本
func (s *Session) Selection() *Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selection == nil {
		return nil
	}
	return s.selection.Clone()
}

// SelectVariant 切换档位
func (s *Session) SelectVariant(variantID uint) error {
	return s.mutate(func(snap *Snapshot, sel *Selection) error {
		return sel.SelectVariant(snap, variantID)
	})
}

// SelectOption 在指定配置轴上选择选项
func (s *Session) SelectOption(categoryName string, optionID uint) error {
	return s.mutate(func(snap *Snapshot, sel *Selection) error {
		return sel.SelectOption(snap, categoryName, optionID)
	})
}

// ToggleAccessory 切换配件选中状态
func (s *Session) ToggleAccessory(accessoryID uint) error {
	return s.mutate(func(snap *Snapshot, sel *Selection) error {
		return sel.ToggleAccessory(snap, accessoryID)
	})
}

// SetFeatureValue 设置可配置特性取值
func (s *Session) SetFeatureValue(featureName, value string) error {
	return s.mutate(func(snap *Snapshot, sel *Selection) error {
		return sel.SetFeatureValue(snap, featureName, value)
	})
}

// SetCustomFeatureText 设置 CUSTOM 特性的自定义文本
func (s *Session) SetCustomFeatureText(featureName, text string) error {
	return s.mutate(func(snap *Snapshot, sel *Selection) error {
		return sel.SetCustomFeatureText(snap, featureName, text)
	})
}

// Derive 基于当前快照与选择状态推导报价
func (s *Session) Derive() (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return nil, ErrNoSnapshot
	}
	return Derive(s.snapshot, s.selection)
}

func (s *Session) mutate(fn func(*Snapshot, *Selection) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return ErrNoSnapshot
	}
	return fn(s.snapshot, s.selection)
}
