package configurator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func newSessionSnapshot(productID uint, code string) *Snapshot {
	return &Snapshot{
		Product: Product{ID: productID, BasePartCode: code},
		Variants: []Variant{
			{ID: productID*10 + 1, Name: "Std", PartCodeSuffix: "-S", BasePrice: decimal.NewFromInt(int64(productID) * 10), DisplayOrder: 1},
		},
	}
}

func TestSessionLoadAndDerive(t *testing.T) {
	session := NewSession(func(ctx context.Context, productID uint) (*Snapshot, error) {
		return newSessionSnapshot(productID, "DL100"), nil
	})

	if _, err := session.Derive(); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("expected no snapshot error before load, got %v", err)
	}
	if err := session.Load(context.Background(), 1); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	result, err := session.Derive()
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	if result.PartCode != "DL100-S" {
		t.Fatalf("unexpected part code: %s", result.PartCode)
	}
}

func TestSessionLoadLastRequestWins(t *testing.T) {
	release := make(chan struct{})
	session := NewSession(func(ctx context.Context, productID uint) (*Snapshot, error) {
		if productID == 1 {
			// 模拟慢查询：等到第二次加载完成后才返回
			select {
			case <-release:
			case <-time.After(5 * time.Second):
			}
			return newSessionSnapshot(1, "SLOW"), nil
		}
		return newSessionSnapshot(2, "FAST"), nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	slowErr := make(chan error, 1)
	go func() {
		defer wg.Done()
		slowErr <- session.Load(context.Background(), 1)
	}()

	// 等慢加载进入 loader 后发起第二次加载
	time.Sleep(20 * time.Millisecond)
	if err := session.Load(context.Background(), 2); err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	close(release)
	wg.Wait()

	if err := <-slowErr; !errors.Is(err, ErrLoadSuperseded) {
		t.Fatalf("expected superseded error for stale load, got %v", err)
	}
	snap := session.Snapshot()
	if snap == nil || snap.Product.BasePartCode != "FAST" {
		t.Fatalf("session holds stale snapshot")
	}
}

func TestSessionLoadResetsSelection(t *testing.T) {
	session := NewSession(func(ctx context.Context, productID uint) (*Snapshot, error) {
		return newSessionSnapshot(productID, "DL100"), nil
	})
	if err := session.Load(context.Background(), 1); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := session.SelectVariant(11); err != nil {
		t.Fatalf("select variant failed: %v", err)
	}

	if err := session.Load(context.Background(), 2); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	sel := session.Selection()
	if sel == nil || sel.VariantID != 21 {
		t.Fatalf("selection not reset to new catalog defaults: %+v", sel)
	}
}

func TestSessionLoadRejectsMismatchedSnapshot(t *testing.T) {
	session := NewSession(func(ctx context.Context, productID uint) (*Snapshot, error) {
		return newSessionSnapshot(productID+1, "WRONG"), nil
	})
	if err := session.Load(context.Background(), 1); !errors.Is(err, ErrProductMismatch) {
		t.Fatalf("expected product mismatch error, got %v", err)
	}
}

func TestSessionLoadPropagatesLoaderError(t *testing.T) {
	boom := errors.New("catalog backend down")
	session := NewSession(func(ctx context.Context, productID uint) (*Snapshot, error) {
		return nil, boom
	})
	if err := session.Load(context.Background(), 1); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if session.Snapshot() != nil {
		t.Fatalf("failed load should not install a snapshot")
	}
}
