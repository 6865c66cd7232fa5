package configurator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func newDownlightSnapshot(t *testing.T) *Snapshot {
	t.Helper()

	snap := &Snapshot{
		Product: Product{ID: 1, Name: "Orbit Downlight", BasePartCode: "DL100"},
		Variants: []Variant{
			{ID: 11, Name: "2000lm", PartCodeSuffix: "-A", BasePrice: decimal.RequireFromString("50.00"), DisplayOrder: 1},
			{ID: 12, Name: "3000lm", PartCodeSuffix: "-B", BasePrice: decimal.RequireFromString("72.50"), DisplayOrder: 2},
		},
		Categories: []Category{
			{
				Name:             "beam_angle",
				Label:            "Beam Angle",
				PartCodePosition: 1,
				IsRequired:       true,
				DisplayOrder:     1,
				Options: []Option{
					{ID: 101, Value: "narrow", Label: "Narrow 24°", PartCodeSuffix: "-N", PriceModifier: decimal.RequireFromString("5.00"), IsDefault: true, DisplayOrder: 1},
					{ID: 102, Value: "wide", Label: "Wide 60°", PartCodeSuffix: "-W", PriceModifier: decimal.Zero, DisplayOrder: 2},
				},
			},
			{
				Name:             "mounting",
				Label:            "Mounting",
				PartCodePosition: 0,
				DisplayOrder:     2,
				Options: []Option{
					{ID: 111, Value: "recessed", Label: "Recessed", PriceModifier: decimal.RequireFromString("2.25"), DisplayOrder: 1},
				},
			},
		},
		Features: []Feature{
			{Name: "housing_colour", Label: "Housing Colour", CodeLetter: "H", Configurable: true, DefaultValue: "BLACK", Values: []string{"BLACK", "WHITE"}, DisplayOrder: 1},
			{Name: "driver", Label: "Driver", Configurable: false, DefaultValue: "INTEGRAL", DisplayOrder: 2},
		},
		Accessories: []Accessory{
			{ID: 201, Name: "Honeycomb Louvre", PartCode: "HC-01", Price: decimal.RequireFromString("10.00")},
			{ID: 202, Name: "Spread Lens", PartCode: "SL-02", Price: decimal.RequireFromString("3.10")},
		},
	}
	snap.Normalize()
	return snap
}

func newInitializedSelection(t *testing.T, snap *Snapshot) *Selection {
	t.Helper()

	sel := NewSelection()
	sel.Initialize(snap)
	return sel
}

func TestDeriveBaseVariantWithOptionAndAccessory(t *testing.T) {
	snap := newDownlightSnapshot(t)
	sel := newInitializedSelection(t, snap)
	if err := sel.ToggleAccessory(snap, 201); err != nil {
		t.Fatalf("toggle accessory failed: %v", err)
	}

	result, err := Derive(snap, sel)
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	if got := result.TotalPrice.StringFixed(2); got != "65.00" {
		t.Fatalf("expected total 65.00, got %s", got)
	}
	if result.PartCode != "DL100-A-N-HBLACK" {
		t.Fatalf("unexpected part code: %s", result.PartCode)
	}
}

func TestDerivePartCodeWithoutFeatureToken(t *testing.T) {
	snap := newDownlightSnapshot(t)
	sel := newInitializedSelection(t, snap)
	if err := sel.SetFeatureValue(snap, "housing_colour", ValueNotApplicable); err != nil {
		t.Fatalf("set feature value failed: %v", err)
	}

	result, err := Derive(snap, sel)
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	if result.PartCode != "DL100-A-N" {
		t.Fatalf("unexpected part code: %s", result.PartCode)
	}
}

func TestDeriveCustomFeatureTextNormalized(t *testing.T) {
	snap := newDownlightSnapshot(t)
	sel := newInitializedSelection(t, snap)
	if err := sel.SetFeatureValue(snap, "housing_colour", ValueCustom); err != nil {
		t.Fatalf("set feature value failed: %v", err)
	}
	if err := sel.SetCustomFeatureText(snap, "housing_colour", "royal blue"); err != nil {
		t.Fatalf("set custom text failed: %v", err)
	}

	result, err := Derive(snap, sel)
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	if result.PartCode != "DL100-A-N-HROYALBLUE" {
		t.Fatalf("unexpected part code: %s", result.PartCode)
	}
}

func TestDeriveEmptyCustomTextOmitsToken(t *testing.T) {
	snap := newDownlightSnapshot(t)
	sel := newInitializedSelection(t, snap)
	if err := sel.SetFeatureValue(snap, "housing_colour", ValueCustom); err != nil {
		t.Fatalf("set feature value failed: %v", err)
	}
	if err := sel.SetCustomFeatureText(snap, "housing_colour", "   "); err != nil {
		t.Fatalf("set custom text failed: %v", err)
	}

	result, err := Derive(snap, sel)
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	if result.PartCode != "DL100-A-N" {
		t.Fatalf("unexpected part code: %s", result.PartCode)
	}
}

func TestDeriveFixedFeatureProducesNoToken(t *testing.T) {
	snap := newDownlightSnapshot(t)
	sel := newInitializedSelection(t, snap)
	if err := sel.SetFeatureValue(snap, "housing_colour", ValueNotApplicable); err != nil {
		t.Fatalf("set feature value failed: %v", err)
	}

	result, err := Derive(snap, sel)
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	// driver 特性固定为 INTEGRAL，但不应出现在型号编码里
	if result.PartCode != "DL100-A-N" {
		t.Fatalf("fixed feature leaked into part code: %s", result.PartCode)
	}
	found := false
	for _, item := range result.Summary {
		if item.Kind == SummaryKindFeature && item.Label == "Driver" {
			found = true
			if !item.Fixed {
				t.Fatalf("driver summary item should be marked fixed")
			}
			if item.Value != "INTEGRAL" {
				t.Fatalf("unexpected driver value: %s", item.Value)
			}
		}
	}
	if !found {
		t.Fatalf("fixed feature missing from summary")
	}
}

func TestDeriveStaleReferencesSkipped(t *testing.T) {
	snap := newDownlightSnapshot(t)
	sel := newInitializedSelection(t, snap)
	sel.Options["beam_angle"] = 999
	sel.Options["finish"] = 101
	sel.Accessories[888] = true
	if err := sel.SetFeatureValue(snap, "housing_colour", ValueNotApplicable); err != nil {
		t.Fatalf("set feature value failed: %v", err)
	}

	result, err := Derive(snap, sel)
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	if got := result.TotalPrice.StringFixed(2); got != "50.00" {
		t.Fatalf("expected stale references skipped, got total %s", got)
	}
	if result.PartCode != "DL100-A" {
		t.Fatalf("unexpected part code: %s", result.PartCode)
	}
}

func TestDeriveWithoutVariantFails(t *testing.T) {
	snap := newDownlightSnapshot(t)
	sel := NewSelection()
	sel.Options["beam_angle"] = 101

	if _, err := Derive(snap, sel); !errors.Is(err, ErrIncompleteSelection) {
		t.Fatalf("expected incomplete selection error, got %v", err)
	}
}

func TestDeriveSelectionOrderInvariant(t *testing.T) {
	snap := newDownlightSnapshot(t)

	first := newInitializedSelection(t, snap)
	if err := first.SelectOption(snap, "beam_angle", 102); err != nil {
		t.Fatalf("select option failed: %v", err)
	}
	if err := first.ToggleAccessory(snap, 202); err != nil {
		t.Fatalf("toggle accessory failed: %v", err)
	}
	if err := first.ToggleAccessory(snap, 201); err != nil {
		t.Fatalf("toggle accessory failed: %v", err)
	}

	second := newInitializedSelection(t, snap)
	if err := second.ToggleAccessory(snap, 201); err != nil {
		t.Fatalf("toggle accessory failed: %v", err)
	}
	if err := second.ToggleAccessory(snap, 202); err != nil {
		t.Fatalf("toggle accessory failed: %v", err)
	}
	if err := second.SelectOption(snap, "beam_angle", 102); err != nil {
		t.Fatalf("select option failed: %v", err)
	}

	resultA, err := Derive(snap, first)
	if err != nil {
		t.Fatalf("derive first failed: %v", err)
	}
	resultB, err := Derive(snap, second)
	if err != nil {
		t.Fatalf("derive second failed: %v", err)
	}
	if !resultA.TotalPrice.Equal(resultB.TotalPrice) {
		t.Fatalf("totals differ: %s vs %s", resultA.TotalPrice, resultB.TotalPrice)
	}
	if resultA.PartCode != resultB.PartCode {
		t.Fatalf("part codes differ: %s vs %s", resultA.PartCode, resultB.PartCode)
	}
	if len(resultA.Summary) != len(resultB.Summary) {
		t.Fatalf("summary lengths differ: %d vs %d", len(resultA.Summary), len(resultB.Summary))
	}
	for i := range resultA.Summary {
		if resultA.Summary[i].Label != resultB.Summary[i].Label {
			t.Fatalf("summary order differs at %d: %s vs %s", i, resultA.Summary[i].Label, resultB.Summary[i].Label)
		}
	}
}

func TestDeriveIsPure(t *testing.T) {
	snap := newDownlightSnapshot(t)
	sel := newInitializedSelection(t, snap)
	if err := sel.ToggleAccessory(snap, 201); err != nil {
		t.Fatalf("toggle accessory failed: %v", err)
	}
	before := sel.Clone()

	first, err := Derive(snap, sel)
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	second, err := Derive(snap, sel)
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	if !first.TotalPrice.Equal(second.TotalPrice) || first.PartCode != second.PartCode {
		t.Fatalf("repeated derive diverged: %s/%s vs %s/%s",
			first.TotalPrice, first.PartCode, second.TotalPrice, second.PartCode)
	}
	if sel.VariantID != before.VariantID || len(sel.Options) != len(before.Options) ||
		len(sel.Accessories) != len(before.Accessories) || len(sel.FeatureValues) != len(before.FeatureValues) {
		t.Fatalf("derive mutated the selection")
	}
}

func TestDeriveAccessoryPriceIsAdditive(t *testing.T) {
	snap := newDownlightSnapshot(t)
	sel := newInitializedSelection(t, snap)

	base, err := Derive(snap, sel)
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	if err := sel.ToggleAccessory(snap, 202); err != nil {
		t.Fatalf("toggle accessory failed: %v", err)
	}
	with, err := Derive(snap, sel)
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}

	diff := with.TotalPrice.Sub(base.TotalPrice)
	if !diff.Equal(decimal.RequireFromString("3.10")) {
		t.Fatalf("expected accessory to add 3.10, got %s", diff)
	}
	if with.PartCode != base.PartCode {
		t.Fatalf("accessory changed part code: %s vs %s", base.PartCode, with.PartCode)
	}
}

func TestDerivePartCodePositionOrder(t *testing.T) {
	snap := &Snapshot{
		Product:  Product{ID: 2, BasePartCode: "TR200"},
		Variants: []Variant{{ID: 21, Name: "Std", PartCodeSuffix: "-S", BasePrice: decimal.NewFromInt(30), DisplayOrder: 1}},
		Categories: []Category{
			{
				Name: "colour_temp", Label: "Colour Temperature", PartCodePosition: 2, DisplayOrder: 1,
				Options: []Option{{ID: 301, Label: "3000K", PartCodeSuffix: "-30", IsDefault: true, DisplayOrder: 1}},
			},
			{
				Name: "beam_angle", Label: "Beam Angle", PartCodePosition: 1, DisplayOrder: 2,
				Options: []Option{{ID: 302, Label: "Narrow", PartCodeSuffix: "-N", IsDefault: true, DisplayOrder: 1}},
			},
		},
	}
	snap.Normalize()
	sel := newInitializedSelection(t, snap)

	result, err := Derive(snap, sel)
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	// 编码顺序由 part_code_position 决定，与展示顺序无关
	if result.PartCode != "TR200-S-N-30" {
		t.Fatalf("unexpected part code: %s", result.PartCode)
	}
}

func TestDeriveDecimalAccumulationIsExact(t *testing.T) {
	snap := &Snapshot{
		Product:  Product{ID: 3, BasePartCode: "PD300"},
		Variants: []Variant{{ID: 31, Name: "Std", PartCodeSuffix: "-S", BasePrice: decimal.RequireFromString("0.10"), DisplayOrder: 1}},
		Categories: []Category{
			{
				Name: "finish", Label: "Finish", DisplayOrder: 1,
				Options: []Option{{ID: 401, Label: "Matte", PriceModifier: decimal.RequireFromString("0.20"), IsDefault: true, DisplayOrder: 1}},
			},
		},
	}
	snap.Normalize()
	sel := newInitializedSelection(t, snap)

	result, err := Derive(snap, sel)
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	if got := result.TotalPrice.StringFixed(2); got != "0.30" {
		t.Fatalf("expected exact 0.30, got %s", got)
	}
}

func TestNormalizeToken(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"royal blue", "ROYALBLUE"},
		{"  Warm  White ", "WARMWHITE"},
		{"ip65", "IP65"},
		{"a\tb\nc", "ABC"},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := NormalizeToken(tc.in); got != tc.want {
			t.Fatalf("NormalizeToken(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
