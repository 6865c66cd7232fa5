package constants

import "testing"

// 这些常量会落库（资源行的 asset_type、特性行的取值），
// 字符串表示变化会让已有数据失效。
func TestStoredValuesAreStable(t *testing.T) {
	cases := map[string]string{
		AssetTypeCertification:    "certification",
		AssetTypeProductImage:     "product_image",
		AssetTypeDimensionImage:   "dimension_image",
		FeatureValueCustom:        "CUSTOM",
		FeatureValueNotApplicable: "N/A",
	}
	for got, want := range cases {
		if got != want {
			t.Fatalf("stored value drifted: got %q, want %q", got, want)
		}
	}
}
