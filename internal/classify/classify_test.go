package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_BrandPrefix(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantBrand string
		wantName  string
	}{
		{name: "brand and name", raw: "Quaker, Granola", wantBrand: "Quaker", wantName: "Granola"},
		{name: "no brand", raw: "Granola", wantBrand: "", wantName: "Granola"},
		{name: "extra whitespace", raw: "  Quaker ,  Granola  ", wantBrand: "Quaker", wantName: "Granola"},
		{name: "trailing comma", raw: "Granola,", wantBrand: "", wantName: "Granola"},
		{name: "only first comma splits", raw: "Nature Valley, Oats, Honey", wantBrand: "Nature Valley", wantName: "Oats, Honey"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.raw)
			assert.Equal(t, tt.wantBrand, result.Brand)
			assert.Equal(t, tt.wantName, result.Name)
			assert.Equal(t, tt.wantBrand != "", result.IsBrandSpecific)
		})
	}
}

func TestClassify_Categories(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "2% Milk", want: CategoryDairyEggs},
		{raw: "Valley Farm Milk", want: CategoryDairyEggs},
		{raw: "Granola", want: CategoryBreakfast},
		{raw: "Quaker, Granola", want: CategoryBreakfast},
		{raw: "Ground Beef", want: CategoryMeatPoultry},
		{raw: "Whole Wheat Bread", want: CategoryBakeryBread},
		{raw: "Cheddar Cheese", want: CategoryDairyEggs},
		{raw: "Iced Tea", want: CategoryBeverages},
		{raw: "Frozen Pizza", want: CategoryFrozenFoods},
		{raw: "Dog Treats", want: CategoryPetSupplies},
		{raw: "Garden Hose", want: CategoryMiscellaneous},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.raw).Category)
		})
	}
}

func TestClassify_OrganicFlag(t *testing.T) {
	assert.True(t, Classify("Organic Apples").IsOrganic)
	assert.True(t, Classify("ORGANIC granola").IsOrganic)
	assert.False(t, Classify("Apples").IsOrganic)

	// Organic detection runs on the generic name, not the brand prefix.
	assert.False(t, Classify("Organics Co, Apples").IsOrganic)
}

func TestClassify_Deterministic(t *testing.T) {
	first := Classify("Quaker, Organic Granola")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Classify("Quaker, Organic Granola"))
	}
}

func TestClassify_NeverFails(t *testing.T) {
	for _, raw := range []string{"", ",", " , ", "!!!", "日本茶"} {
		result := Classify(raw)
		assert.True(t, ValidCategory(result.Category), "raw=%q", raw)
	}
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory(CategoryDairyEggs))
	assert.True(t, ValidCategory(CategoryMiscellaneous))
	assert.False(t, ValidCategory("Electronics"))
	assert.Len(t, Categories, 20)
}
