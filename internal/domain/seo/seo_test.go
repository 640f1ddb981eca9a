package seo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSiteName = "Rodvers Listings"
	testSiteURL  = "https://listings.example.com"
)

func newTestGenerator() *Generator {
	return NewGenerator(testSiteName, testSiteURL)
}

func TestGenerateFallbackWhenCategoryMissing(t *testing.T) {
	g := newTestGenerator()

	for _, args := range [][2]string{
		{"", ""},
		{"Real Estate", ""},
		{"", "Apartment"},
	} {
		meta := g.Generate(args[0], args[1], nil, "")
		assert.Equal(t, "listings", meta.Slug)
		assert.Equal(t, testSiteURL+"/listings", meta.Canonical)
		assert.NotEmpty(t, meta.Title)
		assert.NotEmpty(t, meta.Description)
	}
}

func TestGenerateUnknownCategoryDegrades(t *testing.T) {
	g := newTestGenerator()

	meta := g.Generate("Furniture", "Sofa", nil, "somewhere")
	assert.Equal(t, "furniture-sofa", meta.Slug)
	assert.Equal(t, testSiteURL+"/furniture/sofa", meta.Canonical)
	assert.Contains(t, meta.Title, "Sofa")
}

func TestGenerateRealEstate(t *testing.T) {
	g := newTestGenerator()
	details := map[string]interface{}{
		"bedrooms":  float64(2),
		"bathrooms": float64(1),
		"furnished": "Fully furnished",
		"parking":   float64(1),
		"type":      "rent",
	}

	meta := g.Generate("Real Estate", "Apartment", details, "Kololo, Kampala")

	assert.Contains(t, meta.Title, "Apartment")
	assert.Contains(t, meta.Title, "Kololo")
	assert.Equal(t, "apartment-for-rent-kololo", meta.Slug)
	assert.Equal(t, testSiteURL+"/apartment/apartment-for-rent-kololo", meta.Canonical)
	assert.Contains(t, meta.Keywords, "apartment in Kampala")
	assert.Contains(t, meta.Keywords, "2-bedroom")
	assert.Contains(t, meta.Description, "apartment")
}

func TestGenerateRealEstateFallsBackToUganda(t *testing.T) {
	g := newTestGenerator()
	details := map[string]interface{}{"bedrooms": float64(3), "bathrooms": float64(2)}

	meta := g.Generate("Real Estate", "House", details, "Plot 4, Nowhere Road")

	assert.Contains(t, meta.Title, "Uganda")
	assert.Equal(t, "house-for-sale-uganda", meta.Slug)
}

func TestGenerateVehicle(t *testing.T) {
	g := newTestGenerator()
	details := map[string]interface{}{
		"brand":   "Toyota",
		"model":   "Corolla",
		"year":    float64(2015),
		"mileage": float64(84000),
	}

	meta := g.Generate("Vehicles", "Car", details, "Jinja Road, Kampala")

	assert.Contains(t, meta.Title, "Toyota Corolla")
	assert.Equal(t, "toyota-corolla-kampala", meta.Slug)
	assert.Contains(t, meta.Keywords, "toyota corolla for sale")
	assert.Contains(t, meta.Keywords, "Toyota vehicles")
}

func TestGenerateElectronics(t *testing.T) {
	g := newTestGenerator()
	details := map[string]interface{}{
		"brand":     "Samsung",
		"model":     "Galaxy S22",
		"condition": "Used",
	}

	meta := g.Generate("Electronics", "Mobile Phone", details, "Entebbe")

	assert.Contains(t, meta.Title, "Samsung Galaxy S22")
	assert.Equal(t, "samsung-galaxy-s22-entebbe", meta.Slug)
	assert.Contains(t, meta.Description, "Used")
}

func TestGenerateIsDeterministic(t *testing.T) {
	g := newTestGenerator()
	details := map[string]interface{}{"bedrooms": float64(2), "bathrooms": float64(1)}

	first := g.Generate("Real Estate", "Apartment", details, "Muyenga, Kampala")
	second := g.Generate("Real Estate", "Apartment", details, "Muyenga, Kampala")

	assert.Equal(t, first, second)
}

func TestGenerateNeverExceedsCaps(t *testing.T) {
	g := newTestGenerator()
	details := map[string]interface{}{
		"brand": strings.Repeat("Extremely", 5) + "LongBrand",
		"model": strings.Repeat("Verbose", 6) + "Model",
	}

	meta := g.Generate("Vehicles", "Truck", details, "Kampala")

	assert.LessOrEqual(t, len([]rune(meta.Title)), maxTitleLen)
	assert.LessOrEqual(t, len([]rune(meta.Description)), maxDescriptionLen)
}

func TestGenerateKeywordsAreDeduplicated(t *testing.T) {
	g := newTestGenerator()
	details := map[string]interface{}{
		"bedrooms":  float64(2),
		"bathrooms": float64(1),
		"type":      "rent",
	}

	meta := g.Generate("Real Estate", "Apartment", details, "Kololo, Kampala")

	seen := map[string]bool{}
	for _, k := range meta.Keywords {
		require.False(t, seen[k], "duplicate keyword %q", k)
		seen[k] = true
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Apartment for Rent Kololo", "apartment-for-rent-kololo"},
		{"Café Möbel", "cafe-mobel"},
		{"  spaced   out  ", "spaced-out"},
		{"Already-Hyphenated--Twice", "already-hyphenated-twice"},
		{"Symbols!@#$%Removed", "symbolsremoved"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}
