// Package seo derives search metadata for listing pages. Generation is a pure
// function of the listing's category, details and address: no clock, no
// randomness, no I/O. Unknown input degrades to a generic payload instead of
// failing, so a listing can always be rendered.
package seo

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"rodvers/internal/domain/entity"
)

const (
	maxTitleLen       = 70
	maxDescriptionLen = 160
)

// Generator carries the site identity used in titles and canonical URLs.
// Both values come from configuration, never from the process environment.
type Generator struct {
	siteName string
	siteURL  string
}

func NewGenerator(siteName, siteURL string) *Generator {
	return &Generator{
		siteName: siteName,
		siteURL:  strings.TrimRight(siteURL, "/"),
	}
}

// Generate maps (category, subCategory, details, address) to the SEO block.
func (g *Generator) Generate(category, subCategory string, details map[string]interface{}, address string) entity.SeoMeta {
	if category == "" || subCategory == "" {
		return entity.SeoMeta{
			Title:       fmt.Sprintf("Listings on %s", g.siteName),
			Description: fmt.Sprintf("Find great deals and listings across Uganda on %s.", g.siteName),
			Keywords:    []string{"listings", "buy", "sell", "Uganda"},
			Canonical:   g.siteURL + "/listings",
			Slug:        "listings",
		}
	}

	switch category {
	case entity.CategoryRealEstate:
		return g.realEstate(subCategory, details, address)
	case entity.CategoryVehicles:
		return g.vehicle(subCategory, details, address)
	case entity.CategoryElectronics:
		return g.electronics(subCategory, details, address)
	default:
		return entity.SeoMeta{
			Title:       fmt.Sprintf("%s on %s", subCategory, g.siteName),
			Description: fmt.Sprintf("Find %s across Uganda on %s.", strings.ToLower(subCategory), g.siteName),
			Keywords:    []string{strings.ToLower(subCategory), "listings", "Uganda"},
			Canonical:   g.siteURL + "/" + Slugify(category) + "/" + Slugify(subCategory),
			Slug:        Slugify(category + " " + subCategory),
		}
	}
}

func (g *Generator) realEstate(subCategory string, details map[string]interface{}, address string) entity.SeoMeta {
	city := extractCity(address)
	if city == "" {
		city = "Uganda"
	}
	neighborhood := extractNeighborhood(address, city)

	bedrooms := detailString(details, "bedrooms")
	bathrooms := detailString(details, "bathrooms")
	furnished := detailString(details, "furnished")
	if furnished == "" {
		furnished = "Unfurnished"
	}
	listingType := "for Sale"
	if detailString(details, "type") == "rent" {
		listingType = "for Rent"
	}

	var features []string
	if bedrooms != "" {
		features = append(features, bedrooms+"-bedroom")
	}
	if bathrooms != "" {
		features = append(features, bathrooms+"-bathroom")
	}
	if detailNumber(details, "parking") > 0 {
		features = append(features, "parking")
	}
	if furnished != "Unfurnished" {
		features = append(features, strings.ToLower(furnished))
	}

	location := "in " + city
	if neighborhood != "" {
		location = "in " + neighborhood + ", " + city
	}

	title := truncate(joinWords(subCategory, listingType, location, offerTag(details))+" | "+g.siteName, maxTitleLen)

	bedroomPhrase := bedrooms
	if bedroomPhrase == "" {
		bedroomPhrase = "spacious"
	}
	plural := ""
	if n, err := strconv.Atoi(bedrooms); err == nil && n > 1 {
		plural = "s"
	}
	featuresStr := ""
	if len(features) > 0 {
		featuresStr = strings.Join(features, ", ") + " "
	}
	description := truncate(fmt.Sprintf(
		"Find a beautiful %s with %s bedroom%s %s%s near you in %s. Quality properties on %s.",
		strings.ToLower(subCategory), bedroomPhrase, plural, featuresStr, strings.ToLower(listingType), city, g.siteName,
	), maxDescriptionLen)

	keywords := []string{
		strings.ToLower(subCategory) + " " + strings.ToLower(listingType),
		strings.ToLower(subCategory) + " in " + city,
	}
	if neighborhood != "" {
		keywords = append(keywords, strings.ToLower(subCategory)+" in "+neighborhood)
	}
	keywords = append(keywords,
		bedroomPhrase+" bedroom "+strings.ToLower(subCategory),
		strings.ToLower(listingType)+" properties",
		"real estate Uganda",
		city,
	)
	if neighborhood != "" {
		keywords = append(keywords, neighborhood)
	}
	keywords = append(keywords, features...)
	keywords = append(keywords, "rental listings", "property listing")

	slugLocation := city
	if neighborhood != "" {
		slugLocation = neighborhood
	}
	slug := Slugify(subCategory + " " + listingType + " " + slugLocation)

	return entity.SeoMeta{
		Title:       title,
		Description: description,
		Keywords:    dedupe(keywords),
		Canonical:   g.siteURL + "/" + Slugify(subCategory) + "/" + slug,
		Slug:        slug,
	}
}

func (g *Generator) vehicle(subCategory string, details map[string]interface{}, address string) entity.SeoMeta {
	city := extractCity(address)
	if city == "" {
		city = "Uganda"
	}

	brand := detailString(details, "brand")
	model := detailString(details, "model")
	year := detailString(details, "year")
	mileage := detailString(details, "mileage")
	if mileage != "" {
		mileage += "km"
	}

	brandModel := subCategory
	if brand != "" && model != "" {
		brandModel = brand + " " + model
	}

	var features []string
	if year != "" {
		features = append(features, year)
	}
	if mileage != "" {
		features = append(features, mileage)
	}

	title := truncate(joinWords(brandModel, "for Sale in", city, offerTag(details))+" | "+g.siteName, maxTitleLen)

	featureStr := ""
	if len(features) > 0 {
		featureStr = strings.Join(features, ", ") + " "
	}
	description := truncate(fmt.Sprintf(
		"Buy %s in %s. %s%s for sale from trusted sellers. Best prices on %s.",
		strings.ToLower(brandModel), city, featureStr, strings.ToLower(subCategory), g.siteName,
	), maxDescriptionLen)

	keywords := []string{
		strings.ToLower(brandModel) + " for sale",
		strings.ToLower(subCategory) + " for sale",
		strings.ToLower(subCategory) + " in " + city,
		"used vehicles Uganda",
	}
	if brand != "" {
		modelOrSub := model
		if modelOrSub == "" {
			modelOrSub = strings.ToLower(subCategory)
		}
		keywords = append(keywords, brand+" vehicles", brand+" "+modelOrSub)
	}
	keywords = append(keywords, city, "buy vehicle Uganda", "vehicle listings", "auto marketplace")

	slug := Slugify(brandModel + " " + city)

	return entity.SeoMeta{
		Title:       title,
		Description: description,
		Keywords:    dedupe(keywords),
		Canonical:   g.siteURL + "/" + Slugify(subCategory) + "/" + slug,
		Slug:        slug,
	}
}

func (g *Generator) electronics(subCategory string, details map[string]interface{}, address string) entity.SeoMeta {
	city := extractCity(address)
	if city == "" {
		city = "Uganda"
	}

	brand := detailString(details, "brand")
	model := detailString(details, "model")
	condition := detailString(details, "condition")
	if condition == "" {
		condition = "New"
	}

	brandModel := subCategory
	if brand != "" && model != "" {
		brandModel = brand + " " + model
	}

	title := truncate(joinWords(brandModel, "for Sale in", city, offerTag(details))+" | "+g.siteName, maxTitleLen)

	description := truncate(fmt.Sprintf(
		"Buy %s in %s. %s %s gadgets at best prices on %s. Safe buying experience.",
		strings.ToLower(brandModel), city, condition, strings.ToLower(subCategory), g.siteName,
	), maxDescriptionLen)

	keywords := []string{
		strings.ToLower(brandModel) + " for sale",
		strings.ToLower(subCategory) + " for sale",
		strings.ToLower(subCategory) + " in " + city,
		"electronics Uganda",
	}
	if brand != "" {
		modelOrSub := model
		if modelOrSub == "" {
			modelOrSub = strings.ToLower(subCategory)
		}
		keywords = append(keywords, brand+" gadgets", brand+" "+modelOrSub)
	}
	keywords = append(keywords, city, "buy electronics Uganda", "electronics marketplace", "tech gadgets")

	slug := Slugify(brandModel + " " + city)

	return entity.SeoMeta{
		Title:       title,
		Description: description,
		Keywords:    dedupe(keywords),
		Canonical:   g.siteURL + "/" + Slugify(subCategory) + "/" + slug,
		Slug:        slug,
	}
}

// extractCity matches known city aliases against the address, first hit wins.
func extractCity(address string) string {
	if address == "" {
		return ""
	}
	lower := strings.ToLower(address)
	for _, city := range ugCities {
		for _, alias := range city.aliases {
			if strings.Contains(lower, strings.ToLower(alias)) {
				return city.name
			}
		}
	}
	return ""
}

func extractNeighborhood(address, city string) string {
	if address == "" {
		return ""
	}
	hoods, ok := neighborhoods[city]
	if !ok {
		return ""
	}
	lower := strings.ToLower(address)
	for _, hood := range hoods {
		if strings.Contains(lower, strings.ToLower(hood)) {
			return hood
		}
	}
	return ""
}

// Slugify lowercases, strips diacritics and collapses anything that is not
// alphanumeric into single hyphens.
func Slugify(text string) string {
	if text == "" {
		return ""
	}

	decomposed := norm.NFKD.String(text)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue // combining mark left over from decomposition
		}
		r = unicode.ToLower(r)
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '\t':
			b.WriteByte('-')
		}
	}

	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}

func offerTag(details map[string]interface{}) string {
	if detailBool(details, "offer") {
		return "(Discounted)"
	}
	return ""
}

// detailString renders a detail value as a string; numbers lose any
// insignificant fraction so 3.0 reads as "3".
func detailString(details map[string]interface{}, key string) string {
	if details == nil {
		return ""
	}
	switch v := details[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

func detailNumber(details map[string]interface{}, key string) float64 {
	if details == nil {
		return 0
	}
	switch v := details[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		n, _ := strconv.ParseFloat(v, 64)
		return n
	default:
		return 0
	}
}

func detailBool(details map[string]interface{}, key string) bool {
	if details == nil {
		return false
	}
	v, _ := details[key].(bool)
	return v
}

func joinWords(words ...string) string {
	nonEmpty := words[:0:0]
	for _, w := range words {
		if w != "" {
			nonEmpty = append(nonEmpty, w)
		}
	}
	return strings.Join(nonEmpty, " ")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// dedupe removes repeated keywords while preserving first-seen order.
func dedupe(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := keywords[:0:0]
	for _, k := range keywords {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
