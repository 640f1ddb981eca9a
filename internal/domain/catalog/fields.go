// Package catalog holds the static category/subcategory taxonomy and the
// per-subcategory field schema that drives both form rendering and payload
// validation. The schema is advisory for optional fields; taxonomy membership
// and category-minimum required details are enforced at write time.
package catalog

// SubCategoryConfig lists the detail fields a subcategory understands and
// which of them the form marks as required.
type SubCategoryConfig struct {
	Fields      []string `json:"fields"`
	Required    []string `json:"required"`
	Description string   `json:"description"`
}

var subCategoryFields = map[string]map[string]SubCategoryConfig{
	"Real Estate": {
		"Apartment": {
			Fields:      []string{"bedrooms", "bathrooms", "toilets", "furnished", "type", "floorArea", "parking", "amenities"},
			Required:    []string{"bedrooms", "bathrooms", "furnished", "type"},
			Description: "Apartment with rooms, bathrooms, and amenities",
		},
		"House": {
			Fields:      []string{"bedrooms", "bathrooms", "toilets", "furnished", "type", "floorArea", "landArea", "parking", "amenities"},
			Required:    []string{"bedrooms", "bathrooms", "furnished", "type"},
			Description: "House with land area and parking",
		},
		"Land": {
			Fields:      []string{"landArea", "type"},
			Required:    []string{"landArea", "type"},
			Description: "Land for sale or rent",
		},
		"Commercial": {
			Fields:      []string{"floorArea", "type", "parking", "amenities"},
			Required:    []string{"floorArea", "type"},
			Description: "Commercial space with utilities",
		},
	},
	"Vehicles": {
		"Car": {
			Fields:      []string{"brand", "model", "year", "mileage", "engineSize", "fuelType", "transmission", "color", "seats", "features"},
			Required:    []string{"brand", "model", "fuelType", "transmission"},
			Description: "Car details",
		},
		"Motorcycle": {
			Fields:      []string{"brand", "model", "year", "mileage", "engineSize", "fuelType", "color", "features"},
			Required:    []string{"brand", "model", "fuelType"},
			Description: "Motorcycle details",
		},
		"Truck": {
			Fields:      []string{"brand", "model", "year", "mileage", "engineSize", "fuelType", "transmission", "color", "features"},
			Required:    []string{"brand", "model", "fuelType", "transmission"},
			Description: "Truck details",
		},
		"Bus": {
			Fields:      []string{"brand", "model", "year", "mileage", "engineSize", "fuelType", "transmission", "seats", "features"},
			Required:    []string{"brand", "model", "fuelType", "transmission", "seats"},
			Description: "Bus details",
		},
	},
	"Electronics": {
		"Mobile Phone": {
			Fields:      []string{"brand", "condition", "storage", "ram", "screenSize", "batteryLife", "warranty", "accessories", "electronicFeatures"},
			Required:    []string{"brand", "condition"},
			Description: "Mobile phone specs",
		},
		"Laptop": {
			Fields:      []string{"brand", "condition", "storage", "ram", "screenSize", "batteryLife", "warranty", "accessories", "electronicFeatures"},
			Required:    []string{"brand", "condition", "ram", "storage"},
			Description: "Laptop specs",
		},
		"TV": {
			Fields:      []string{"brand", "condition", "screenSize", "warranty", "accessories", "electronicFeatures"},
			Required:    []string{"brand", "condition", "screenSize"},
			Description: "TV specs",
		},
		"Camera": {
			Fields:      []string{"brand", "condition", "warranty", "accessories", "electronicFeatures"},
			Required:    []string{"brand", "condition"},
			Description: "Camera details",
		},
	},
}

// ConfigFor returns the schema for a (category, subCategory) pair. Unknown
// pairs yield an empty config, never an error.
func ConfigFor(category, subCategory string) SubCategoryConfig {
	if subs, ok := subCategoryFields[category]; ok {
		if cfg, ok := subs[subCategory]; ok {
			return cfg
		}
	}
	return SubCategoryConfig{Fields: []string{}, Required: []string{}}
}

func FieldsFor(category, subCategory string) []string {
	return ConfigFor(category, subCategory).Fields
}

func IsRequired(category, subCategory, field string) bool {
	for _, f := range ConfigFor(category, subCategory).Required {
		if f == field {
			return true
		}
	}
	return false
}

// ValidSubCategory reports whether the pair belongs to the fixed taxonomy.
func ValidSubCategory(category, subCategory string) bool {
	subs, ok := subCategoryFields[category]
	if !ok {
		return false
	}
	_, ok = subs[subCategory]
	return ok
}

func SubCategories(category string) []string {
	subs, ok := subCategoryFields[category]
	if !ok {
		return []string{}
	}
	names := make([]string, 0, len(subs))
	for name := range subs {
		names = append(names, name)
	}
	return names
}
