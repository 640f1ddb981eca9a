package catalog

// Option is one choice of a select/radio field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldMeta describes how a detail field is rendered and bounded. Fields with
// identical semantics (brand, model) are shared across categories on purpose.
type FieldMeta struct {
	Label       string   `json:"label"`
	InputType   string   `json:"inputType"`
	Options     []Option `json:"options,omitempty"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Step        float64  `json:"step,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
}

func f(v float64) *float64 { return &v }

var fieldMetadata = map[string]FieldMeta{
	// Real Estate
	"bedrooms":  {Label: "Bedrooms", InputType: "number", Min: f(0), Max: f(20)},
	"bathrooms": {Label: "Bathrooms", InputType: "number", Min: f(0), Max: f(20)},
	"toilets":   {Label: "Toilets", InputType: "number", Min: f(0), Max: f(10)},
	"floorArea": {Label: "Floor Area (m²)", InputType: "number", Min: f(0)},
	"landArea":  {Label: "Land Area (m²)", InputType: "number", Min: f(0)},
	"furnished": {Label: "Furnished", InputType: "select", Options: []Option{
		{Value: "Unfurnished", Label: "Unfurnished"},
		{Value: "Semi-furnished", Label: "Semi-furnished"},
		{Value: "Fully furnished", Label: "Fully furnished"},
	}},
	"type": {Label: "Type", InputType: "radio", Options: []Option{
		{Value: "rent", Label: "For Rent"},
		{Value: "sale", Label: "For Sale"},
	}},
	"parking":   {Label: "Parking Spots", InputType: "number", Min: f(0), Max: f(50)},
	"amenities": {Label: "Amenities (comma-separated)", InputType: "text", Placeholder: "e.g., Pool, Gym, Security"},

	// Shared by Vehicles and Electronics
	"brand": {Label: "Brand", InputType: "text", Placeholder: "e.g., Toyota"},
	"model": {Label: "Model", InputType: "text", Placeholder: "e.g., Corolla"},

	// Vehicles
	"year":       {Label: "Year", InputType: "number", Min: f(1900)},
	"mileage":    {Label: "Mileage (km)", InputType: "number", Min: f(0)},
	"engineSize": {Label: "Engine Size (cc)", InputType: "number", Min: f(0)},
	"fuelType": {Label: "Fuel Type", InputType: "select", Options: []Option{
		{Value: "Petrol", Label: "Petrol"},
		{Value: "Diesel", Label: "Diesel"},
		{Value: "Electric", Label: "Electric"},
		{Value: "Hybrid", Label: "Hybrid"},
	}},
	"transmission": {Label: "Transmission", InputType: "select", Options: []Option{
		{Value: "Manual", Label: "Manual"},
		{Value: "Automatic", Label: "Automatic"},
	}},
	"color":    {Label: "Color", InputType: "text", Placeholder: "e.g., Silver"},
	"seats":    {Label: "Seats", InputType: "number", Min: f(1), Max: f(100)},
	"features": {Label: "Features (comma-separated)", InputType: "text", Placeholder: "e.g., Air conditioning, Power steering"},

	// Electronics
	"condition": {Label: "Condition", InputType: "select", Options: []Option{
		{Value: "New", Label: "New"},
		{Value: "Used", Label: "Used"},
		{Value: "Refurbished", Label: "Refurbished"},
	}},
	"storage":            {Label: "Storage (GB)", InputType: "number", Min: f(0)},
	"ram":                {Label: "RAM (GB)", InputType: "number", Min: f(0)},
	"screenSize":         {Label: "Screen Size (inches)", InputType: "number", Min: f(0), Step: 0.1},
	"batteryLife":        {Label: "Battery Life (hours)", InputType: "number", Min: f(0)},
	"warranty":           {Label: "Warranty (months)", InputType: "number", Min: f(0)},
	"accessories":        {Label: "Accessories Included", InputType: "text", Placeholder: "e.g., Charger, Case"},
	"electronicFeatures": {Label: "Features (comma-separated)", InputType: "text", Placeholder: "e.g., Face ID, Fast charging"},
}

// MetaFor returns the display metadata for a field name.
func MetaFor(field string) (FieldMeta, bool) {
	meta, ok := fieldMetadata[field]
	return meta, ok
}

// MetaForFields resolves metadata for a field list, skipping unknown names.
func MetaForFields(fields []string) map[string]FieldMeta {
	out := make(map[string]FieldMeta, len(fields))
	for _, field := range fields {
		if meta, ok := fieldMetadata[field]; ok {
			out[field] = meta
		}
	}
	return out
}
