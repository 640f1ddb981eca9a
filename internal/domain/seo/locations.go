package seo

// Known Uganda cities with the spellings that show up in addresses.
type cityEntry struct {
	name    string
	aliases []string
}

var ugCities = []cityEntry{
	{name: "Kampala", aliases: []string{"Kampala", "KCCA", "Kampala City"}},
	{name: "Entebbe", aliases: []string{"Entebbe", "Entebbe City"}},
	{name: "Jinja", aliases: []string{"Jinja", "Jinja City"}},
	{name: "Mbarara", aliases: []string{"Mbarara", "Mbarara City"}},
	{name: "Gulu", aliases: []string{"Gulu", "Gulu City"}},
	{name: "Mbale", aliases: []string{"Mbale", "Mbale Town"}},
	{name: "Fort Portal", aliases: []string{"Fort Portal", "Fort-Portal"}},
	{name: "Masaka", aliases: []string{"Masaka", "Masaka City"}},
	{name: "Kabale", aliases: []string{"Kabale", "Kabale Town"}},
	{name: "Soroti", aliases: []string{"Soroti", "Soroti City"}},
	{name: "Lira", aliases: []string{"Lira", "Lira City"}},
	{name: "Hoima", aliases: []string{"Hoima", "Hoima City"}},
}

var neighborhoods = map[string][]string{
	"Kampala": {"Kampala CBD", "Kololo", "Nakasero", "Muyenga", "Buziga", "Bunga", "Makindye", "Nakawa", "Lubaga", "Kawempe"},
	"Entebbe": {"Entebbe Town", "Port Bell", "Zzansi", "Kitoro"},
	"Jinja":   {"Jinja Town", "Jinja Industrial", "Mbulamutumbi"},
	"Mbarara": {"Mbarara Town", "Kamukuzi", "Nyamityobora"},
}
