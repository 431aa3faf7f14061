package route

type cityPair struct {
	from, to string
}

// cityPairMeters holds road distances between towns the service regularly
// covers (Maresme and Barcelona metropolitan area). Lookups are symmetric;
// unknown pairs fall back to unknownCityMeters.
var cityPairMeters = map[cityPair]int{
	{"mataró", "barcelona"}:       30000,
	{"mataró", "badalona"}:        20000,
	{"mataró", "premià de mar"}:   8000,
	{"mataró", "vilassar de mar"}: 6000,
	{"mataró", "argentona"}:       5000,
	{"mataró", "cabrera de mar"}:  7000,
	{"mataró", "llavaneres"}:      7000,
	{"mataró", "granollers"}:      25000,
	{"barcelona", "badalona"}:     11000,
	{"barcelona", "hospitalet"}:   8000,
	{"barcelona", "granollers"}:   30000,
	{"badalona", "premià de mar"}: 12000,
}
