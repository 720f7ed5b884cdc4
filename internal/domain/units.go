package domain

// Category groups units that can be compared with each other.
// Units from different categories are never comparable.
type Category string

const (
	CategoryWeight Category = "weight"
	CategoryVolume Category = "volume"
	CategoryCount  Category = "count"
)

// unitDef describes a single unit token: the category it belongs to and
// how many base units (g, ml, or bare count) one of it equals.
type unitDef struct {
	Category Category
	ToBase   float64
}

// unitRegistry is the static unit taxonomy. It is populated once at
// package init and never written afterwards, so concurrent readers need
// no synchronization. Factors convert one unit into the category base:
// grams for weight, milliliters for volume, bare units for count.
var unitRegistry = map[string]unitDef{
	// Weight (base = g)
	"mg":    {CategoryWeight, 0.001},
	"g":     {CategoryWeight, 1},
	"kg":    {CategoryWeight, 1000},
	"t":     {CategoryWeight, 1000000},
	"oz-wt": {CategoryWeight, 28.3495}, // weight ounce, rarely used in shopping
	"lb":    {CategoryWeight, 453.592},
	"st":    {CategoryWeight, 6350.29},
	"jin":   {CategoryWeight, 500},
	"liang": {CategoryWeight, 50},
	"catty": {CategoryWeight, 604.79},
	"tael":  {CategoryWeight, 37.8},
	"tola":  {CategoryWeight, 11.66},
	"ser":   {CategoryWeight, 933},
	"maund": {CategoryWeight, 37324},

	// Volume (base = ml). "oz" means fluid ounce here: when a shopper
	// says "24 oz soda" they mean fl oz, not the weight ounce.
	"ml":       {CategoryVolume, 1},
	"cl":       {CategoryVolume, 10},
	"dl":       {CategoryVolume, 100},
	"L":        {CategoryVolume, 1000},
	"tsp":      {CategoryVolume, 4.929},
	"tbsp":     {CategoryVolume, 14.787},
	"oz":       {CategoryVolume, 29.574},
	"fl-oz":    {CategoryVolume, 29.574},
	"fl-oz-uk": {CategoryVolume, 28.413},
	"cup":      {CategoryVolume, 236.588},
	"cup-uk":   {CategoryVolume, 284.131},
	"cup-au":   {CategoryVolume, 250},
	"pt":       {CategoryVolume, 473.176},
	"pt-uk":    {CategoryVolume, 568.261},
	"qt":       {CategoryVolume, 946.353},
	"qt-uk":    {CategoryVolume, 1136.52},
	"gal":      {CategoryVolume, 3785.41},
	"gal-uk":   {CategoryVolume, 4546.09},

	// Count (base = single unit)
	"unit":  {CategoryCount, 1},
	"piece": {CategoryCount, 1},
	"item":  {CategoryCount, 1},
	"ea":    {CategoryCount, 1},
	"pair":  {CategoryCount, 2},
	"dozen": {CategoryCount, 12},
	"gross": {CategoryCount, 144},
	"score": {CategoryCount, 20},
}

// baseUnitNames holds the canonical display label for each category's
// base unit.
var baseUnitNames = map[Category]string{
	CategoryWeight: "g",
	CategoryVolume: "ml",
	CategoryCount:  "unit",
}

// unitDisplayNames maps unit tokens to human-readable dropdown labels.
var unitDisplayNames = map[string]string{
	"mg": "mg - Milligram", "g": "g - Gram", "kg": "kg - Kilogram",
	"t": "t - Metric Ton", "oz-wt": "oz - Ounce (weight)", "lb": "lb - Pound",
	"st": "st - Stone", "jin": "jin - Chinese Jin", "liang": "liang - Chinese Liang",
	"catty": "catty - Southeast Asian", "tael": "tael - Tael",
	"tola": "tola - South Asian", "ser": "ser - Indian Ser", "maund": "maund - Indian Maund",

	"ml": "ml - Milliliter", "cl": "cl - Centiliter", "dl": "dl - Deciliter",
	"L": "L - Liter", "tsp": "tsp - Teaspoon", "tbsp": "tbsp - Tablespoon",
	"oz": "oz - Ounce", "fl-oz": "fl oz - Fluid Ounce (US)",
	"fl-oz-uk": "fl oz - Fluid Ounce (UK)", "cup": "cup - Cup (US)",
	"cup-uk": "cup - Cup (UK)", "cup-au": "cup - Cup (AU)",
	"pt": "pt - Pint (US)", "pt-uk": "pt - Pint (UK)", "qt": "qt - Quart (US)",
	"qt-uk": "qt - Quart (UK)", "gal": "gal - Gallon (US)", "gal-uk": "gal - Gallon (UK)",

	"unit": "unit - Unit/Piece", "piece": "piece - Piece", "item": "item - Item",
	"ea": "ea - Each", "pair": "pair - Pair (2)", "dozen": "dozen - Dozen (12)",
	"gross": "gross - Gross (144)", "score": "score - Score (20)",
}

// currencySymbols maps supported ISO currency codes to their short symbols.
// Currency is treated as an opaque label for display only; no conversion
// between currencies ever happens.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"JPY": "¥",
	"CNY": "¥",
	"AUD": "A$",
	"CAD": "C$",
}

// LookupUnit returns the category and to-base factor registered for a
// unit token. The second return value is false for unknown tokens.
func LookupUnit(unit string) (Category, float64, bool) {
	def, ok := unitRegistry[unit]
	if !ok {
		return "", 0, false
	}
	return def.Category, def.ToBase, true
}

// BaseUnitName returns the canonical label of a category's base unit
// ("g", "ml" or "unit"). Unknown categories fall back to "unit".
func BaseUnitName(category Category) string {
	if name, ok := baseUnitNames[category]; ok {
		return name
	}
	return "unit"
}

// UnitDisplayName returns a human-readable label for a unit token, or
// the token itself when no label is registered.
func UnitDisplayName(unit string) string {
	if name, ok := unitDisplayNames[unit]; ok {
		return name
	}
	return unit
}

// CurrencySymbol returns the short symbol for a currency code, or the
// code itself when the currency is not in the table.
func CurrencySymbol(code string) string {
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	return code
}

// KnownUnits returns every unit token in the taxonomy. Order is not
// defined; callers who need stable output must sort.
func KnownUnits() []string {
	units := make([]string, 0, len(unitRegistry))
	for unit := range unitRegistry {
		units = append(units, unit)
	}
	return units
}
