package domain

// Currency is the ISO-style code of a supported foreign currency.
type Currency string

// String returns the string form of the currency code.
func (c Currency) String() string { return string(c) }

// Supported currencies of the fixed rate table.
const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	JPY Currency = "JPY"
	AUD Currency = "AUD"
)

// RateEntry is one row of the fixed exchange table: how many PHP buy one
// unit of the foreign currency.
type RateEntry struct {
	Code       Currency
	Symbol     string // display symbol, e.g. "$" or "A$"
	PHPPerUnit float64
}

// Label renders the entry the way the rate screens print it, e.g. "USD ($)".
func (r RateEntry) Label() string { return string(r.Code) + " (" + r.Symbol + ")" }

// StudentProfile holds the fields shown by the student info screen.
type StudentProfile struct {
	Name    string
	Section string // section and course, e.g. "BSCS 1-A"
	Age     int
	Gender  string
	Device  string
}

// GradeRecord is a labeled score collected during one grade evaluation.
// Records live only for the duration of the activity run.
type GradeRecord struct {
	Label string
	Value float64
}

// GradeResult is the outcome of averaging a set of grade records.
type GradeResult struct {
	Average float64
	Passed  bool
}

// ConvertedAmount pairs a rate entry with the foreign amount it yields.
type ConvertedAmount struct {
	Entry  RateEntry
	Amount float64
}

// ExchangeQuote holds everything one conversion request derives. It is
// computed once per request and discarded after display.
type ExchangeQuote struct {
	Gross     float64 // PHP amount before the fee
	Fee       float64
	Net       float64 // PHP amount actually converted
	Converted []ConvertedAmount
}
