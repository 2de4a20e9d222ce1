package models

// Currency codes supported by the service.
const (
	USD = "USD"
	EUR = "EUR"
	GBP = "GBP"
	JPY = "JPY"
	AUD = "AUD"
	CAD = "CAD"
	CHF = "CHF"
	CNY = "CNY"
	INR = "INR"
	KRW = "KRW"
	RUB = "RUB"
	BRL = "BRL"
)

// Currency describes a supported currency.
// swagger:model Currency
type Currency struct {
	// ISO 4217 code
	Code string `json:"code" example:"USD"`
	// Human-readable name
	Name string `json:"name" example:"United States Dollar"`
}

// Catalog is the fixed set of supported currencies. It is defined at process
// start and never modified at runtime.
var Catalog = []Currency{
	{Code: USD, Name: "United States Dollar"},
	{Code: EUR, Name: "Euro"},
	{Code: GBP, Name: "British Pound Sterling"},
	{Code: JPY, Name: "Japanese Yen"},
	{Code: AUD, Name: "Australian Dollar"},
	{Code: CAD, Name: "Canadian Dollar"},
	{Code: CHF, Name: "Swiss Franc"},
	{Code: CNY, Name: "Chinese Yuan"},
	{Code: INR, Name: "Indian Rupee"},
	{Code: KRW, Name: "South Korean Won"},
	{Code: RUB, Name: "Russian Ruble"},
	{Code: BRL, Name: "Brazilian Real"},
}

var catalogIndex = func() map[string]struct{} {
	idx := make(map[string]struct{}, len(Catalog))
	for _, c := range Catalog {
		idx[c.Code] = struct{}{}
	}
	return idx
}()

// SupportedCodes returns the catalog codes in catalog order.
func SupportedCodes() []string {
	codes := make([]string, 0, len(Catalog))
	for _, c := range Catalog {
		codes = append(codes, c.Code)
	}
	return codes
}

// IsSupported reports whether code belongs to the catalog.
func IsSupported(code string) bool {
	_, ok := catalogIndex[code]
	return ok
}

// CurrenciesResponse lists the supported currencies.
// swagger:model CurrenciesResponse
type CurrenciesResponse struct {
	Currencies []Currency `json:"currencies"`
}
