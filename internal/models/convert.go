package models

// ConvertRequest is a single conversion query.
// swagger:model ConvertRequest
type ConvertRequest struct {
	// Non-negative amount in the source currency
	Amount float64 `json:"amount" example:"10"`
	// Source currency code
	From string `json:"from" example:"USD"`
	// Target currency code
	To string `json:"to" example:"JPY"`
}

// ConvertResponse is the conversion result.
// swagger:model ConvertResponse
type ConvertResponse struct {
	// Converted amount; equals the input amount while no usable table exists
	Result float64 `json:"result" example:"1500"`
	From   string  `json:"from" example:"USD"`
	To     string  `json:"to" example:"JPY"`
	// True when the table was not anchored to the source currency and a
	// background refresh was requested
	RefreshTriggered bool `json:"refresh_triggered" example:"false"`
}
