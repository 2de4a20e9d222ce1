package models

// SelectionRequest updates the user-selected currency pair and amount.
// swagger:model SelectionRequest
type SelectionRequest struct {
	From   string  `json:"from" example:"USD"`
	To     string  `json:"to" example:"EUR"`
	Amount float64 `json:"amount" example:"100"`
}

// SelectionResponse is the current selection plus its converted result.
// swagger:model SelectionResponse
type SelectionResponse struct {
	From   string  `json:"from" example:"USD"`
	To     string  `json:"to" example:"EUR"`
	Amount float64 `json:"amount" example:"100"`
	// Converted amount for the selection against the committed table
	Result float64 `json:"result" example:"92.4"`
	// True when the result is a pass-through pending a refresh
	RefreshTriggered bool `json:"refresh_triggered" example:"false"`
}

// RefreshRequest optionally names the base currency to refresh for.
// swagger:model RefreshRequest
type RefreshRequest struct {
	// Base currency; defaults to the currently selected one
	Base string `json:"base,omitempty" example:"EUR"`
}

// RefreshResponse acknowledges a refresh trigger.
// swagger:model RefreshResponse
type RefreshResponse struct {
	Base string `json:"base" example:"EUR"`
	// Always "accepted"; the fetch completes in the background
	Status string `json:"status" example:"accepted"`
}
