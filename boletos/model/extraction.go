package model

import "github.com/shopspring/decimal"

// ExtractedInfo is the structured suggestion produced from free boleto text.
// A failed extraction yields no suggestion, never an error to the caller.
type ExtractedInfo struct {
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	DueDate  string          `json:"due_date"`
	Barcode  *string         `json:"barcode,omitempty"`
	Category string          `json:"category"`
}
