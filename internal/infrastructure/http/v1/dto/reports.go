package dto

import (
	"time"

	"ferreo/internal/core/types"
	"ferreo/internal/domain/reports"
)

// --- Customer statement ---

// StatementEntryResponse is one row of a customer statement.
type StatementEntryResponse struct {
	Date     time.Time   `json:"date"`
	Type     string      `json:"type"`
	Number   string      `json:"number"`
	Debit    types.Money `json:"debit"`
	Credit   types.Money `json:"credit"`
	Balance  types.Money `json:"balance"`
	EntityID string      `json:"entityId"`
}

// StatementResponse is the customer account statement.
type StatementResponse struct {
	CustomerID     string                   `json:"customerId"`
	CustomerName   string                   `json:"customerName"`
	From           time.Time                `json:"from"`
	To             time.Time                `json:"to"`
	OpeningBalance types.Money              `json:"openingBalance"`
	ClosingBalance types.Money              `json:"closingBalance"`
	Entries        []StatementEntryResponse `json:"entries"`
}

// FromStatement creates response DTO from the domain statement.
func FromStatement(s *reports.Statement) *StatementResponse {
	resp := &StatementResponse{
		CustomerID:     s.CustomerID.String(),
		CustomerName:   s.CustomerName,
		From:           s.From,
		To:             s.To,
		OpeningBalance: s.OpeningBalance,
		ClosingBalance: s.ClosingBalance,
		Entries:        make([]StatementEntryResponse, 0, len(s.Entries)),
	}

	for _, e := range s.Entries {
		resp.Entries = append(resp.Entries, StatementEntryResponse{
			Date:     e.Date,
			Type:     e.Type,
			Number:   e.Number,
			Debit:    e.Debit,
			Credit:   e.Credit,
			Balance:  e.Balance,
			EntityID: e.EntityID.String(),
		})
	}

	return resp
}
