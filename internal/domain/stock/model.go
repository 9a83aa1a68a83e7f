// Package stock provides the stock movement ledger.
// Every sales invoice and purchase invoice writes signed movements here
// in the same transaction that creates the document; the product's
// cached quantity is the running sum of its movements.
package stock

import (
	"time"

	"ferreo/internal/core/id"
	"ferreo/internal/core/types"
)

// Movement direction.
const (
	// DirectionIn increases stock (purchase invoice lines).
	DirectionIn = "IN"
	// DirectionOut decreases stock (sales invoice lines).
	DirectionOut = "OUT"
)

// Movement is one signed entry in the stock ledger.
type Movement struct {
	ID id.ID `db:"id" json:"id"`

	ProductID id.ID `db:"product_id" json:"productId"`

	// Document that produced the movement
	DocumentID   id.ID  `db:"document_id" json:"documentId"`
	DocumentType string `db:"document_type" json:"documentType"`

	Direction string      `db:"direction" json:"direction"`
	Quantity  types.Money `db:"quantity" json:"quantity"`

	Date      time.Time `db:"date" json:"date"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// NewMovement creates a movement entry for a document line.
func NewMovement(productID, documentID id.ID, documentType, direction string, qty types.Money, date time.Time) Movement {
	return Movement{
		ID:           id.New(),
		ProductID:    productID,
		DocumentID:   documentID,
		DocumentType: documentType,
		Direction:    direction,
		Quantity:     qty,
		Date:         date,
		CreatedAt:    time.Now().UTC(),
	}
}

// SignedQuantity returns the delta to apply to the cached stock counter.
func (m Movement) SignedQuantity() types.Money {
	if m.Direction == DirectionOut {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
