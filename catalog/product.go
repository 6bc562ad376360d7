package catalog

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/uptrace/bun"
)

// MaxNameLength bounds product names.
const MaxNameLength = 100

// Product is the catalog entity owned by the Store. Cache entries hold
// derivative copies and are never the source of truth.
type Product struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	ID        string    `bun:"id,pk" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	Price     float64   `bun:"price,notnull" json:"price"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

// ProductInput carries the caller-supplied fields for Create and Update.
type ProductInput struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Validate enforces the entity invariants before any write reaches the store:
// a non-empty name of at most MaxNameLength runes and a strictly positive price.
func (in ProductInput) Validate() error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.RuneLength(1, MaxNameLength)),
		validation.Field(&in.Price, validation.Min(0.0).Exclusive()),
	)
	if err != nil {
		return &ValidationError{cause: err}
	}
	return nil
}
