package models

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Price is a fixed-point currency amount. It is persisted as a
// numeric(10,2) column and transmitted to API clients as a bare JSON
// number, so all string/number coercion happens in this one type and
// float rounding never reaches the store.
type Price struct {
	dec decimal.Decimal
}

// NewPrice builds a Price from an API-supplied float, rounded to cents.
func NewPrice(f float64) Price {
	return Price{dec: decimal.NewFromFloat(f).Round(2)}
}

// NewPricePtr is the nullable variant of NewPrice.
func NewPricePtr(f *float64) *Price {
	if f == nil {
		return nil
	}
	p := NewPrice(*f)
	return &p
}

// Decimal returns the underlying decimal value.
func (p Price) Decimal() decimal.Decimal { return p.dec }

// Float64 returns the amount as a float for API consumers.
func (p Price) Float64() float64 {
	f, _ := p.dec.Float64()
	return f
}

// Positive reports whether the amount is strictly greater than zero.
func (p Price) Positive() bool { return p.dec.IsPositive() }

// Equal reports exact numeric equality.
func (p Price) Equal(other Price) bool { return p.dec.Equal(other.dec) }

// String returns the canonical two-decimal form, e.g. "42.50".
func (p Price) String() string { return p.dec.StringFixed(2) }

// Value implements driver.Valuer; the store always receives the
// canonical two-decimal string form.
func (p Price) Value() (driver.Value, error) {
	return p.dec.StringFixed(2), nil
}

// Scan implements sql.Scanner for the representations the postgres and
// sqlite drivers hand back for numeric columns.
func (p *Price) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		p.dec = decimal.Zero
		return nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("scan price: %w", err)
		}
		p.dec = d
	case []byte:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return fmt.Errorf("scan price: %w", err)
		}
		p.dec = d
	case float64:
		p.dec = decimal.NewFromFloat(v)
	case int64:
		p.dec = decimal.NewFromInt(v)
	default:
		return fmt.Errorf("scan price: unsupported source type %T", src)
	}
	return nil
}

// MarshalJSON emits the amount as a bare JSON number.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.dec.String()), nil
}

// UnmarshalJSON accepts both quoted and bare numeric forms.
func (p *Price) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("parse price: %w", err)
	}
	p.dec = d
	return nil
}

// GormDataType tells the migrator which column type to create.
func (Price) GormDataType() string { return "numeric(10,2)" }
