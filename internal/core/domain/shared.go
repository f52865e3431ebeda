package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type ID string

var ErrInvalidPrice = errors.New("invalid price")

// Amount is a monetary value in cents.
type Amount int64

func NewAmountFromCents(cents int64) Amount {
	return Amount(cents)
}

func NewAmountFromValue(value int64) Amount {
	return Amount(value * 100)
}

// ParsePrice converts a display price such as "$1,048.50" into cents.
func ParsePrice(display string) (Amount, error) {
	clean := strings.NewReplacer("$", "", ",", "", " ", "").Replace(display)
	if clean == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, display)
	}
	value, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, display)
	}
	if value.IsNegative() {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidPrice, display)
	}
	return Amount(value.Shift(2).Round(0).IntPart()), nil
}

// ParsePriceOrZero masks malformed prices to a zero contribution.
func ParsePriceOrZero(display string) Amount {
	amount, err := ParsePrice(display)
	if err != nil {
		return 0
	}
	return amount
}

func (a Amount) Add(b Amount) Amount {
	return a + b
}

func (a Amount) Sub(b Amount) Amount {
	return a - b
}

func (a Amount) Multiply(b int) Amount {
	return a * Amount(b)
}

func (a Amount) ToValue() int64 {
	return int64(a) / 100
}

func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

// Discount returns the amount left after taking rate off, rounded to the cent.
func (a Amount) Discount(rate DiscountRate) Amount {
	remaining := decimal.NewFromInt(1).Sub(rate.Decimal())
	return Amount(decimal.NewFromInt(int64(a)).Mul(remaining).Round(0).IntPart())
}

func (a Amount) String() string {
	return "$" + a.Decimal().StringFixed(2)
}

// DiscountRate is a fraction in [0, 1].
type DiscountRate struct {
	value decimal.Decimal
}

func NewDiscountRate(value string) (DiscountRate, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return DiscountRate{}, fmt.Errorf("invalid discount rate %q: %w", value, err)
	}
	if !inUnitRange(d) {
		return DiscountRate{}, fmt.Errorf("discount rate %q out of range [0, 1]", value)
	}
	return DiscountRate{value: d}, nil
}

func inUnitRange(d decimal.Decimal) bool {
	return !d.IsNegative() && !d.GreaterThan(decimal.NewFromInt(1))
}

func MustDiscountRate(value string) DiscountRate {
	rate, err := NewDiscountRate(value)
	if err != nil {
		panic(err)
	}
	return rate
}

func (r DiscountRate) Decimal() decimal.Decimal {
	return r.value
}

func (r DiscountRate) Add(other DiscountRate) DiscountRate {
	sum := r.value.Add(other.value)
	if sum.GreaterThan(decimal.NewFromInt(1)) {
		sum = decimal.NewFromInt(1)
	}
	return DiscountRate{value: sum}
}

func (r DiscountRate) IsZero() bool {
	return r.value.IsZero()
}

// Percent renders the rate as a whole percentage, e.g. "15%".
func (r DiscountRate) Percent() string {
	return r.value.Shift(2).StringFixed(0) + "%"
}

func (r DiscountRate) String() string {
	return r.value.String()
}

func (r DiscountRate) MarshalJSON() ([]byte, error) {
	return r.value.MarshalJSON()
}

func (r *DiscountRate) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	if !inUnitRange(d) {
		return fmt.Errorf("discount rate %s out of range [0, 1]", d)
	}
	r.value = d
	return nil
}

type Event interface {
	GetName() string
	GetEntityName() string
}
