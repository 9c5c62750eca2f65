package shared

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

// AmountPrecision is the number of fractional digits every Amount carries.
const AmountPrecision int32 = 4

var ErrInvalidNumericalString = errors.New("invalid numerical string")

// decimal.NewFromString also accepts exponents; amounts in ledger files never use them.
var amountPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// Amount is a decimal value held at exactly AmountPrecision fractional digits.
// Values are rescaled with round-half-even whenever they are constructed.
type Amount struct {
	value decimal.Decimal
}

func newAmount(value decimal.Decimal) Amount {
	return Amount{value: value.RoundBank(AmountPrecision)}
}

func ZeroAmount() Amount {
	return newAmount(decimal.Zero)
}

func NewAmountFromInt(value int64) Amount {
	return newAmount(decimal.NewFromInt(value))
}

func ParseAmount(s string) (Amount, error) {
	if !amountPattern.MatchString(s) {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidNumericalString, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q: %v", ErrInvalidNumericalString, s, err)
	}
	return newAmount(d), nil
}

// MustParseAmount is ParseAmount for literals known to be valid.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Add(other Amount) Amount {
	return newAmount(a.value.Add(other.value))
}

func (a Amount) Sub(other Amount) Amount {
	return newAmount(a.value.Sub(other.value))
}

func (a Amount) Neg() Amount {
	return newAmount(a.value.Neg())
}

func (a Amount) Cmp(other Amount) int {
	return a.value.Cmp(other.value)
}

func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}

func (a Amount) IsNegative() bool {
	return a.value.IsNegative()
}

func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// String renders the fixed-point form, e.g. "1.5000".
func (a Amount) String() string {
	return a.value.StringFixed(AmountPrecision)
}

func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Amount) UnmarshalText(text []byte) error {
	parsed, err := ParseAmount(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
