// Package amount represents non-negative values in base units (wei).
package amount

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// EtherDecimals is the number of base-unit decimals in one ether.
	EtherDecimals = 18
	// MaxBits bounds every amount, matching a uint256 balance.
	MaxBits = 256
	// maxDigits is the decimal length of 2^256-1.
	maxDigits = 78
)

var (
	// ErrNegative indicates a negative value.
	ErrNegative = errors.New("amount must not be negative")
	// ErrFractional indicates a value with sub-wei precision.
	ErrFractional = errors.New("amount must be a whole number of base units")
	// ErrSyntax indicates an unparseable amount.
	ErrSyntax = errors.New("amount syntax is invalid")
	// ErrOverflow indicates a value above 2^256-1.
	ErrOverflow = errors.New("amount exceeds 256 bits")
)

// Max returns 2^256-1, the largest representable amount.
func Max() Amount {
	return Amount{v: new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), MaxBits), big.NewInt(1))}
}

// Amount is an immutable non-negative integer count of base units.
// The zero value is zero.
type Amount struct {
	v *big.Int
}

// Zero returns a zero amount.
func Zero() Amount {
	return Amount{}
}

// FromUint64 returns n base units.
func FromUint64(n uint64) Amount {
	return Amount{v: new(big.Int).SetUint64(n)}
}

// FromBig copies b. Negative values and values above Max are rejected.
func FromBig(b *big.Int) (Amount, error) {
	if b == nil {
		return Zero(), nil
	}
	if b.Sign() < 0 {
		return Zero(), ErrNegative
	}
	if b.BitLen() > MaxBits {
		return Zero(), ErrOverflow
	}
	return Amount{v: new(big.Int).Set(b)}, nil
}

// Parse reads a base-unit integer ("100000"), a wei suffix ("100wei") or an
// ether value ("0.1eth", "0.1ether").
func Parse(raw string) (Amount, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	shift := int32(0)
	switch {
	case strings.HasSuffix(s, "ether"):
		s, shift = strings.TrimSuffix(s, "ether"), EtherDecimals
	case strings.HasSuffix(s, "eth"):
		s, shift = strings.TrimSuffix(s, "eth"), EtherDecimals
	case strings.HasSuffix(s, "wei"):
		s = strings.TrimSuffix(s, "wei")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero(), fmt.Errorf("parse %q: %w", raw, ErrSyntax)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero(), fmt.Errorf("parse %q: %w", raw, ErrSyntax)
	}
	return fromDecimal(d, shift, raw)
}

// Ether parses a decimal ether value such as "0.2".
func Ether(raw string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return Zero(), fmt.Errorf("parse %q: %w", raw, ErrSyntax)
	}
	return fromDecimal(d, EtherDecimals, raw)
}

// MustEther is Ether for constants and tests.
func MustEther(raw string) Amount {
	a, err := Ether(raw)
	if err != nil {
		panic(err)
	}
	return a
}

// fromDecimal scales d by 10^shift. The exponent is checked against the
// coefficient length before any rescaling, so "1e20000000" fails fast.
func fromDecimal(d decimal.Decimal, shift int32, raw string) (Amount, error) {
	if d.Sign() < 0 {
		return Zero(), fmt.Errorf("parse %q: %w", raw, ErrNegative)
	}
	if d.IsZero() {
		return Zero(), nil
	}
	exp := int64(d.Exponent()) + int64(shift)
	digits := int64(d.NumDigits())
	if digits+exp > maxDigits {
		return Zero(), fmt.Errorf("parse %q: %w", raw, ErrOverflow)
	}
	if -exp >= digits {
		return Zero(), fmt.Errorf("parse %q: %w", raw, ErrFractional)
	}
	d = d.Shift(shift)
	if !d.Equal(d.Truncate(0)) {
		return Zero(), fmt.Errorf("parse %q: %w", raw, ErrFractional)
	}
	v := d.BigInt()
	if v.BitLen() > MaxBits {
		return Zero(), fmt.Errorf("parse %q: %w", raw, ErrOverflow)
	}
	return Amount{v: v}, nil
}

func (a Amount) big() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return a.v
}

// Big returns a copy of the underlying integer.
func (a Amount) Big() *big.Int {
	return new(big.Int).Set(a.big())
}

// IsZero reports whether a is zero.
func (a Amount) IsZero() bool {
	return a.v == nil || a.v.Sign() == 0
}

// Cmp compares a and b like big.Int.Cmp.
func (a Amount) Cmp(b Amount) int {
	return a.big().Cmp(b.big())
}

// Add returns a + b, or false when the sum exceeds Max.
func (a Amount) Add(b Amount) (Amount, bool) {
	sum := new(big.Int).Add(a.big(), b.big())
	if sum.BitLen() > MaxBits {
		return a, false
	}
	return Amount{v: sum}, true
}

// Sub returns a - b, or false when the result would be negative.
func (a Amount) Sub(b Amount) (Amount, bool) {
	if a.Cmp(b) < 0 {
		return a, false
	}
	return Amount{v: new(big.Int).Sub(a.big(), b.big())}, true
}

// String returns the decimal base-unit form.
func (a Amount) String() string {
	return a.big().String()
}

// EtherString returns the value in ether without trailing zeros.
func (a Amount) EtherString() string {
	return decimal.NewFromBigInt(a.big(), -EtherDecimals).String()
}

// MarshalJSON encodes the base-unit decimal string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts a base-unit string or JSON number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		s = string(data)
	}
	s = strings.TrimSpace(s)
	if len(strings.TrimLeft(s, "0")) > maxDigits {
		return fmt.Errorf("decode amount: %w", ErrOverflow)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("decode amount %s: %w", data, ErrSyntax)
	}
	parsed, err := FromBig(v)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
