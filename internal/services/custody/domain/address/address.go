// Package address defines the 20-byte account identity used across custody.
//
// Addresses render in EIP-55 mixed-case checksum form. Parsing accepts
// all-lowercase or all-uppercase hex without a checksum, and verifies the
// checksum when the input is mixed case.
package address

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Length is the byte length of an address.
const Length = 20

// Address identifies an account, contract or caller.
type Address [Length]byte

// Zero is the null identity.
var Zero Address

var (
	// ErrInvalidLength indicates the hex body is not 40 characters.
	ErrInvalidLength = errors.New("address must be 40 hex characters")
	// ErrInvalidHex indicates a non-hex character.
	ErrInvalidHex = errors.New("address must be hex encoded")
	// ErrBadChecksum indicates a mixed-case address with a wrong checksum.
	ErrBadChecksum = errors.New("address checksum mismatch")
)

// Parse decodes a 0x-prefixed (or bare) hex address.
func Parse(raw string) (Address, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != 2*Length {
		return Zero, fmt.Errorf("parse %q: %w", raw, ErrInvalidLength)
	}
	var a Address
	if _, err := hex.Decode(a[:], []byte(s)); err != nil {
		return Zero, fmt.Errorf("parse %q: %w", raw, ErrInvalidHex)
	}
	if isMixedCase(s) && a.checksumHex() != s {
		return Zero, fmt.Errorf("parse %q: %w", raw, ErrBadChecksum)
	}
	return a, nil
}

// MustParse is Parse for constants and tests.
func MustParse(raw string) Address {
	a, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return a
}

// Derive returns the address of the Keccak-256 hash of seed. It names
// deterministic accounts in genesis files and tests.
func Derive(seed string) Address {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(seed))
	var a Address
	copy(a[:], h.Sum(nil)[32-Length:])
	return a
}

// IsZero reports whether a is the null identity.
func (a Address) IsZero() bool {
	return a == Zero
}

// String returns the EIP-55 checksummed form.
func (a Address) String() string {
	return "0x" + a.checksumHex()
}

// Hex returns the lowercase form, used as a storage key.
func (a Address) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

// MarshalText encodes the checksummed form.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes any form Parse accepts.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Address) checksumHex() string {
	lower := hex.EncodeToString(a[:])
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	digest := h.Sum(nil)

	out := []byte(lower)
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0x0f >= 8 {
			out[i] = c - ('a' - 'A')
		}
	}
	return string(out)
}

func isMixedCase(s string) bool {
	return strings.ToLower(s) != s && strings.ToUpper(s) != s
}
