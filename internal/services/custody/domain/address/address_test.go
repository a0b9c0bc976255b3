package address

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestStringChecksum(t *testing.T) {
	// Reference vectors from EIP-55.
	vectors := []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	}
	for _, want := range vectors {
		a, err := Parse(want)
		if err != nil {
			t.Fatalf("Parse(%q): %v", want, err)
		}
		if got := a.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		err  error
	}{
		{name: "lowercase", raw: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"},
		{name: "uppercase body", raw: "0x5AAEB6053F3E94C9B9A09F33669435E7EF1BEAED"},
		{name: "no prefix", raw: "5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"},
		{name: "short", raw: "0x1234", err: ErrInvalidLength},
		{name: "not hex", raw: "0xzzaeb6053f3e94c9b9a09f33669435e7ef1beaed", err: ErrInvalidHex},
		{name: "bad checksum", raw: "0x5AAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", err: ErrBadChecksum},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			if tt.err == nil && err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.raw, err)
			}
			if tt.err != nil && !errors.Is(err, tt.err) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.raw, err, tt.err)
			}
		})
	}
}

func TestDeriveIsStable(t *testing.T) {
	a := Derive("owner")
	b := Derive("owner")
	if a != b {
		t.Fatalf("Derive not deterministic: %s != %s", a, b)
	}
	if a == Derive("guardian") {
		t.Fatal("expected distinct seeds to give distinct addresses")
	}
	if a.IsZero() {
		t.Fatal("expected non-zero address")
	}
}

func TestJSONRoundTripUsesChecksum(t *testing.T) {
	a := MustParse("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	data, err := json.Marshal(map[string]Address{"owner": a})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"owner":"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"}` {
		t.Fatalf("json = %s", data)
	}
	var decoded map[string]Address
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["owner"] != a {
		t.Fatalf("decoded = %s, want %s", decoded["owner"], a)
	}
}

func TestHexIsLowercase(t *testing.T) {
	a := MustParse("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	if got := a.Hex(); got != "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed" {
		t.Fatalf("Hex() = %q", got)
	}
}
