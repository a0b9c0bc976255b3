package amount

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

const (
	maxUint256 = "115792089237316195423570985008687907853269984665640564039457584007913129639935"
	pow2To256  = "115792089237316195423570985008687907853269984665640564039457584007913129639936"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		err  error
	}{
		{raw: "0", want: "0"},
		{raw: "100000", want: "100000"},
		{raw: "42wei", want: "42"},
		{raw: "0.1eth", want: "100000000000000000"},
		{raw: "0.2 ether", want: "200000000000000000"},
		{raw: "1ETH", want: "1000000000000000000"},
		{raw: "1.5", err: ErrFractional},
		{raw: "-1", err: ErrNegative},
		{raw: "eth", err: ErrSyntax},
		{raw: "abc", err: ErrSyntax},
		{raw: "0e-20000000", want: "0"},
		{raw: "10e-1", want: "1"},
		{raw: maxUint256, want: maxUint256},
		{raw: pow2To256, err: ErrOverflow},
		{raw: "1e80", err: ErrOverflow},
		{raw: "1e60eth", err: ErrOverflow},
		{raw: "1e20000000", err: ErrOverflow},
		{raw: "1e-20000000", err: ErrFractional},
	}
	for _, tt := range tests {
		got, err := Parse(tt.raw)
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.raw, err, tt.err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.raw, err)
		}
		if got.String() != tt.want {
			t.Fatalf("Parse(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := MustEther("0.2")
	b := MustEther("0.1")

	rest, ok := a.Sub(b)
	if !ok {
		t.Fatal("expected 0.2 - 0.1 to succeed")
	}
	if rest.Cmp(b) != 0 {
		t.Fatalf("0.2 - 0.1 = %s, want %s", rest, b)
	}
	if _, ok := b.Sub(a); ok {
		t.Fatal("expected 0.1 - 0.2 to fail")
	}
	if got, ok := rest.Add(b); !ok || got.Cmp(a) != 0 {
		t.Fatalf("0.1 + 0.1 = %s, %v; want %s", got, ok, a)
	}
	if _, ok := Max().Add(FromUint64(1)); ok {
		t.Fatal("expected Max + 1 to overflow")
	}
	if got, ok := Max().Add(Zero()); !ok || got.String() != maxUint256 {
		t.Fatalf("Max + 0 = %s, %v", got, ok)
	}
	if a.String() != "200000000000000000" {
		t.Fatalf("operands mutated: a = %s", a)
	}
}

func TestZeroValue(t *testing.T) {
	var a Amount
	if !a.IsZero() {
		t.Fatal("zero value should be zero")
	}
	if a.String() != "0" {
		t.Fatalf("String() = %q, want 0", a.String())
	}
	if a.Cmp(Zero()) != 0 {
		t.Fatal("zero value should equal Zero()")
	}
}

func TestEtherString(t *testing.T) {
	if got := MustEther("0.1").EtherString(); got != "0.1" {
		t.Fatalf("EtherString() = %q, want 0.1", got)
	}
	if got := FromUint64(1).EtherString(); got != "0.000000000000000001" {
		t.Fatalf("EtherString() = %q", got)
	}
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(MustEther("0.1"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"100000000000000000"` {
		t.Fatalf("json = %s", data)
	}
	var fromNumber Amount
	if err := json.Unmarshal([]byte(`25`), &fromNumber); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if fromNumber.String() != "25" {
		t.Fatalf("decoded = %s, want 25", fromNumber)
	}
	var negative Amount
	if err := json.Unmarshal([]byte(`"-5"`), &negative); !errors.Is(err, ErrNegative) {
		t.Fatalf("err = %v, want %v", err, ErrNegative)
	}
}

func TestParseHugeExponentIsFast(t *testing.T) {
	start := time.Now()
	for _, raw := range []string{"1e2147483647", "9e2000000000eth", "1e-2147483647"} {
		if _, err := Parse(raw); err == nil {
			t.Fatalf("Parse(%q) succeeded", raw)
		}
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("parsing took %s", elapsed)
	}
}

func TestBoundsOnDecode(t *testing.T) {
	var a Amount
	if err := json.Unmarshal([]byte(`"`+maxUint256+`"`), &a); err != nil {
		t.Fatalf("unmarshal max: %v", err)
	}
	if a.Cmp(Max()) != 0 {
		t.Fatalf("decoded = %s, want %s", a, maxUint256)
	}
	if err := json.Unmarshal([]byte(`"`+pow2To256+`"`), &a); !errors.Is(err, ErrOverflow) {
		t.Fatalf("err = %v, want %v", err, ErrOverflow)
	}
	if err := json.Unmarshal([]byte(`"1`+maxUint256+`"`), &a); !errors.Is(err, ErrOverflow) {
		t.Fatalf("err = %v, want %v", err, ErrOverflow)
	}
	if _, err := FromBig(Max().Big().Lsh(Max().Big(), 1)); !errors.Is(err, ErrOverflow) {
		t.Fatalf("FromBig err = %v, want %v", err, ErrOverflow)
	}
}
