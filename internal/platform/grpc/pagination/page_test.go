package pagination

import (
	"testing"

	apperrors "github.com/louisbranch/custody/internal/platform/errors"
)

func TestClampPageSize(t *testing.T) {
	cfg := PageSizeConfig{Default: 50, Max: 500}
	tests := []struct {
		in   int32
		want int
	}{
		{in: 0, want: 50},
		{in: -3, want: 50},
		{in: 10, want: 10},
		{in: 900, want: 500},
	}
	for _, tt := range tests {
		if got := ClampPageSize(tt.in, cfg); got != tt.want {
			t.Fatalf("ClampPageSize(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if got := ClampPageSize(0, PageSizeConfig{}); got != 1 {
		t.Fatalf("ClampPageSize with empty config = %d, want 1", got)
	}
}

func TestParseOrderBy(t *testing.T) {
	tests := []struct {
		in       string
		want     Order
		wantCode apperrors.Code
	}{
		{in: "", want: Order{Field: "seq"}},
		{in: "seq", want: Order{Field: "seq"}},
		{in: "SEQ DESC", want: Order{Field: "seq", Descending: true}},
		{in: "seq asc", want: Order{Field: "seq"}},
		{in: "ts", wantCode: apperrors.CodeInvalidArgument},
		{in: "seq sideways", wantCode: apperrors.CodeInvalidArgument},
		{in: "seq desc extra", wantCode: apperrors.CodeInvalidArgument},
	}
	for _, tt := range tests {
		got, err := ParseOrderBy(tt.in, "seq")
		if tt.wantCode != "" {
			if apperrors.CodeOf(err) != tt.wantCode {
				t.Fatalf("ParseOrderBy(%q) code = %s, want %s", tt.in, apperrors.CodeOf(err), tt.wantCode)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseOrderBy(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseOrderBy(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
