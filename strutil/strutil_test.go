package strutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sciutil/strutil"
)

// TestFormat_Basic checks that mixed verbs render exactly once.
func TestFormat_Basic(t *testing.T) {
	got := strutil.Format("%s has %d determinants (%.2f%%)", "CAS", 42, 99.5)
	assert.Equal(t, "CAS has 42 determinants (99.50%)", got)
}

// TestFormat_MismatchIsNotRejected documents that Format leaves fmt's markers in place.
func TestFormat_MismatchIsNotRejected(t *testing.T) {
	format := "%d"
	got := strutil.Format(format, "x")
	assert.Equal(t, "%!d(string=x)", got)
}

func TestFormatStrict(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		args    []any
		want    string
		wantErr bool
	}{
		{name: "ok", format: "n=%d e=%.3f", args: []any{3, 1.5}, want: "n=3 e=1.500"},
		{name: "literal percent bang", format: "100%%!", args: nil, want: "100%!"},
		{name: "escaped percent before operand", format: "%%%s", args: []any{"!"}, want: "%!"},
		{name: "literal marker text", format: "%%!d(x) %d", args: []any{7}, want: "%!d(x) 7"},
		{name: "bad width", format: "%*d", args: []any{"w", 1}, wantErr: true},
		{name: "wrong type", format: "%d", args: []any{"x"}, wantErr: true},
		{name: "missing operand", format: "%d %d", args: []any{1}, wantErr: true},
		{name: "extra operand", format: "%d", args: []any{1, 2}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := strutil.FormatStrict(tt.format, tt.args...)
			if tt.wantErr {
				require.ErrorIs(t, err, strutil.ErrBadFormat)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatEnergy(t *testing.T) {
	assert.Equal(t, "-1.1372838345 Ha", strutil.FormatEnergy(-1.13728383446))
	assert.Equal(t, "0.0000000000 Ha", strutil.FormatEnergy(0))
}

func TestEqualsCI(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"ABC", "abc", true},
		{"ABC", "abd", false},
		{"", "", true},
		{"abc", "abcd", false},
		{"Cr2_ccPVDZ", "cr2_CCpvdz", true},
		{"a-b", "A_B", false},
		{"[", "{", false}, // 0x5B vs 0x7B differ by 0x20 but are not letters
		{"é", "É", false}, // non-ASCII is compared byte for byte
		{"é", "é", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, strutil.EqualsCI(tt.a, tt.b), "EqualsCI(%q, %q)", tt.a, tt.b)
		assert.Equal(t, tt.want, strutil.EqualsCI(tt.b, tt.a), "symmetry for (%q, %q)", tt.a, tt.b)
	}
}
