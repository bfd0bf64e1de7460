package intl

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"", "en"},
		{"en", "en"},
		{"de", "de"},
		{"de-AT", "de"},
		{"en-GB", "en"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			lang, err := Lookup(tc.code)
			require.NoError(t, err)
			assert.Equal(t, tc.want, lang.Code)
		})
	}

	_, err := Lookup("not a tag!")
	require.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestLookup_Unsupported(t *testing.T) {
	_, err := Lookup("fr")
	require.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func mustLookup(t *testing.T, code string) SupportedLanguage {
	t.Helper()
	lang, err := Lookup(code)
	require.NoError(t, err)
	return lang
}

func TestLocalizer_Messages(t *testing.T) {
	bundle := LoadBundle()
	de := NewLocalizer(bundle, mustLookup(t, "de"))
	en := NewLocalizer(bundle, mustLookup(t, "en"))

	assert.Equal(t, "Unbekannte Stelle", de.T("Tooltip.UnknownPosition", nil))
	assert.Equal(t, "Total: 87.5%", en.T("Tooltip.Total", map[string]any{"Total": "87.5"}))
	assert.Equal(t, "Mär", de.MonthShort(time.March))
	assert.Equal(t, "Oct 2024", en.MonthYear(time.Date(2024, 10, 3, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "No.Such.Message", en.T("No.Such.Message", nil))
}

func TestLocalizer_Numbers(t *testing.T) {
	bundle := LoadBundle()
	de := NewLocalizer(bundle, mustLookup(t, "de"))
	en := NewLocalizer(bundle, mustLookup(t, "en"))

	assert.Equal(t, "87,5", de.Fixed(decimal.RequireFromString("87.5"), 1))
	assert.Equal(t, "100.0", en.Fixed(decimal.NewFromInt(100), 1))
	assert.Equal(t, "33.33", en.Number(decimal.RequireFromString("33.3333")))
	assert.Equal(t, "50", de.Number(decimal.NewFromInt(50)))
}

func TestLocalizer_Dates(t *testing.T) {
	bundle := LoadBundle()
	de := NewLocalizer(bundle, mustLookup(t, "de"))
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "05.03.2024", de.Date(day))
	assert.Equal(t, "05.03.24", de.ShortDate(day))
}

func TestFold(t *testing.T) {
	assert.Equal(t, Fold("STRASSE"), Fold("strasse"))
	assert.Equal(t, Fold("Müller"), Fold("MÜLLER"))
}
