package intl

import (
	"strings"

	gerrors "github.com/go-faster/errors"
	"golang.org/x/text/language"
)

type SupportedLanguage struct {
	Code        string
	VerboseName string
	Tag         language.Tag
	// DateLayout renders a full calendar date, ShortDateLayout a compact one for slider labels.
	DateLayout      string
	ShortDateLayout string
}

var ErrUnsupportedLanguage = gerrors.New("unsupported language")

var (
	allSupportedLanguages = []SupportedLanguage{
		{
			Code:            "en",
			VerboseName:     "English",
			Tag:             language.English,
			DateLayout:      "01/02/2006",
			ShortDateLayout: "01/02/06",
		},
		{
			Code:            "de",
			VerboseName:     "Deutsch",
			Tag:             language.German,
			DateLayout:      "02.01.2006",
			ShortDateLayout: "02.01.06",
		},
	}

	matcher = language.NewMatcher([]language.Tag{language.English, language.German})
)

// Lookup resolves a BCP 47 code such as "de-AT" to the closest supported language.
func Lookup(code string) (SupportedLanguage, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return allSupportedLanguages[0], nil
	}
	tag, err := language.Parse(code)
	if err != nil {
		return SupportedLanguage{}, gerrors.Wrapf(ErrUnsupportedLanguage, "%q", code)
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return SupportedLanguage{}, gerrors.Wrapf(ErrUnsupportedLanguage, "%q", code)
	}
	return allSupportedLanguages[idx], nil
}
