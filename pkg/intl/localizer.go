package intl

import (
	"fmt"
	"time"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Localizer renders messages, numbers and dates for one language.
// It is not safe for concurrent use.
type Localizer struct {
	Lang      SupportedLanguage
	localizer *i18n.Localizer
	printer   *message.Printer
}

func NewLocalizer(bundle *i18n.Bundle, lang SupportedLanguage) *Localizer {
	return &Localizer{
		Lang:      lang,
		localizer: i18n.NewLocalizer(bundle, lang.Code),
		printer:   message.NewPrinter(lang.Tag),
	}
}

// T localizes a message, falling back to the message id when it is unknown.
func (l *Localizer) T(id string, data map[string]any) string {
	s, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return id
	}
	return s
}

// Fixed formats v with exactly frac fraction digits, e.g. "87,5" in German.
func (l *Localizer) Fixed(v decimal.Decimal, frac int) string {
	f, _ := v.Round(int32(frac)).Float64()
	return l.printer.Sprint(number.Decimal(f, number.Scale(frac)))
}

// Number formats v with up to two fraction digits and no trailing zeros.
func (l *Localizer) Number(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return l.printer.Sprint(number.Decimal(f, number.MaxFractionDigits(2)))
}

func (l *Localizer) Date(t time.Time) string {
	return t.Format(l.Lang.DateLayout)
}

func (l *Localizer) ShortDate(t time.Time) string {
	return t.Format(l.Lang.ShortDateLayout)
}

func (l *Localizer) MonthShort(m time.Month) string {
	return l.T(fmt.Sprintf("Month.Short.M%02d", int(m)), nil)
}

// MonthYear renders e.g. "Mär 2024".
func (l *Localizer) MonthYear(t time.Time) string {
	return fmt.Sprintf("%s %d", l.MonthShort(t.Month()), t.Year())
}

// Fold case-folds s for case-insensitive comparisons.
func Fold(s string) string {
	return cases.Fold().String(s)
}
