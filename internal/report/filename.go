package report

import (
	"strings"
	"time"
	"unicode"

	"github.com/carbonhub-app/carbonhub/internal/emissions"
)

// FileName builds an export file name such as
// "acme-steel_monthly_20240601-080000.xlsx".
func FileName(company string, kind emissions.PeriodKind, format Format, now time.Time) string {
	return slug(company) + "_" + kind.String() + "_" + now.UTC().Format("20060102-150405") + "." + string(format)
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "company"
	}
	return out
}
