package service

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/model"
)

// NotAvailable is the display string for any missing metric value.
const NotAvailable = "N/A"

// FormatValue renders a raw metric value for display. It is total: a nil or
// non-finite value renders as "N/A" for every kind, and no input panics. The
// raw value is never modified; charts read the numbers independently.
func FormatValue(v *float64, kind model.FormatKind) string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return NotAvailable
	}

	switch kind {
	case model.KindCurrency:
		return "$" + humanize.Comma(int64(math.Round(*v)))
	case model.KindPercent:
		// The source stores some percentages as fractions and others already
		// scaled to 0-100. Magnitude decides: values at or below 1 are
		// treated as fractions. Carried over from the legacy dashboard as-is.
		p := *v
		if p <= 1 {
			p *= 100
		}
		return fmt.Sprintf("%.1f%%", p)
	case model.KindInteger, model.KindCount:
		return humanize.Comma(int64(math.Round(*v)))
	case model.KindAgeYears:
		return fmt.Sprintf("%.1f years", *v)
	case model.KindLocaleCode:
		if label, ok := model.LocaleLabels[int(math.Round(*v))]; ok {
			return label
		}
		return "Unknown"
	case model.KindRaw:
		return strconv.FormatFloat(*v, 'f', -1, 64)
	default:
		return NotAvailable
	}
}

// normalizeLinkURL prepends https:// to a link that lacks a scheme. The
// Scorecard URL columns mix bare hosts with full URLs.
func normalizeLinkURL(u string) string {
	if u == "" {
		return ""
	}
	if len(u) >= 7 && u[:7] == "http://" {
		return u
	}
	if len(u) >= 8 && u[:8] == "https://" {
		return u
	}
	return "https://" + u
}
