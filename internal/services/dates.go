package services

import (
	"strings"
	"time"
)

// CCCDDateLayout is the stored dd-MM-yyyy form of an ID card issue date.
const CCCDDateLayout = "02-01-2006"

var cccdInputLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	CCCDDateLayout,
	"2006/01/02",
	"01/02/2006",
}

// NormalizeCCCDDate reformats a client supplied date as dd-MM-yyyy.
// Empty input stays empty.
func NormalizeCCCDDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	for _, layout := range cccdInputLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(CCCDDateLayout), nil
		}
	}
	return "", newValidationError("invalid cccdDate: " + raw)
}
