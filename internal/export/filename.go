package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a filing period or company name for use in
// Content-Disposition. Replaces non-alphanumeric chars (except - _) with _,
// collapses consecutive underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns the download filename for a filing export.
// Format: GSTR1_{sanitized_period}_{YYYY-MM-DD}.xlsx
func BuildFilename(period string) string {
	sanitized := SanitizeFilename(period)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("GSTR1_%s_%s.xlsx", sanitized, date)
}
