package content

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// EpochDate is the canonical date assumed for files without a date prefix.
const EpochDate = "1970-01-01"

// rfc2822Layout matches the pubDate format RSS readers expect.
const rfc2822Layout = "Mon, 02 Jan 2006 15:04:05 -0700"

// Filenames may carry a leading YYYY-MM-DD- date token before the slug.
var dateSlugPattern = regexp.MustCompile(`^(?:(\d{4}-\d{2}-\d{2})-)?(.+)$`)

// ParseFilename splits a bare filename into its canonical date and slug.
// A prefix that does not match the exact date token shape is not an error;
// it simply stays part of the slug and the date falls back to the epoch.
func ParseFilename(name string) (dateYMD, slug string) {
	base := strings.SplitN(name, ".", 2)[0]
	m := dateSlugPattern.FindStringSubmatch(base)
	if m == nil {
		return EpochDate, base
	}
	dateYMD = m[1]
	if dateYMD == "" {
		dateYMD = EpochDate
	}
	return dateYMD, m[2]
}

// FormatDate renders a canonical YYYY-MM-DD date using the given layout.
func FormatDate(dateYMD, layout string) (string, error) {
	t, err := time.Parse("2006-01-02", dateYMD)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", dateYMD, err)
	}
	return t.Format(layout), nil
}
