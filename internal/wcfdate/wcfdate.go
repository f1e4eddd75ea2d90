// Package wcfdate decodes the WCF-style /Date(milliseconds±HHMM)/
// timestamp encoding used by the MoneyDashboard API.
package wcfdate

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Layout is the display layout for decoded timestamps.
const Layout = "2006/01/02, 15:04:05"

var datePattern = regexp.MustCompile(`^/Date\((\d+)([+-]\d{4})?\)/$`)

// Parse decodes a raw WCF date string. The millisecond count is an
// offset from the 1970-01-01 UTC epoch. The returned time carries the
// encoded zone when an offset suffix is present, otherwise UTC, and
// hasOffset reports which case applied.
//
// The OData v2 JSON spec describes the suffix as whole minutes, but
// the service encodes signed HHMM, so +0130 means one hour thirty
// minutes, not 130 minutes.
func Parse(raw string) (t time.Time, hasOffset bool, err error) {
	m := datePattern.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, false, fmt.Errorf("malformed WCF date %q", raw)
	}

	ms, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("malformed WCF date %q: %w", raw, err)
	}
	utc := time.UnixMilli(ms).UTC()
	if m[2] == "" {
		return utc, false, nil
	}

	off, err := strconv.Atoi(m[2])
	if err != nil {
		return time.Time{}, false, fmt.Errorf("malformed WCF date offset %q: %w", raw, err)
	}
	// Integer division keeps both parts negative for negative offsets.
	hours, minutes := off/100, off%100
	zone := time.FixedZone(m[2], hours*3600+minutes*60)
	return utc.In(zone), true, nil
}

// Format renders a decoded timestamp in the service's display layout,
// in the zone the timestamp carries.
func Format(t time.Time) string {
	return t.Format(Layout)
}
