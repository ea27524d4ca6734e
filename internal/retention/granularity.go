package retention

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidGranularity = errors.New("invalid granularity")

// Granularity is a time-bucketing resolution. Two timestamps with equal
// bucket keys at a granularity fall into the same retention period.
type Granularity int

const (
	Second Granularity = iota
	Minute
	Hour
	Day
	Week
	Month
	Year
)

var granularityTags = map[string]Granularity{
	"s":   Second,
	"min": Minute,
	"h":   Hour,
	"d":   Day,
	"w":   Week,
	"mon": Month,
	"y":   Year,
}

// ParseGranularity maps a keep-spec tag to its Granularity.
func ParseGranularity(tag string) (Granularity, error) {
	g, ok := granularityTags[tag]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGranularity, tag)
	}
	return g, nil
}

func (g Granularity) String() string {
	for tag, known := range granularityTags {
		if known == g {
			return tag
		}
	}
	return fmt.Sprintf("granularity(%d)", int(g))
}

// BucketKey derives the canonical period identifier for ts at this
// granularity, always in UTC. Weeks follow ISO-8601, so a late-December
// date can land in week 1 of the following year.
func (g Granularity) BucketKey(ts time.Time) string {
	ts = ts.UTC()
	switch g {
	case Second:
		return ts.Format("2006-01-02 15:04:05")
	case Minute:
		return ts.Format("2006-01-02 15:04")
	case Hour:
		return ts.Format("2006-01-02 15")
	case Day:
		return ts.Format("2006-01-02")
	case Week:
		year, week := ts.ISOWeek()
		return fmt.Sprintf("%04d-%02d", year, week)
	case Month:
		return ts.Format("2006-01")
	case Year:
		return ts.Format("2006")
	default:
		panic(fmt.Sprintf("retention: unknown granularity %d", int(g)))
	}
}
