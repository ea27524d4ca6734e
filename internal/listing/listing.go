package listing

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/semmidev/arkeep/internal/domain"
)

var ErrInvalidListingLine = errors.New("invalid listing line")

const timestampLayout = "2006-01-02 15:04:05"

// Families maps a base name to that family's archives, in input order.
type Families map[string][]domain.Archive

// A trailing run of digits and dashes is a timestamp suffix, not part of
// the family name: "etc-20200101-1200" and "etc" are the same family.
var baseNameRE = regexp.MustCompile(`^(.*?)(?:-[0-9-]*)?$`)

// Parse converts a raw archive listing, one "name<TAB>YYYY-MM-DD HH:MM:SS"
// record per line, into Archive values. Timestamps are interpreted as UTC.
// Any malformed line fails the whole parse; no partial results. An empty
// listing is valid and yields no archives.
func Parse(raw string) ([]domain.Archive, error) {
	lines := strings.Split(raw, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var archives []domain.Archive
	for _, line := range lines {
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidListingLine, line)
		}
		ts, err := time.Parse(timestampLayout, fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidListingLine, line)
		}
		archives = append(archives, domain.Archive{Name: fields[0], Timestamp: ts})
	}
	return archives, nil
}

// BaseName strips an optional trailing -<digits-and-dashes> suffix from an
// archive name. Without such a suffix the name is its own base.
func BaseName(name string) string {
	return baseNameRE.FindStringSubmatch(name)[1]
}

// Group partitions archives into families sharing a base name. Every
// archive lands in exactly one family.
func Group(archives []domain.Archive) Families {
	families := make(Families)
	for _, arc := range archives {
		base := BaseName(arc.Name)
		families[base] = append(families[base], arc)
	}
	return families
}
