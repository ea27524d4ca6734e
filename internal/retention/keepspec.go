package retention

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidKeepSpec = errors.New("invalid keep spec")

// KeepSpec retains the Count most recent distinct periods at Granularity.
type KeepSpec struct {
	Granularity Granularity
	Count       int
}

// Longer alternatives first so "mon" is not cut short by a shorter tag.
var keepSpecRE = regexp.MustCompile(`^([0-9]+)(min|mon|s|h|d|w|y)$`)

// ParseKeepSpecs parses a comma-separated keep policy such as "2d,5w,4mon"
// into its rules, in input order. Every token must be a positive count
// followed by a granularity tag; anything else, including an empty policy
// string or a zero count, fails with ErrInvalidKeepSpec.
func ParseKeepSpecs(policy string) ([]KeepSpec, error) {
	var specs []KeepSpec
	for _, token := range strings.Split(policy, ",") {
		m := keepSpecRE.FindStringSubmatch(token)
		if m == nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKeepSpec, token)
		}
		count, err := strconv.Atoi(m[1])
		if err != nil || count < 1 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKeepSpec, token)
		}
		g, err := ParseGranularity(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKeepSpec, token)
		}
		specs = append(specs, KeepSpec{Granularity: g, Count: count})
	}
	return specs, nil
}
