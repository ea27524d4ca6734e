package retention

import (
	"sort"

	"github.com/semmidev/arkeep/internal/domain"
)

// SelectRetained walks archives newest to oldest and keeps the newest
// archive of each distinct period, stopping once spec.Count periods are
// covered. An archive falling into an already-kept period is skipped
// without consuming the count.
//
// Precondition: archives sorted by timestamp descending.
func SelectRetained(archives []domain.Archive, spec KeepSpec) []string {
	var names []string
	kept := 0
	prev := ""
	for _, arc := range archives {
		if kept == spec.Count {
			break
		}
		bucket := spec.Granularity.BucketKey(arc.Timestamp)
		if bucket != prev {
			names = append(names, arc.Name)
			kept++
			prev = bucket
		}
	}
	return names
}

// NamesToDelete computes the deletion set for one archive family: every
// archive not retained by any of the given rules, newest first. The rules
// compose as a set union, so duplicate rules are harmless and order never
// changes the result. An empty rule list retains nothing.
func NamesToDelete(archives []domain.Archive, specs []KeepSpec) []string {
	sorted := make([]domain.Archive, len(archives))
	copy(sorted, archives)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})

	keep := make(map[string]struct{})
	for _, spec := range specs {
		for _, name := range SelectRetained(sorted, spec) {
			keep[name] = struct{}{}
		}
	}

	var doomed []string
	for _, arc := range sorted {
		if _, ok := keep[arc.Name]; !ok {
			doomed = append(doomed, arc.Name)
		}
	}
	return doomed
}
