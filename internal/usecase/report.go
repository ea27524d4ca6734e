package usecase

import (
	"fmt"
	"io"
	"sort"

	"github.com/semmidev/arkeep/internal/domain"
)

// report prints the deletion set and the remaining archives, each count
// pluralized and each list sorted by name. Returns the remaining count.
func (uc *Prune) report(archives []domain.Archive, toDelete []string) int {
	verb := "Will"
	if uc.dryRun {
		verb = "Would"
	}
	fmt.Fprintf(uc.out, "%s delete the following %d archive%s:\n",
		verb, len(toDelete), pluralSuffix(len(toDelete)))
	printNames(uc.out, toDelete)

	remaining := remainingNames(archives, toDelete)
	fmt.Fprintf(uc.out, "Leaving the following %d remaining archive%s:\n",
		len(remaining), pluralSuffix(len(remaining)))
	printNames(uc.out, remaining)

	return len(remaining)
}

func remainingNames(archives []domain.Archive, toDelete []string) []string {
	doomed := make(map[string]struct{}, len(toDelete))
	for _, name := range toDelete {
		doomed[name] = struct{}{}
	}

	var remaining []string
	for _, arc := range archives {
		if _, ok := doomed[arc.Name]; !ok {
			remaining = append(remaining, arc.Name)
		}
	}
	return remaining
}

func printNames(w io.Writer, names []string) {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)
	for _, name := range sorted {
		fmt.Fprintf(w, "  %s\n", name)
	}
}

func pluralSuffix(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
