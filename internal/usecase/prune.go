package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/semmidev/arkeep/internal/domain"
	"github.com/semmidev/arkeep/internal/listing"
	"github.com/semmidev/arkeep/internal/retention"
)

type Logger interface {
	Infof(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Warnf(template string, args ...interface{})
}

type Prune struct {
	store     domain.ArchiveStore
	notifiers []Notifier
	logger    Logger
	specs     []retention.KeepSpec
	dryRun    bool
	out       io.Writer
}

type Notifier struct {
	Name     string
	Notifier domain.Notifier
}

func NewPrune(
	store domain.ArchiveStore,
	notifiers []Notifier,
	logger Logger,
	specs []retention.KeepSpec,
	dryRun bool,
	out io.Writer,
) *Prune {
	return &Prune{
		store:     store,
		notifiers: notifiers,
		logger:    logger,
		specs:     specs,
		dryRun:    dryRun,
		out:       out,
	}
}

func (uc *Prune) Execute(ctx context.Context) error {
	start := time.Now()
	uc.logger.Infof("Starting prune with %d keep rule(s), dry run: %v", len(uc.specs), uc.dryRun)

	archives, err := uc.store.List(ctx)
	if err != nil {
		return fmt.Errorf("list archives: %w", err)
	}
	uc.logger.Infof("Listed %d archive(s)", len(archives))

	families := listing.Group(archives)

	var toDelete []string
	for base, family := range families {
		doomed := retention.NamesToDelete(family, uc.specs)
		if len(doomed) > 0 {
			uc.logger.Infof("[%s] %d of %d archive(s) due for deletion", base, len(doomed), len(family))
		}
		toDelete = append(toDelete, doomed...)
	}

	remaining := uc.report(archives, toDelete)

	if !uc.dryRun {
		if len(toDelete) > 0 {
			fmt.Fprintf(uc.out, "Deleting %d archive%s...\n", len(toDelete), pluralSuffix(len(toDelete)))
			if err := uc.store.Delete(ctx, toDelete); err != nil {
				return fmt.Errorf("delete archives: %w", err)
			}
		} else {
			fmt.Fprintln(uc.out, "Nothing to delete.")
		}
	}

	uc.notify(ctx, len(toDelete), remaining)

	uc.logger.Infof("Prune completed in %s", time.Since(start).Round(time.Millisecond))
	return nil
}

// notify sends the run summary to every notifier. Notification failures
// are logged but never fail the run.
func (uc *Prune) notify(ctx context.Context, deleted, remaining int) {
	if len(uc.notifiers) == 0 {
		return
	}

	verb := "Deleted"
	if uc.dryRun {
		verb = "Would delete"
	}
	message := fmt.Sprintf(
		"🧹 Prune completed\n\n"+
			"🗑 %s: %d archive%s\n"+
			"📦 Remaining: %d archive%s",
		verb, deleted, pluralSuffix(deleted),
		remaining, pluralSuffix(remaining),
	)

	for _, n := range uc.notifiers {
		if err := n.Notifier.Notify(ctx, message); err != nil {
			uc.logger.Errorf("Notification via %s failed: %v", n.Name, err)
		}
	}
}
