package app

import (
	"context"
	"fmt"
	"os"

	"github.com/semmidev/arkeep/internal/adapter/notifier"
	"github.com/semmidev/arkeep/internal/adapter/store"
	"github.com/semmidev/arkeep/internal/adapter/tarsnap"
	"github.com/semmidev/arkeep/internal/config"
	"github.com/semmidev/arkeep/internal/domain"
	"github.com/semmidev/arkeep/internal/infrastructure/logger"
	"github.com/semmidev/arkeep/internal/infrastructure/scheduler"
	"github.com/semmidev/arkeep/internal/retention"
	"github.com/semmidev/arkeep/internal/usecase"
)

// Overrides carries command line values that win over the config file.
type Overrides struct {
	KeepSpec string
	Keyfile  string
	DryRun   bool
}

type App struct {
	config    *config.Config
	logger    *logger.Logger
	scheduler *scheduler.Scheduler
	pruneUC   *usecase.Prune
	schedule  string
}

func New(cfg *config.Config, ov Overrides) (*App, error) {
	log, err := logger.New(cfg.App.LogLevel, cfg.App.LogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log.Infof("Starting %s", cfg.App.Name)

	// Keep policy is validated up front, before anything is listed.
	keep := cfg.Prune.Keep
	if ov.KeepSpec != "" {
		keep = ov.KeepSpec
	}
	if keep == "" {
		return nil, fmt.Errorf("no keep policy given (KEEP_SPEC argument or prune.keep in config)")
	}
	specs, err := retention.ParseKeepSpecs(keep)
	if err != nil {
		return nil, err
	}
	log.Infof("Keep policy: %s (%d rule(s))", keep, len(specs))

	archiveStore, err := initializeStore(cfg, ov, log)
	if err != nil {
		return nil, err
	}

	notifiers := initializeNotifiers(cfg, log)

	dryRun := cfg.Prune.DryRun || ov.DryRun
	pruneUC := usecase.NewPrune(archiveStore, notifiers, log, specs, dryRun, os.Stdout)

	return &App{
		config:    cfg,
		logger:    log,
		scheduler: scheduler.New(),
		pruneUC:   pruneUC,
		schedule:  cfg.Prune.Schedule,
	}, nil
}

func initializeStore(cfg *config.Config, ov Overrides, log *logger.Logger) (domain.ArchiveStore, error) {
	switch cfg.Store.Type {
	case "tarsnap":
		keyfile := cfg.Store.Keyfile
		if ov.Keyfile != "" {
			keyfile = ov.Keyfile
		}
		log.Infof("✓ Tarsnap store (binary: %s)", cfg.Store.Binary)
		return tarsnap.New(cfg.Store.Binary, keyfile), nil

	case "s3":
		s, err := store.NewS3(&cfg.Store)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 store: %w", err)
		}
		log.Infof("✓ S3 store (bucket: %s)", cfg.Store.Bucket)
		return s, nil

	case "gdrive":
		s, err := store.NewGDrive(&cfg.Store)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Google Drive store: %w", err)
		}
		log.Infof("✓ Google Drive store (folder: %s)", cfg.Store.FolderID)
		return s, nil

	case "local":
		s, err := store.NewLocal(cfg.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local store: %w", err)
		}
		log.Infof("✓ Local store (path: %s)", cfg.Store.Path)
		return s, nil

	default:
		return nil, fmt.Errorf("unknown store type: %s", cfg.Store.Type)
	}
}

func initializeNotifiers(cfg *config.Config, log *logger.Logger) []usecase.Notifier {
	var notifiers []usecase.Notifier

	for _, notifCfg := range cfg.GetEnabledNotifications() {
		switch notifCfg.Type {
		case "telegram":
			n, err := notifier.NewTelegram(&notifCfg)
			if err != nil {
				log.Errorf("Failed to initialize Telegram: %v", err)
				continue
			}
			log.Infof("✓ Telegram notifications enabled")
			notifiers = append(notifiers, usecase.Notifier{Name: "telegram", Notifier: n})

		default:
			log.Warnf("Unknown notification type: %s", notifCfg.Type)
		}
	}

	return notifiers
}

// Run executes a single prune, or schedules prunes and blocks until the
// context is cancelled when a cron schedule is configured.
func (a *App) Run(ctx context.Context) error {
	if a.schedule == "" {
		return a.pruneUC.Execute(ctx)
	}

	if err := a.scheduler.AddJob(a.schedule, func(ctx context.Context) error {
		a.logger.Infof("=== Triggered scheduled prune ===")
		if err := a.pruneUC.Execute(ctx); err != nil {
			a.logger.Errorf("Prune failed: %v", err)
			return err
		}
		return nil
	}); err != nil {
		return fmt.Errorf("failed to schedule prune: %w", err)
	}

	a.scheduler.Start()
	a.logger.Infof("Scheduler started, prune schedule: %s", a.schedule)

	<-ctx.Done()
	return nil
}

func (a *App) Shutdown() {
	a.logger.Infof("Shutting down...")
	a.scheduler.Stop()
	a.logger.Close()
}
