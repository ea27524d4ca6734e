package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/semmidev/arkeep/internal/domain"
)

// LocalStore treats the regular files in one directory as archives, with
// the file modification time as the archive timestamp.
type LocalStore struct {
	basePath string
}

func NewLocal(basePath string) (*LocalStore, error) {
	info, err := os.Stat(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("archive path is not a directory: %s", basePath)
	}
	return &LocalStore{basePath: basePath}, nil
}

func (l *LocalStore) List(ctx context.Context) ([]domain.Archive, error) {
	entries, err := os.ReadDir(l.basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var archives []domain.Archive
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to get file info for %s: %w", entry.Name(), err)
		}
		archives = append(archives, domain.Archive{
			Name:      entry.Name(),
			Timestamp: info.ModTime().UTC().Truncate(time.Second),
		})
	}

	return archives, nil
}

func (l *LocalStore) Delete(ctx context.Context, names []string) error {
	for _, name := range names {
		if err := os.Remove(filepath.Join(l.basePath, name)); err != nil {
			return fmt.Errorf("failed to delete file: %w", err)
		}
	}
	return nil
}
