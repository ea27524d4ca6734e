package store

import (
	"context"
	"fmt"
	"time"

	appconfig "github.com/semmidev/arkeep/internal/config"
	"github.com/semmidev/arkeep/internal/domain"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// GDriveStore treats the files in one Drive folder as archives; createdTime
// is the archive timestamp.
type GDriveStore struct {
	service  *drive.Service
	folderID string
}

func NewGDrive(cfg *appconfig.StoreConfig) (*GDriveStore, error) {
	ctx := context.Background()

	service, err := drive.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &GDriveStore{
		service:  service,
		folderID: cfg.FolderID,
	}, nil
}

func (g *GDriveStore) List(ctx context.Context) ([]domain.Archive, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", g.folderID)

	var archives []domain.Archive
	pageToken := ""
	for {
		call := g.service.Files.List().
			Q(query).
			Fields("nextPageToken, files(id, name, createdTime)").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		fileList, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		for _, file := range fileList.Files {
			ts, err := time.Parse(time.RFC3339, file.CreatedTime)
			if err != nil {
				return nil, fmt.Errorf("failed to parse createdTime of %s: %w", file.Name, err)
			}
			archives = append(archives, domain.Archive{
				Name:      file.Name,
				Timestamp: ts.UTC().Truncate(time.Second),
			})
		}

		pageToken = fileList.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return archives, nil
}

func (g *GDriveStore) Delete(ctx context.Context, names []string) error {
	for _, name := range names {
		query := fmt.Sprintf("'%s' in parents and name='%s' and trashed=false", g.folderID, name)

		fileList, err := g.service.Files.List().
			Q(query).
			Fields("files(id)").
			Context(ctx).
			Do()
		if err != nil {
			return fmt.Errorf("failed to find file: %w", err)
		}

		if len(fileList.Files) == 0 {
			return fmt.Errorf("file not found: %s", name)
		}

		if err := g.service.Files.Delete(fileList.Files[0].Id).Context(ctx).Do(); err != nil {
			return fmt.Errorf("failed to delete file %s: %w", name, err)
		}
	}
	return nil
}
