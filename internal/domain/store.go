package domain

import "context"

// ArchiveStore is the external collaborator that holds the archives.
// The prune engine only ever lists and deletes; it never creates.
type ArchiveStore interface {
	List(ctx context.Context) ([]Archive, error)
	Delete(ctx context.Context, names []string) error
}
