package store

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	appconfig "github.com/semmidev/arkeep/internal/config"
	"github.com/semmidev/arkeep/internal/domain"
)

// S3Store treats the objects under a bucket prefix as archives. The object
// key (prefix stripped) is the archive name and LastModified, normalized to
// UTC seconds, is the archive timestamp.
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3 creates an S3Store using AWS SDK v2 with static credentials.
func NewS3(cfg *appconfig.StoreConfig) (*S3Store, error) {
	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Store{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
	}, nil
}

func (s *S3Store) List(ctx context.Context) ([]domain.Archive, error) {
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: &s.bucket,
		Prefix: &s.prefix,
	})

	var archives []domain.Archive
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list S3 objects: %w", err)
		}

		for _, obj := range page.Contents {
			name := strings.TrimPrefix(*obj.Key, s.prefix)
			name = strings.TrimPrefix(name, "/")
			if name == "" {
				continue
			}
			archives = append(archives, domain.Archive{
				Name:      name,
				Timestamp: obj.LastModified.UTC().Truncate(time.Second),
			})
		}
	}

	return archives, nil
}

func (s *S3Store) Delete(ctx context.Context, names []string) error {
	for _, name := range names {
		key := path.Join(s.prefix, name)

		_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: &s.bucket,
			Key:    &key,
		})
		if err != nil {
			return fmt.Errorf("failed to delete %s from S3: %w", name, err)
		}
	}
	return nil
}
