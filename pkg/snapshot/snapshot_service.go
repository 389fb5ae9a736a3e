package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"recipe-share-backend/domain"
	"recipe-share-backend/internal/utils"
	"recipe-share-backend/internal/utils/storage"

	"github.com/google/uuid"
)

type (
	SnapshotService interface {
		Export(ctx context.Context) (string, error)
		Import(ctx context.Context) error
		Wipe(ctx context.Context) error
	}

	snapshotService struct {
		snapshotRepository SnapshotRepository
		s3                 *storage.AwsS3
	}
)

func NewSnapshotService(snapshotRepository SnapshotRepository, s3 *storage.AwsS3) SnapshotService {
	return &snapshotService{
		snapshotRepository: snapshotRepository,
		s3:                 s3,
	}
}

// Export dumps the whole store to the snapshot file and returns its path.
// When a bucket is configured the document is also archived to S3; an upload
// failure does not fail the export.
func (s *snapshotService) Export(ctx context.Context) (string, error) {
	snap, err := s.snapshotRepository.DumpAll(ctx)
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return "", err
	}

	path := utils.GetConfig("SNAPSHOT_PATH")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}

	if bucket := utils.GetConfig("SNAPSHOT_S3_BUCKET"); bucket != "" && s.s3 != nil {
		key := fmt.Sprintf("snapshots/%s-%s.json", time.Now().Format("20060102-150405"), uuid.New().String())
		if _, err := s.s3.UploadFile(ctx, bucket, key, bytes.NewReader(data), "application/json"); err != nil {
			log.Printf("snapshot upload to s3 failed: %v", err)
		}
	}

	return path, nil
}

// Import reloads the store from the snapshot file. A missing file is not an
// error; an empty store is a valid initial state.
func (s *snapshotService) Import(ctx context.Context) error {
	path := utils.GetConfig("SNAPSHOT_PATH")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}

	return s.snapshotRepository.RestoreAll(ctx, &snap)
}

func (s *snapshotService) Wipe(ctx context.Context) error {
	return s.snapshotRepository.Wipe(ctx)
}
