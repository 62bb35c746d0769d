package checks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"inventory-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// RequiredFolders lists the prefixes the bucket must hold. reports/reorder
// receives the exported reorder reports.
var RequiredFolders = []string{"reports", "reports/reorder"}

// StorageReport describes the bucket layout.
type StorageReport struct {
	Bucket       string   `json:"bucket"`
	BucketExists bool     `json:"bucket_exists"`
	Missing      []string `json:"missing"`
}

// OK reports whether the bucket exists with every required folder.
func (r *StorageReport) OK() bool {
	return r.BucketExists && len(r.Missing) == 0
}

func folderKey(folder string) string {
	if strings.HasSuffix(folder, "/") {
		return folder
	}
	return folder + "/"
}

// CheckStorage lists the required folders missing from the bucket. When the
// bucket itself is missing every folder is reported.
func CheckStorage(ctx context.Context, client storage.Client, bucket string) (*StorageReport, error) {
	report := &StorageReport{Bucket: bucket, Missing: []string{}}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.BucketExists = exists
	if !exists {
		report.Missing = append(report.Missing, RequiredFolders...)
		return report, nil
	}

	for _, folder := range RequiredFolders {
		opts := minio.ListObjectsOptions{
			Prefix:    folderKey(folder),
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err != nil {
				return nil, fmt.Errorf("failed to list %s: %w", folder, obj.Err)
			}
			found = true
			break
		}
		if !found {
			report.Missing = append(report.Missing, folder)
		}
	}

	return report, nil
}

// FixStorage creates the bucket if needed and writes an empty marker object
// for every missing folder.
func FixStorage(ctx context.Context, client storage.Client, logger *zap.Logger, report *StorageReport) error {
	if !report.BucketExists {
		created, err := storage.EnsureBucket(ctx, client, report.Bucket)
		if err != nil {
			return err
		}
		if created {
			logger.Info("Created missing bucket", zap.String("bucket", report.Bucket))
		}
		report.BucketExists = true
	}

	for _, folder := range report.Missing {
		_, err := client.PutObject(ctx, report.Bucket, folderKey(folder), bytes.NewReader(nil), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return fmt.Errorf("failed to create folder %s: %w", folder, err)
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	report.Missing = []string{}
	return nil
}
