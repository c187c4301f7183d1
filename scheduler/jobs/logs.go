package jobs

import (
	"context"
	"fmt"
	"time"

	"leaguestats/pkg/logger"
)

// Deadline of a single upload.
const uploadTimeout = time.Minute

// LogUploader moves the current log file to the bucket.
type LogUploader interface {
	UploadToS3Bucket(ctx context.Context, objectKey string) error
}

// LogObjectKey is the bucket key of a upload started at the given time.
func LogObjectKey(service string, at time.Time) string {
	return fmt.Sprintf("logs/%s/%s.log", service, at.UTC().Format("2006-01-02T15-04-05"))
}

// UploadLogs sends the log file to the bucket.
// The file is only cleaned after a successful upload.
func UploadLogs(uploader LogUploader, log *logger.NewLogger, service string, now func() time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()

	key := LogObjectKey(service, now())
	if err := uploader.UploadToS3Bucket(ctx, key); err != nil {
		log.Errorf("Couldn't upload the logs to %s: %v", key, err)
		return fmt.Errorf("couldn't upload the logs: %w", err)
	}

	log.Infof("Uploaded the logs to %s", key)
	return nil
}
