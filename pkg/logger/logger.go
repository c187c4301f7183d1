package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"leaguestats/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"
)

// ObjectPutter is the part of the S3 client used for the log upload.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Logger that we will use to save our logs.
// Lines go to stdout and to a temporary file that is periodically shipped to a bucket.
type NewLogger struct {
	mu       *sync.Mutex
	log      zerolog.Logger
	logFile  *os.File
	filePath string
	bucket   config.BucketConfiguration
	putter   ObjectPutter
}

// lockedFile serializes the writes with the truncation done after an upload.
type lockedFile struct {
	l *NewLogger
}

func (w lockedFile) Write(p []byte) (int, error) {
	w.l.mu.Lock()
	defer w.l.mu.Unlock()
	return w.l.logFile.Write(p)
}

// Create the log instance with a temporary file.
func CreateLogger(cfg *config.Config) (*NewLogger, error) {
	return createLogger(cfg, os.Stdout)
}

func createLogger(cfg *config.Config, console io.Writer) (*NewLogger, error) {
	f, err := os.CreateTemp("", "log-*.log")
	if err != nil {
		return nil, err
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	l := &NewLogger{
		mu:       &sync.Mutex{},
		logFile:  f,
		filePath: f.Name(),
		bucket:   cfg.Bucket,
	}

	writers := []io.Writer{lockedFile{l: l}}
	if console != nil {
		writers = append(writers, zerolog.ConsoleWriter{Out: console, TimeFormat: "2006-01-02 15:04:05"})
	}

	l.log = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	return l, nil
}

// Discard returns a logger that drops everything. Used on tests.
func Discard() *NewLogger {
	return &NewLogger{mu: &sync.Mutex{}, log: zerolog.Nop()}
}

// Log a simple info.
func (l *NewLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

// Log a warning.
func (l *NewLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

// Log a error.
func (l *NewLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}

// With returns a child logger carrying a extra field.
func (l *NewLogger) With(key, value string) *NewLogger {
	return &NewLogger{
		mu:       l.mu,
		log:      l.log.With().Str(key, value).Logger(),
		logFile:  l.logFile,
		filePath: l.filePath,
		bucket:   l.bucket,
		putter:   l.putter,
	}
}

// FilePath of the temporary log file.
func (l *NewLogger) FilePath() string {
	return l.filePath
}

// Clean the file contents.
func (l *NewLogger) CleanFile() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile == nil {
		return nil
	}

	if err := l.logFile.Truncate(0); err != nil {
		return err
	}
	_, err := l.logFile.Seek(0, io.SeekStart)
	return err
}

// Close the underlying file and remove it.
func (l *NewLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile == nil {
		return nil
	}
	err := l.logFile.Close()
	os.Remove(l.filePath)
	l.logFile = nil
	return err
}

// SetPutter overrides the S3 client used on the upload.
func (l *NewLogger) SetPutter(putter ObjectPutter) {
	l.putter = putter
}

// Upload the log to a s3 bucket.
func (l *NewLogger) UploadToS3Bucket(ctx context.Context, objectKey string) error {
	if l.logFile == nil {
		return errors.New("logger has no file to upload")
	}

	putter := l.putter
	if putter == nil {
		putter = l.newS3Client()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.logFile.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind file: %w", err)
	}

	// Run the put.
	_, err := putter.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(l.bucket.LogBucket),
		Key:    aws.String(objectKey),
		Body:   l.logFile,
		ACL:    types.ObjectCannedACLPrivate,
	})
	if err != nil {
		// Keep appending where we were.
		l.logFile.Seek(0, io.SeekEnd)
		return fmt.Errorf("failed to upload %s to S3 bucket: %w", objectKey, err)
	}

	// Clean the file after sending.
	if err := l.logFile.Truncate(0); err != nil {
		return err
	}
	_, err = l.logFile.Seek(0, io.SeekStart)
	return err
}

// newS3Client creates the client from the bucket configuration.
func (l *NewLogger) newS3Client() *s3.Client {
	cfg := aws.Config{
		Region: l.bucket.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				l.bucket.AccessKey,
				l.bucket.AccessSecret,
				"",
			),
		),
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if l.bucket.Endpoint != "" {
			o.BaseEndpoint = aws.String(l.bucket.Endpoint)
		}
	})
}
