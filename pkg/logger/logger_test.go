package logger

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"leaguestats/pkg/config"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	key  string
	body string
	err  error
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.key = *params.Key
	f.body = string(b)
	return &s3.PutObjectOutput{}, nil
}

func newTestLogger(t *testing.T) *NewLogger {
	t.Helper()
	cfg := &config.Config{
		Log:    config.LogConfiguration{Level: "debug"},
		Bucket: config.BucketConfiguration{LogBucket: "logs"},
	}
	l, err := createLogger(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l
}

func TestLoggerWritesToFile(t *testing.T) {
	l := newTestLogger(t)

	l.Infof("fetched %d matches", 20)
	l.With("request_id", "abc").Errorf("upstream failed")

	content, err := os.ReadFile(l.FilePath())
	require.NoError(t, err)
	assert.Contains(t, string(content), "fetched 20 matches")
	assert.Contains(t, string(content), `"request_id":"abc"`)
	assert.Contains(t, string(content), `"level":"error"`)
}

func TestUploadToS3Bucket(t *testing.T) {
	t.Run("upload cleans the file", func(t *testing.T) {
		l := newTestLogger(t)
		putter := &fakePutter{}
		l.SetPutter(putter)

		l.Infof("first line")
		require.NoError(t, l.UploadToS3Bucket(context.Background(), "logs/1.log"))

		assert.Equal(t, "logs/1.log", putter.key)
		assert.Contains(t, putter.body, "first line")

		info, err := os.Stat(l.FilePath())
		require.NoError(t, err)
		assert.Zero(t, info.Size())

		l.Infof("second line")
		content, err := os.ReadFile(l.FilePath())
		require.NoError(t, err)
		assert.NotContains(t, string(content), "first line")
		assert.Contains(t, string(content), "second line")
	})

	t.Run("failed upload keeps the content", func(t *testing.T) {
		l := newTestLogger(t)
		l.SetPutter(&fakePutter{err: errors.New("bucket down")})

		l.Infof("kept line")
		err := l.UploadToS3Bucket(context.Background(), "logs/2.log")
		assert.ErrorContains(t, err, "bucket down")

		content, err := os.ReadFile(l.FilePath())
		require.NoError(t, err)
		assert.Contains(t, string(content), "kept line")
	})

	t.Run("discard logger has nothing to upload", func(t *testing.T) {
		assert.Error(t, Discard().UploadToS3Bucket(context.Background(), "x"))
	})
}
