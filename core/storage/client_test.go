package storage_test

import (
	"context"
	"errors"
	"testing"

	"floorplan/core/storage"
	"floorplan/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
	}{
		{"Plain Endpoint", storage.Config{Endpoint: "localhost:9000", AccessKey: "k", SecretKey: "s", Region: "us-east-1"}},
		{"HTTP Scheme", storage.Config{Endpoint: "http://localhost:9000", AccessKey: "k", SecretKey: "s"}},
		{"HTTPS Scheme", storage.Config{Endpoint: "https://s3.amazonaws.com", AccessKey: "k", SecretKey: "s", UseSSL: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "floorplan").Return(true, nil)
		require.NoError(t, storage.EnsureBucket(ctx, m, "floorplan", ""))
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Created", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "floorplan").Return(false, nil)
		m.On("MakeBucket", ctx, "floorplan", minio.MakeBucketOptions{Region: "eu"}).Return(nil)
		require.NoError(t, storage.EnsureBucket(ctx, m, "floorplan", "eu"))
		m.AssertExpectations(t)
	})

	t.Run("Check Fails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "floorplan").Return(false, errors.New("offline"))
		assert.ErrorContains(t, storage.EnsureBucket(ctx, m, "floorplan", ""), "offline")
	})
}

func TestPutBytes(t *testing.T) {
	ctx := context.Background()
	m := new(mocks.Client)
	m.On("PutObject", ctx, "b", "floors/f1/render.svg", mock.Anything, int64(5), minio.PutObjectOptions{ContentType: "image/svg+xml"}).
		Return(minio.UploadInfo{}, nil)

	require.NoError(t, storage.PutBytes(ctx, m, "b", "floors/f1/render.svg", []byte("<svg>"), "image/svg+xml"))
	m.AssertExpectations(t)
}

func TestListKeys(t *testing.T) {
	ctx := context.Background()
	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "floors/f1/render.png"}
	ch <- minio.ObjectInfo{Key: "floors/f1/render.svg"}
	close(ch)

	m := new(mocks.Client)
	m.On("ListObjects", ctx, "b", minio.ListObjectsOptions{Prefix: "floors/f1/", Recursive: true}).
		Return((<-chan minio.ObjectInfo)(ch))

	keys, err := storage.ListKeys(ctx, m, "b", "floors/f1/")
	require.NoError(t, err)
	assert.Equal(t, []string{"floors/f1/render.png", "floors/f1/render.svg"}, keys)
}
