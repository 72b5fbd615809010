package checks

import (
	"context"
	"testing"

	"floorplan/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func closedChannel(objs ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(objs))
	for _, o := range objs {
		ch <- o
	}
	close(ch)
	return ch
}

func TestCheckStructure(t *testing.T) {
	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "floorplan").Return(false, nil)

		_, err := CheckStructure(context.Background(), mockClient, "floorplan", RequiredFolders)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("All Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "floorplan").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "floorplan", mock.Anything).Return(closedChannel())

		missing, err := CheckStructure(context.Background(), mockClient, "floorplan", RequiredFolders)
		assert.NoError(t, err)
		assert.Equal(t, RequiredFolders, missing)
	})

	t.Run("All Present", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "floorplan").Return(true, nil)

		for _, folder := range RequiredFolders {
			prefix := folder + "/"
			mockClient.On("ListObjects", mock.Anything, "floorplan", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
				return opts.Prefix == prefix
			})).Return(closedChannel(minio.ObjectInfo{Key: prefix}))
		}

		missing, err := CheckStructure(context.Background(), mockClient, "floorplan", RequiredFolders)
		assert.NoError(t, err)
		assert.Empty(t, missing)
	})
}

func TestFixStructure(t *testing.T) {
	logger := zap.NewNop()
	mockClient := new(mocks.Client)

	mockClient.On("PutObject", mock.Anything, "floorplan", "renders/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

	err := FixStructure(context.Background(), mockClient, "floorplan", logger, []string{"renders"})
	assert.NoError(t, err)
	mockClient.AssertNumberOfCalls(t, "PutObject", 1)
}
