package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/Omega-Networks/Pulse-sub003/core/storage/mocks"
	alertmodels "github.com/Omega-Networks/Pulse-sub003/feature/alerts/models"
	invmodels "github.com/Omega-Networks/Pulse-sub003/feature/inventory/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSnapshotDB(t *testing.T, name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&invmodels.Tenant{}, &invmodels.Site{}, &invmodels.Rack{},
		&invmodels.Device{}, &alertmodels.Alert{},
	))
	return db
}

func TestExport_UploadsGraph(t *testing.T) {
	db := setupSnapshotDB(t, "snapshot_export")

	require.NoError(t, db.Create(&invmodels.Device{ID: 80, Name: "akl-sw-01"}).Error)
	require.NoError(t, db.Create(&invmodels.Site{ID: 40, Name: "Auckland DC"}).Error)
	require.NoError(t, db.Create(&alertmodels.Alert{ID: 101, Name: "High CPU", StartedAt: time.Now()}).Error)

	var uploaded []byte

	client := &mocks.Client{}
	client.On("BucketExists", mock.Anything, "snapshots").Return(true, nil)
	client.On("PutObject", mock.Anything, "snapshots", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			reader := args.Get(3).(io.Reader)
			data, err := io.ReadAll(reader)
			require.NoError(t, err)
			uploaded = data

			opts := args.Get(5).(minio.PutObjectOptions)
			assert.Equal(t, "application/json", opts.ContentType)
		}).
		Return(minio.UploadInfo{}, nil)

	svc := NewService(db, client, "snapshots", zap.NewNop())

	object, err := svc.Export(context.Background())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix([]byte(object), []byte("inventory-")))
	assert.True(t, bytes.HasSuffix([]byte(object), []byte(".json")))

	var snap Snapshot
	require.NoError(t, json.Unmarshal(uploaded, &snap))
	require.Len(t, snap.Devices, 1)
	assert.Equal(t, "akl-sw-01", snap.Devices[0].Name)
	require.Len(t, snap.Sites, 1)
	require.Len(t, snap.Alerts, 1)

	client.AssertExpectations(t)
}

func TestExport_CreatesMissingBucket(t *testing.T) {
	db := setupSnapshotDB(t, "snapshot_bucket")

	client := &mocks.Client{}
	client.On("BucketExists", mock.Anything, "snapshots").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "snapshots", mock.Anything).Return(nil)
	client.On("PutObject", mock.Anything, "snapshots", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	svc := NewService(db, client, "snapshots", zap.NewNop())

	_, err := svc.Export(context.Background())
	require.NoError(t, err)

	client.AssertExpectations(t)
}

func TestExport_UploadFailure(t *testing.T) {
	db := setupSnapshotDB(t, "snapshot_fail")

	client := &mocks.Client{}
	client.On("BucketExists", mock.Anything, "snapshots").Return(true, nil)
	client.On("PutObject", mock.Anything, "snapshots", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("storage unreachable"))

	svc := NewService(db, client, "snapshots", zap.NewNop())

	_, err := svc.Export(context.Background())
	assert.ErrorContains(t, err, "failed to upload snapshot")
}
