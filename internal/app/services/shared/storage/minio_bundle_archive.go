package storage

import (
	"bytes"
	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/exceptions"
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
)

type minioBundleArchive struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioBundleArchive(minioClient *minio.Client, bucketName string) contracts.BundleArchive {
	return &minioBundleArchive{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

// ArchiveResources stores the point-in-time copy of one resource type
// fetched during a migration under sessions/{sessionID}/{resourceType}.json.
// A later migration of the same session overwrites the object, matching the
// store's last-write-wins policy.
func (m *minioBundleArchive) ArchiveResources(ctx context.Context, sessionID string, resourceType constvars.ResourceType, resources interface{}) error {
	payload, err := json.Marshal(resources)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	objectName := fmt.Sprintf(constvars.MinioBundleObjectFormat, sessionID, resourceType)
	_, err = m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(payload),
		int64(len(payload)),
		minio.PutObjectOptions{
			ContentType: constvars.MIMEApplicationJSON,
		},
	)
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return nil
}
