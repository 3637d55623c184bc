package initializers

import (
	"context"
	filestorage "resto-hr-backend/lib/file-storage"
	s3client "resto-hr-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("s3 client init failed")
		return
	}
	filestorage.NewInstance(minioClient)
	if err = filestorage.Instance.EnsureBucket(ctx); err != nil {
		log.WithError(err).Error("s3 bucket check failed")
	}
	log.Info("s3 client initialized")
}
