package main

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type COS struct {
	EndPoint   string `yaml:"end_point"`
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
	UseSSL     bool   `yaml:"use_ssl"`
	BucketName string `yaml:"bucket_name"`
}

// Enabled reports whether an object store is configured.
func (cos *COS) Enabled() bool {
	return cos != nil && cos.EndPoint != "" && cos.BucketName != ""
}

// BucketSource reads inputs from objects named NN.txt in a MinIO bucket.
type BucketSource struct {
	*minio.Client
	bucket string
}

func (mio *BucketSource) Bucket() string {
	return mio.bucket
}

func (cos *COS) NewMinIO(ctx context.Context) (*BucketSource, error) {
	client, err := minio.New(cos.EndPoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cos.AccessKey, cos.SecretKey, ""),
		Secure: cos.UseSSL})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, cos.BucketName)
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, fmt.Errorf("bucket %s not exists", cos.BucketName)
	}

	return &BucketSource{client, cos.BucketName}, nil
}

func (mio *BucketSource) Load(ctx context.Context, day int) ([]byte, error) {
	obj, err := mio.GetObject(ctx, mio.bucket, inputName(day), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("load input of day %d: %w", day, err)
	}
	defer obj.Close()

	b, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("load input of day %d: %w", day, err)
	}
	return b, nil
}
