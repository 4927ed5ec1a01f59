package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	sc "artcatalog/internal/server/config"
)

func newImageSvc() *ImageService {
	return NewImageService(&sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "artwork-images",
		PresignExpiry:  15 * time.Minute,
	})
}

func stubPresignClients(t *testing.T) {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	origNewPre := newS3PresignClient
	origPut := presignPutObject
	origGet := presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
		presignGetObject = origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return &s3.PresignClient{}
	}
}

func Test_getPresignClient(t *testing.T) {
	svc := newImageSvc()
	stubPresignClients(t)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			if err := fn(&lo); err != nil {
				t.Fatalf("load options fn error: %v", err)
			}
		}
		if lo.Region != "us-east-1" {
			t.Fatalf("region not applied: %q", lo.Region)
		}
		return aws.Config{}, nil
	}

	var capturedBaseEndpoint string
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		if opts.BaseEndpoint == nil {
			t.Fatalf("BaseEndpoint not set")
		}
		capturedBaseEndpoint = *opts.BaseEndpoint
		return &s3.Client{}
	}

	pc, err := svc.getPresignClient()
	if err != nil {
		t.Fatalf("getPresignClient err: %v", err)
	}
	if pc == nil {
		t.Fatalf("nil presign client")
	}
	if capturedBaseEndpoint != "http://127.0.0.1:9000" {
		t.Fatalf("BaseEndpoint mismatch: %q", capturedBaseEndpoint)
	}

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	if _, err = svc.getPresignClient(); err == nil || err.Error() != "load-fail" {
		t.Fatalf("expected load-fail, got %v", err)
	}
}

func TestPresignUpload(t *testing.T) {
	svc := newImageSvc()
	stubPresignClients(t)

	var capturedBucket, capturedKey string
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		capturedBucket = *in.Bucket
		capturedKey = *in.Key
		return &v4.PresignedHTTPRequest{URL: "http://127.0.0.1:9000/put/" + *in.Key}, nil
	}

	key, url, err := svc.PresignUpload(context.Background())
	if err != nil {
		t.Fatalf("PresignUpload err: %v", err)
	}
	if capturedBucket != "artwork-images" {
		t.Fatalf("bucket mismatch: %q", capturedBucket)
	}
	if key != capturedKey {
		t.Fatalf("returned key %q differs from presigned key %q", key, capturedKey)
	}
	if !strings.HasPrefix(key, "artworks/") {
		t.Fatalf("unexpected key layout: %q", key)
	}
	if url != "http://127.0.0.1:9000/put/"+key {
		t.Fatalf("unexpected url: %q", url)
	}

	key2, _, err := svc.PresignUpload(context.Background())
	if err != nil {
		t.Fatalf("second PresignUpload err: %v", err)
	}
	if key2 == key {
		t.Fatalf("expected distinct keys, got %q twice", key)
	}
}

func TestResolveImageURL(t *testing.T) {
	svc := newImageSvc()
	stubPresignClients(t)

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "http://127.0.0.1:9000/get/" + *in.Key}, nil
	}

	// external URLs and empty refs pass through untouched
	for _, ref := range []string{"", "http://example.com/a.jpg", "https://example.com/a.jpg"} {
		got, err := svc.ResolveImageURL(context.Background(), ref)
		if err != nil {
			t.Fatalf("ResolveImageURL(%q) err: %v", ref, err)
		}
		if got != ref {
			t.Fatalf("ResolveImageURL(%q) = %q, want pass-through", ref, got)
		}
	}

	got, err := svc.ResolveImageURL(context.Background(), "artworks/2024/5/1/abc")
	if err != nil {
		t.Fatalf("ResolveImageURL err: %v", err)
	}
	if got != "http://127.0.0.1:9000/get/artworks/2024/5/1/abc" {
		t.Fatalf("unexpected presigned url: %q", got)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign-fail")
	}
	if _, err := svc.ResolveImageURL(context.Background(), "artworks/x"); err == nil {
		t.Fatalf("expected error")
	}
}
