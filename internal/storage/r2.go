package storage

import (
	"bytes"
	"context"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"hotel-backend/internal/config"
)

// Archiver uploads rendered invoice PDFs to an S3-compatible bucket
// (Cloudflare R2 in production). Archival is best effort: a nil Archiver or a
// failed upload never fails the bill request.
type Archiver struct {
	client *s3.Client
	bucket string
}

// NewArchiver builds an archiver from config. Returns nil when object
// storage is not configured.
func NewArchiver(cfg *config.Config) *Archiver {
	if cfg.Storage.Endpoint == "" || cfg.Storage.Bucket == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Storage.AccessKey,
			cfg.Storage.SecretKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Storage.Region),
	)
	if err != nil {
		log.Printf("[Storage] Failed to configure client: %v", err)
		return nil
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
	})

	return &Archiver{client: client, bucket: cfg.Storage.Bucket}
}

// ArchiveInvoice stores a rendered bill under invoices/<number>.pdf.
func (a *Archiver) ArchiveInvoice(ctx context.Context, invoiceNumber string, pdfData []byte) {
	if a == nil {
		return
	}

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String("invoices/" + invoiceNumber + ".pdf"),
		Body:        bytes.NewReader(pdfData),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		log.Printf("[Storage] Failed to archive invoice %s: %v", invoiceNumber, err)
		return
	}
	log.Printf("[Storage] Archived invoice %s", invoiceNumber)
}
