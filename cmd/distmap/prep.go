package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/cobra"

	"github.com/hupe1980/distmap"
	"github.com/hupe1980/distmap/export"
	minioexport "github.com/hupe1980/distmap/export/minio"
	s3export "github.com/hupe1980/distmap/export/s3"
)

var (
	prepMask     string
	prepDelim    string
	prepProgress time.Duration
	prepUpload   string
)

var prepCmd = &cobra.Command{
	Use:   "prep <distfile> <outdir>",
	Short: "Build sorted-distance and argsort-index arrays from a dense matrix",
	Long: `Prep streams a dense pairwise-distance text matrix row by row and
writes two memory-mapped arrays into <outdir>: distmat.npy holds each
row's distances in ascending order, index.npy holds the argsort
permutation that produced it.

An optional vertex mask drops rows and columns before sorting.

Examples:
  distmap prep distances.txt ./out
  distmap prep distances.txt.gz ./out --mask cortex_mask.txt
  distmap prep distances.csv ./out --delimiter , --upload s3`,
	Args: cobra.ExactArgs(2),
	RunE: runPrep,
}

func init() {
	rootCmd.AddCommand(prepCmd)

	prepCmd.Flags().StringVar(&prepMask, "mask", "", "vertex mask file (nonzero values exclude vertices)")
	prepCmd.Flags().StringVar(&prepDelim, "delimiter", "", "field delimiter of the source matrix (default from config)")
	prepCmd.Flags().DurationVar(&prepProgress, "progress-interval", 0, "how often to log streaming progress (default from config)")
	prepCmd.Flags().StringVar(&prepUpload, "upload", "", "ship finished artifacts to object storage (s3 or minio)")
}

func runPrep(cmd *cobra.Command, args []string) error {
	distFile, outputDir := args[0], args[1]

	delim := cfg.Delimiter
	if prepDelim != "" {
		delim = prepDelim
	}
	progress := cfg.ProgressInterval
	if prepProgress > 0 {
		progress = prepProgress
	}

	opts := []distmap.Option{
		distmap.WithLogger(logger),
		distmap.WithDelimiter(delim),
		distmap.WithProgressInterval(progress),
	}
	if prepMask != "" {
		opts = append(opts, distmap.WithMaskFile(prepMask))
	}

	files, err := distmap.Create(distFile, outputDir, opts...)
	if err != nil {
		return err
	}

	fmt.Println("distmat:", files["distmat"])
	fmt.Println("index:  ", files["index"])

	if prepUpload == "" {
		return nil
	}

	store, err := newStore(cmd.Context(), cfg, prepUpload)
	if err != nil {
		return err
	}

	logger.Info("uploading artifacts", "target", prepUpload)
	if err := export.Upload(cmd.Context(), store, files); err != nil {
		return err
	}
	logger.Info("upload complete", "target", prepUpload)
	return nil
}

func newStore(ctx context.Context, cfg Config, target string) (export.Store, error) {
	switch target {
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, errors.New("upload: DISTMAP_S3_BUCKET is not set")
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("upload: %w", err)
		}
		return s3export.NewStore(awss3.NewFromConfig(awsCfg), cfg.S3Bucket, cfg.S3Prefix), nil
	case "minio":
		if cfg.MinioEndpoint == "" || cfg.MinioBucket == "" {
			return nil, errors.New("upload: DISTMAP_MINIO_ENDPOINT and DISTMAP_MINIO_BUCKET must be set")
		}
		client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
			Secure: cfg.MinioUseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("upload: %w", err)
		}
		return minioexport.NewStore(client, cfg.MinioBucket, cfg.MinioPrefix), nil
	default:
		return nil, fmt.Errorf("upload: unknown target %q (want s3 or minio)", target)
	}
}
