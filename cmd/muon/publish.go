package main

import (
	"github.com/sortiz4/muon/internal/config"
	"github.com/sortiz4/muon/pkg/publish"
	"github.com/spf13/cobra"
)

func publishCmd(flags *globalFlags) *cobra.Command {
	var (
		dir    string
		bucket string
		prefix string
		key    string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the example page",
		Long: `Render the example page and store it.

Pages go to publish.dir unless a bucket is configured, in which case they
are uploaded to S3. Credentials are read from AWS_ACCESS_KEY_ID,
AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN.

Examples:
  muon publish
  muon publish --dir=public
  muon publish --bucket=my-site --prefix=docs/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if dir != "" {
				cfg.Publish.Dir = dir
			}
			if bucket != "" {
				cfg.Publish.Bucket = bucket
			}
			if prefix != "" {
				cfg.Publish.Prefix = prefix
			}

			logger := newLogger(cmd.ErrOrStderr(), flags.verbose)
			pub := publish.New(newEngine(cfg, logger, nil), newStore(cfg))
			if err := pub.Publish(cmd.Context(), key, examplePage(cfg.Document)); err != nil {
				return err
			}

			success(cmd.OutOrStdout(), "Published %s to %s", key, destination(cfg))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Output directory (default from muon.json)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket (default from muon.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "S3 key prefix (default from muon.json)")
	cmd.Flags().StringVarP(&key, "key", "k", "index.html", "Key of the published page")

	return cmd
}

// newStore picks the S3 store when a bucket is configured.
func newStore(cfg *config.Config) publish.Store {
	if cfg.UsesS3() {
		client := publish.NewS3Client(publish.S3Config{
			Region:   cfg.Publish.Region,
			Endpoint: cfg.Publish.Endpoint,
		})
		return publish.NewS3Store(client, cfg.Publish.Bucket, cfg.Publish.Prefix)
	}
	return publish.NewFileStore(cfg.OutputPath())
}

func destination(cfg *config.Config) string {
	if cfg.UsesS3() {
		return "s3://" + cfg.Publish.Bucket + "/" + cfg.Publish.Prefix
	}
	return cfg.OutputPath()
}
