package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"

	"ddrconf/core/config"
	"ddrconf/core/storage"
)

var uploadObjectName string

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload FILE",
	Short: "Upload a dump file to the configured bucket",
	Long: `Uploads a local dump file to the storage bucket so the server can
compare it. The object name defaults to the file's base name.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("create storage client: %w", err)
		}

		ctx := cmd.Context()
		ok, err := client.BucketExists(ctx, cfg.Storage.Bucket)
		if err != nil {
			return fmt.Errorf("check bucket %s: %w", cfg.Storage.Bucket, err)
		}
		if !ok {
			return fmt.Errorf("bucket %s does not exist", cfg.Storage.Bucket)
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open dump: %w", err)
		}
		defer f.Close()
		stat, err := f.Stat()
		if err != nil {
			return fmt.Errorf("stat dump: %w", err)
		}

		name := uploadObjectName
		if name == "" {
			name = filepath.Base(args[0])
		}

		info, err := client.PutObject(ctx, cfg.Storage.Bucket, name, f, stat.Size(),
			minio.PutObjectOptions{ContentType: "text/plain"})
		if err != nil {
			return fmt.Errorf("upload %s: %w", name, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s (%d bytes) to %s/%s\n",
			name, info.Size, cfg.Storage.Bucket, info.Key)
		return nil
	},
}

func init() {
	uploadCmd.Flags().StringVarP(&uploadObjectName, "name", "n", "", "object name to store the dump under")
	RootCmd.AddCommand(uploadCmd)
}
