package cmd

import (
	"fmt"
	"io"
	"os"

	"file-storage/core/config"
	"file-storage/core/logger"
	"file-storage/core/storage"
	"file-storage/feature/files"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outFlag         string
	ifNoneMatchFlag string
	noOverwriteFlag bool
)

// filesCmd groups the file operations
var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Inspect and manage stored files",
	Long:  `Runs single file operations against the configured bucket. Folders: packages, package-backups, uploads, downloads.`,
}

var existsCmd = &cobra.Command{
	Use:   "exists <folder> <name>",
	Short: "Check whether a file exists",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newFileService()
		if err != nil {
			return err
		}

		exists, err := svc.Exists(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), exists)
		if !exists {
			return fmt.Errorf("%s/%s: %w", args[0], args[1], files.ErrNotFound)
		}
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <folder> <name>",
	Short: "Download a file to stdout or --out",
	Long:  `Downloads a file. With --if-none-match nothing is written when the stored ETag still matches.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := newFileService()
		if err != nil {
			return err
		}

		ref, err := svc.GetReference(cmd.Context(), args[0], args[1], ifNoneMatchFlag)
		if err != nil {
			return err
		}
		if ref == nil {
			return fmt.Errorf("%s/%s: %w", args[0], args[1], files.ErrNotFound)
		}
		if !ref.HasContent() {
			logg.Info("File not modified", zap.String("etag", ref.ContentID()))
			return nil
		}

		stream, err := ref.OpenRead()
		if err != nil {
			return err
		}
		defer stream.Close()

		var dst io.Writer = cmd.OutOrStdout()
		if outFlag != "" {
			f, err := os.Create(outFlag)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outFlag, err)
			}
			defer f.Close()
			dst = f
		}

		n, err := io.Copy(dst, stream)
		if err != nil {
			return fmt.Errorf("failed to download %s/%s: %w", args[0], args[1], err)
		}
		logg.Info("File downloaded", zap.Int64("bytes", n), zap.String("etag", ref.ContentID()))
		return nil
	},
}

var putCmd = &cobra.Command{
	Use:   "put <folder> <name> <source>",
	Short: "Upload a local file",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := newFileService()
		if err != nil {
			return err
		}

		src, err := os.Open(args[2])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[2], err)
		}
		defer src.Close()

		if err := svc.Save(cmd.Context(), args[0], args[1], src, !noOverwriteFlag); err != nil {
			return err
		}
		logg.Info("File uploaded", zap.String("folder", args[0]), zap.String("name", args[1]))
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <folder> <name>",
	Short: "Delete a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := newFileService()
		if err != nil {
			return err
		}

		if err := svc.Delete(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		logg.Info("File deleted", zap.String("folder", args[0]), zap.String("name", args[1]))
		return nil
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the bucket is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newFileService()
		if err != nil {
			return err
		}

		if !svc.IsAvailable(cmd.Context()) {
			return fmt.Errorf("storage unavailable")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(filesCmd)
	filesCmd.AddCommand(existsCmd, getCmd, putCmd, deleteCmd, healthCmd)

	getCmd.Flags().StringVarP(&outFlag, "out", "o", "", "Write to this file instead of stdout")
	getCmd.Flags().StringVar(&ifNoneMatchFlag, "if-none-match", "", "Skip the download when the ETag still matches")
	putCmd.Flags().BoolVar(&noOverwriteFlag, "no-overwrite", false, "Fail if the file already exists")
}

func newFileService() (*files.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Storage.Validate(); err != nil {
		return nil, nil, err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	svc := files.NewService(storage.NewFactory(cfg.Storage), cfg.Storage.Bucket, cfg.Storage.Prefix, logg)
	return svc, logg, nil
}
