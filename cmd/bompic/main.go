// Package main provides the CLI entry point for bompic.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bom2pic/bompic/pkg/bompic"
	"github.com/spf13/cobra"
)

var (
	imageColumn string
	nameColumn  string
	outputPath  string
	configPath  string
	maxFileMB   int
	workers     int
	verbose     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bompic [workbook.xlsx ...]",
		Short: "Extract embedded images from Excel workbooks",
		Long: `bompic pulls every image anchored in a chosen column out of one or more
.xlsx workbooks, names each from a label column on the same row, and writes
a zip archive containing the images plus a report.csv manifest.`,
		Args: cobra.MinimumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&imageColumn, "image-column", "i", "A", "Column holding the images (e.g. A)")
	rootCmd.Flags().StringVarP(&nameColumn, "name-column", "n", "B", "Column holding the image names (e.g. B)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output zip path (default: bom2pic_images_<timestamp>.zip)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file with default settings")
	rootCmd.Flags().IntVar(&maxFileMB, "max-file-mb", 20, "Per-file size limit in MB (0 disables the check)")
	rootCmd.Flags().IntVar(&workers, "workers", 1, "Concurrent workbook scans")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if configPath != "" {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		applyConfig(cmd, cfg)
	}

	workbooks := make([]bompic.Workbook, 0, len(args))
	for _, arg := range args {
		if !strings.EqualFold(filepath.Ext(arg), ".xlsx") {
			return fmt.Errorf("only .xlsx files supported: %s", arg)
		}
		data, err := os.ReadFile(arg)
		if err != nil {
			return fmt.Errorf("read workbook: %w", err)
		}
		if maxFileMB > 0 && int64(len(data)) > int64(maxFileMB)<<20 {
			return fmt.Errorf("file too large: %s (limit %d MB)", arg, maxFileMB)
		}
		log.Debug("loaded workbook", "file", arg, "bytes", len(data))
		workbooks = append(workbooks, bompic.Workbook{Filename: filepath.Base(arg), Data: data})
	}

	opts := bompic.DefaultOptions()
	opts.Logger = log
	opts.Workers = workers

	result, err := bompic.Extract(workbooks, imageColumn, nameColumn, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	out := outputPath
	if out == "" {
		out = fmt.Sprintf("bom2pic_images_%s.zip", time.Now().Format("20060102_150405"))
	}
	if err := os.WriteFile(out, result.Archive, 0644); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}

	log.Info("extraction complete",
		"output", out,
		"total", result.TotalFound,
		"saved", result.Saved,
		"duplicates", result.Duplicates)

	return nil
}
