package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// config holds CLI defaults loadable from a YAML file.
type config struct {
	ImageColumn string `yaml:"image_column"`
	NameColumn  string `yaml:"name_column"`
	Output      string `yaml:"output"`
	MaxFileMB   int    `yaml:"max_file_mb"`
	Workers     int    `yaml:"workers"`
}

func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// applyConfig overrides flag defaults with config values. Flags the user
// set explicitly win over the file.
func applyConfig(cmd *cobra.Command, cfg *config) {
	if cfg.ImageColumn != "" && !cmd.Flags().Changed("image-column") {
		imageColumn = cfg.ImageColumn
	}
	if cfg.NameColumn != "" && !cmd.Flags().Changed("name-column") {
		nameColumn = cfg.NameColumn
	}
	if cfg.Output != "" && !cmd.Flags().Changed("output") {
		outputPath = cfg.Output
	}
	if cfg.MaxFileMB > 0 && !cmd.Flags().Changed("max-file-mb") {
		maxFileMB = cfg.MaxFileMB
	}
	if cfg.Workers > 0 && !cmd.Flags().Changed("workers") {
		workers = cfg.Workers
	}
}
