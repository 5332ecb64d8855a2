package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jlv/internal/config"
	"jlv/internal/export"
	"jlv/internal/model"
	"jlv/internal/ui"
	"jlv/internal/util/logx"
	"jlv/internal/version"
)

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	var theme, exportFormat string

	cmd := &cobra.Command{
		Use:           "jlv [FILENAME]",
		Short:         "JsonL viewer",
		Long:          "jlv shows a JSON Lines file as a table of top-level keys, with per-record detail tabs.",
		Version:       version.String(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.ResolveFile(args)
			cfg.Theme = config.Theme(theme)
			cfg.ExportFormat = config.ExportFormat(exportFormat)
			if err := cfg.Validate(); err != nil {
				if errors.Is(err, config.ErrNoFilename) {
					cmd.SetOut(cmd.ErrOrStderr())
					_ = cmd.Usage()
				}
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfg.FilePath, "filename", "f", "", "JSONL file to view (alternative to the positional argument)")
	f.BoolVarP(&cfg.Debug, "debug", "d", false, "enable diagnostic output on stderr after exit")
	f.StringVar(&theme, "theme", string(config.ThemeDark), "color theme: dark|light")
	f.StringVar(&exportFormat, "export", "", "write the table instead of viewing it: csv|json")
	f.StringVar(&cfg.ExportOut, "out", "", "output path for --export")
	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	if cfg.Debug {
		fmt.Fprintln(os.Stderr, "Debug mode on")
		logx.SetLevel(logx.Debug)
		defer func() { fmt.Fprintln(os.Stderr, logx.Dump()) }()
	}
	logx.Infof("starting jlv %s: %s", version.String(), cfg.String())

	src, err := model.OpenFile(ctx, cfg.FilePath)
	if err != nil {
		return err
	}

	if cfg.ExportFormat != config.ExportNone {
		if err := export.WriteFile(cfg.ExportOut, cfg.ExportFormat, src); err != nil {
			return fmt.Errorf("export %s: %w", cfg.ExportOut, err)
		}
		logx.Infof("exported %d records to %s", src.Len(), cfg.ExportOut)
		return nil
	}

	if err := ui.Run(ctx, src, cfg); err != nil {
		logx.Errorf("jlv exited with error: %v", err)
		return err
	}
	return nil
}
