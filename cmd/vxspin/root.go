package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"git.sr.ht/~rockorager/vxspin"
	"git.sr.ht/~rockorager/vxspin/internal/config"
	"git.sr.ht/~rockorager/vxspin/log"
)

// options are the persistent flags shared by every command
type options struct {
	configPath string
	style      string
	size       float32
	logLevel   string
}

func newRootCmd(version string) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "vxspin",
		Short:         "Indeterminate progress spinners for terminal UIs",
		Long:          "vxspin draws animated dots, bars and squares spinners with half block characters.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default "+config.FilePath()+")")
	flags.StringVar(&opts.style, "style", "", "Spinner style: dots, bars or squares")
	flags.Float32Var(&opts.size, "size", 0, "Spinner size in pixels")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: error, warn, info, debug or trace")

	cmd.AddCommand(newDemoCmd(opts))
	cmd.AddCommand(newTeaCmd(opts))
	cmd.AddCommand(newSnapshotCmd(opts))
	cmd.AddCommand(newVersionCmd(version))

	return cmd
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print vxspin version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "vxspin", version)
		},
	}
}

// load reads the config file and applies flags set on the command line
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("style") {
		style, err := vxspin.ParseStyle(o.style)
		if err != nil {
			return nil, err
		}
		cfg.Spinner.Style = style
	}
	if flags.Changed("size") {
		cfg.Spinner.Size = o.size
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging points the log package at the configured file. Without a file,
// logs go to stderr when the command leaves the terminal alone, and are
// dropped otherwise. The returned function closes the log file
func setupLogging(cfg *config.Config, stderr bool) (func() error, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)

	switch {
	case cfg.Log.File != "":
		if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		log.SetOutput(f)
		return func() error {
			log.SetOutput(io.Discard)
			return f.Close()
		}, nil
	case stderr:
		log.SetOutput(os.Stderr)
	default:
		log.SetOutput(io.Discard)
	}
	return func() error { return nil }, nil
}
