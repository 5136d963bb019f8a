package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/drydock-build/drydock/internal/logger"
	"github.com/drydock-build/drydock/internal/service/build"
	"github.com/drydock-build/drydock/internal/version"
)

var (
	// buildOptions collects the build flags.
	buildOptions build.Options

	// rootCmd represents the base drydock command.
	rootCmd = &cobra.Command{
		Use:   "drydock",
		Short: "Build, bundle and sign desktop applications",
	}

	// buildCmd runs the release-build pipeline.
	buildCmd = &cobra.Command{
		Use:   "build",
		Short: "Compile the app, package it and sign updater artifacts",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			if buildOptions.Verbose {
				logger.SetLevel(zapcore.DebugLevel)
			}

			return build.Run(ctx, &buildOptions)
		},
	}
)

// Execute runs the drydock CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)
	rootCmd.AddCommand(buildCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error(context.Background(), err)
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := buildCmd.Flags()
	flags.BoolVarP(&buildOptions.Debug, "debug", "d", false, "build with the debug profile")
	flags.BoolVarP(&buildOptions.Verbose, "verbose", "v", false, "enable verbose output")
	flags.StringVarP(&buildOptions.Runner, "runner", "r", "", "build tool overriding the configured runner")
	flags.StringVarP(&buildOptions.Target, "target", "t", "", "cross-compilation target triple")
	flags.StringSliceVarP(&buildOptions.Bundles, "bundles", "b", nil,
		"package formats to produce (deb, appimage, msi, app, dmg, updater; none disables bundling)")
	flags.StringVarP(&buildOptions.ConfigPath, "config", "c", "", "path to an alternate drydock.yaml")
}
