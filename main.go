package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
)

var (
	flagLogLevel string
	flagWorkers  int
	flagFormat   string
	flagOutput   string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "oci-docgen",
		Short:         "Collects OCI infrastructure data for documentation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flagLogLevel, "log-level", "l", "", "log level: silent, normal, verbose, debug")

	root.AddCommand(newServeCmd())
	root.AddCommand(newCollectCmd())
	root.AddCommand(newConfigCmd())
	return root
}

// loadRuntimeConfig loads the configuration, applies CLI overrides and
// installs the process logger.
func loadRuntimeConfig() (*AppConfig, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	MergeWithCLIArgs(config, flagLogLevel, flagFormat, flagOutput, flagWorkers)

	level, err := ParseLogLevel(config.General.LogLevel)
	if err != nil {
		return nil, err
	}
	logger = NewLogger(level)
	return config, nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadRuntimeConfig()
			if err != nil {
				return err
			}
			authCtx, err := ResolveAuth(config.Auth)
			if err != nil {
				return err
			}

			server := NewServer(config, authCtx, JSONRenderer{})

			errCh := make(chan error, 1)
			go func() { errCh <- server.Start() }()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logger.Info("Received %s, shutting down", sig)
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return server.Shutdown(ctx)
			}
		},
	}
}

func newCollectCmd() *cobra.Command {
	var region, compartmentID string
	var showProgress bool

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Run one full collection and write the snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadRuntimeConfig()
			if err != nil {
				return err
			}
			authCtx, err := ResolveAuth(config.Auth)
			if err != nil {
				return err
			}
			if compartmentID == "" {
				compartmentID = authCtx.TenancyID
			}

			cc, err := NewClientContext(authCtx, region, config.RetryPolicy())
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(config.General.Timeout)*time.Second)
			defer cancel()

			orchestrator := NewOrchestrator(cc, config.Collector.Workers)

			var reporter *TaskReporter
			if showProgress {
				reporter = NewLocalReporter()
				uiprogress.Start()
				bar := uiprogress.AddBar(100).AppendCompleted()
				bar.PrependFunc(func(b *uiprogress.Bar) string {
					progress := reporter.Status().Progress
					if progress.StepKey == "" {
						return ""
					}
					return translate("phase."+progress.StepKey, "pt")
				})
				go func() {
					ticker := time.NewTicker(200 * time.Millisecond)
					defer ticker.Stop()
					for {
						select {
						case <-ctx.Done():
							return
						case <-ticker.C:
							bar.Set(reporter.Status().Progress.Percent)
						}
					}
				}()
				defer uiprogress.Stop()
			}

			snapshot, err := orchestrator.CollectInfrastructure(ctx, compartmentID, reporter)
			if err != nil {
				return err
			}
			return WriteSnapshot(snapshot, config.Output.Format, config.Output.File)
		},
	}

	cmd.Flags().StringVarP(&region, "region", "r", "", "region identifier, e.g. sa-saopaulo-1")
	cmd.Flags().StringVarP(&compartmentID, "compartment", "c", "", "compartment OCID (default: tenancy root)")
	cmd.Flags().IntVarP(&flagWorkers, "workers", "w", 0, "concurrent instance fetches")
	cmd.Flags().StringVarP(&flagFormat, "format", "f", "", "output format: json or yaml")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&showProgress, "progress", false, "show a progress bar on stderr")
	cmd.MarkFlagRequired("region")
	return cmd
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [file]",
		Short: "Write a configuration file with the defaults",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := "oci-docgen.yaml"
			if len(args) > 0 {
				file = args[0]
			}
			if err := GenerateDefaultConfigFile(file); err != nil {
				return err
			}
			fmt.Printf("Configuration written to %s\n", file)
			return nil
		},
	})
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
