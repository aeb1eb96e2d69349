package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/sahayata/internal/config"
	logpkg "github.com/kailas-cloud/sahayata/internal/logger"
	"github.com/kailas-cloud/sahayata/internal/setup"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	env        string
	configFile string
	seedFile   string
	noColor    bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "sahayatactl",
		Short: "Query and seed the Sahayata welfare scheme catalog",
		Long: `sahayatactl runs the same search, eligibility and statistics logic as the
HTTP API directly against a configured catalog backend, and loads YAML
fixtures into valkey, redis or badger catalogs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if opts.noColor {
				color.NoColor = true
			}
			return config.LoadDotEnv()
		},
	}

	root.PersistentFlags().StringVarP(&opts.env, "env", "e", config.GetEnv(), "config environment (local, prod)")
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file path (overrides --env)")
	root.PersistentFlags().StringVar(&opts.seedFile, "seed", "", "YAML fixture loaded into the catalog before running")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newSearchCmd(opts),
		newEligibilityCmd(opts),
		newStatsCmd(opts),
		newSeedCmd(opts),
		newVersionCmd(),
	)
	return root
}

func (o *options) loadConfig() (config.Config, error) {
	if o.configFile == "" {
		return config.Load(o.env)
	}
	data, err := os.ReadFile(filepath.Clean(o.configFile))
	if err != nil {
		return config.Config{}, fmt.Errorf("read config: %w", err)
	}
	return config.Parse(data)
}

func (o *options) logger() (*zap.Logger, error) {
	level := "warn"
	if o.verbose {
		level = "debug"
	}
	return logpkg.NewLogger(o.env, level)
}

// open loads config, connects the catalog and builds the services.
// The caller closes the returned backend.
func (o *options) open(ctx context.Context) (*setup.Services, *setup.Backend, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if o.seedFile != "" {
		cfg.Catalog.SeedFile = o.seedFile
	}
	logger, err := o.logger()
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}

	backend, err := setup.OpenCatalog(ctx, cfg.Catalog, logger)
	if err != nil {
		return nil, nil, err
	}
	svc, err := setup.NewServices(backend, cfg.Search)
	if err != nil {
		_ = backend.Close()
		return nil, nil, err
	}
	return svc, backend, nil
}
