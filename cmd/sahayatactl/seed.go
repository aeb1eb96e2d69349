package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/sahayata/internal/config"
	"github.com/kailas-cloud/sahayata/internal/setup"
)

func newSeedCmd(opts *options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:     "seed",
		Short:   "Upsert a YAML scheme fixture into the configured catalog",
		Example: `  CATALOG_DRIVER=valkey sahayatactl seed --file testdata/catalog.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cfg.Catalog.Driver == config.DriverBadger && cfg.Catalog.InMemory {
				return errors.New("seeding an in-memory badger catalog has no lasting effect")
			}
			cfg.Catalog.SeedFile = ""
			logger, err := opts.logger()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			backend, err := setup.OpenCatalog(ctx, cfg.Catalog, logger)
			if err != nil {
				return err
			}
			defer func() { _ = backend.Close() }()

			n, err := setup.Seed(ctx, backend.Catalog, file)
			if err != nil {
				return err
			}
			header(cmd.OutOrStdout(), "seeded %d scheme(s) into %s", n, backend.Driver)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML fixture path (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
