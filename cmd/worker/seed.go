package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muhammad-hassn/portfolio/config"
	"github.com/muhammad-hassn/portfolio/internal/db"
	"github.com/muhammad-hassn/portfolio/internal/logger"
	"github.com/muhammad-hassn/portfolio/internal/seed"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with initial portfolio data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(cfg.App)
			ctx := log.WithContext(cmd.Context())

			conn, err := db.Open(ctx, &cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to postgres: %w", err)
			}
			defer conn.Close()

			log.Info().Msg("seeding data")
			res, err := seed.Run(ctx, conn.Pool)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"Successfully seeded data (new rows: %d categories, %d skills, %d projects, %d certifications)\n",
				res.Categories, res.Skills, res.Projects, res.Certifications)
			return nil
		},
	}
}
