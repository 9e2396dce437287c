package main

import (
	"fmt"

	"travel-booking/internal/infra/db"
	"travel-booking/internal/infra/seed"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/infra/uow"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"

	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	var opts seed.Options

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo listings, bookings and reviews",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Listings < 0 || opts.BookingsPerListing < 0 || opts.ReviewsPerListing < 0 {
				return fmt.Errorf("counts must not be negative")
			}

			dbCfg, err := config.LoadDBConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			pool, cleanup, err := db.Connect(ctx, dbCfg)
			if err != nil {
				return err
			}
			defer cleanup()

			q := sqlc.New()
			seeder := seed.NewSeeder(uow.NewPostgresUoW(pool, q), q)

			clk := clock.NewRealClock()
			now := clk.Now()
			plans, err := seed.Plan(opts, clock.Today(clk))
			if err != nil {
				return err
			}
			res, err := seeder.Run(ctx, plans, opts.Flush, now)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d listings, %d bookings, %d reviews\n", res.Listings, res.Bookings, res.Reviews)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Listings, "listings", 5, "number of listings")
	cmd.Flags().IntVar(&opts.BookingsPerListing, "bookings-per-listing", 2, "bookings per listing")
	cmd.Flags().IntVar(&opts.ReviewsPerListing, "reviews-per-listing", 2, "reviews per listing")
	cmd.Flags().BoolVar(&opts.Flush, "flush", false, "delete existing reviews, bookings and listings first")

	return cmd
}
