package main

import (
	"fmt"
	"path/filepath"

	"travel-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var (
		schemaFile string
		devURL     string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the SQL schema to the configured database with atlas",
		Long: `Diff the desired schema file against the live database and apply the changes.

Examples:
  travelctl migrate --dev-url docker://postgres/17/dev
  travelctl migrate --schema migrations/001_initial_schema.sql --dry-run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dbCfg, err := config.LoadDBConfig()
			if err != nil {
				return err
			}

			abs, err := filepath.Abs(schemaFile)
			if err != nil {
				return fmt.Errorf("resolve schema path: %w", err)
			}

			client, err := atlasexec.NewClient(".", "atlas")
			if err != nil {
				return fmt.Errorf("atlas client: %w", err)
			}

			res, err := client.SchemaApply(cmd.Context(), &atlasexec.SchemaApplyParams{
				URL:         dbCfg.BuildDSN(),
				To:          "file://" + abs,
				DevURL:      devURL,
				DryRun:      dryRun,
				AutoApprove: true,
			})
			if err != nil {
				return fmt.Errorf("schema apply: %w", err)
			}

			out := cmd.OutOrStdout()
			stmts, verb := res.Changes.Applied, "applied"
			if dryRun {
				stmts, verb = res.Changes.Pending, "pending"
			}
			if len(stmts) == 0 {
				fmt.Fprintln(out, "Schema is up to date")
				return nil
			}
			for _, s := range stmts {
				fmt.Fprintln(out, s)
			}
			fmt.Fprintf(out, "%d statement(s) %s\n", len(stmts), verb)
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaFile, "schema", "migrations/001_initial_schema.sql", "desired schema file")
	cmd.Flags().StringVar(&devURL, "dev-url", "docker://postgres/17/dev", "atlas dev database used to normalize the diff")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print pending statements without applying them")

	return cmd
}
