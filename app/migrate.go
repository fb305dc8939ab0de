package main

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/spf13/cobra"

	"github.com/Guyuepp/go-tube-engagement/internal/config"
	"github.com/Guyuepp/go-tube-engagement/migrations"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate <up|down>",
		Short:     "Apply or roll back the MySQL schema",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cfg.SetupLogger()

			db, err := sql.Open("mysql", cfg.MigrationDSN())
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			switch args[0] {
			case "up":
				return migrations.Up(db)
			case "down":
				return migrations.Down(db)
			default:
				return fmt.Errorf("invalid direction %q: must be 'up' or 'down'", args[0])
			}
		},
	}
}
