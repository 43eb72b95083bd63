package main

import (
	"github.com/spf13/cobra"

	"github.com/iliyamo/gym-management/internal/database"
)

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create missing tables and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, db, log, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()
			log.Info("schema ensured", "tables", len(database.Tables))
			return nil
		},
	}
}
