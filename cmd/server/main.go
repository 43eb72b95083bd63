package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	serve := newServeCommand()

	root := &cobra.Command{
		Use:           "server",
		Short:         "Gym management API",
		Long:          `Records members, trainers, workouts, equipment, payments and health metrics in MySQL and serves aggregate reports.`,
		RunE:          serve.RunE,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(serve, newSchemaCommand(), newReportCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
