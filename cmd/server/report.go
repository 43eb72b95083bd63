package main

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iliyamo/gym-management/internal/logger"
	"github.com/iliyamo/gym-management/internal/report"
	"github.com/iliyamo/gym-management/internal/repository"
)

func newReportCommand() *cobra.Command {
	var p report.Params

	kinds := make([]string, 0, len(report.Kinds))
	for _, k := range report.Kinds {
		kinds = append(kinds, k.Slug())
	}

	cmd := &cobra.Command{
		Use:       "report <kind>",
		Short:     "Print a report as JSON lines",
		Long:      "Runs one report and prints one JSON object per row.\nKinds: " + strings.Join(kinds, ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := report.ParseKind(args[0])
			if err != nil {
				return err
			}
			_, db, _, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			engine := report.NewEngine(repository.NewGateway(db, logger.WithComponent("gateway")), logger.WithComponent("report"))
			rows, err := engine.Run(cmd.Context(), kind, p)
			if err != nil {
				return err
			}
			return printRows(cmd, rows)
		},
	}
	cmd.Flags().StringVar(&p.From, "from", "", "First day of the range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&p.To, "to", "", "Last day of the range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&p.Month, "month", "", "Month for equipment usage (YYYY-MM)")
	return cmd
}

// printRows writes each element of the rows slice as one JSON line.
func printRows(cmd *cobra.Command, rows any) error {
	v := reflect.ValueOf(rows)
	if v.Kind() != reflect.Slice {
		return fmt.Errorf("unexpected report result %T", rows)
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	for i := range v.Len() {
		if err := enc.Encode(v.Index(i).Interface()); err != nil {
			return err
		}
	}
	return nil
}
