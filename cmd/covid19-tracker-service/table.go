package main

import (
	"context"
	"fmt"

	"covid19-tracker-service/internal/model"
	"covid19-tracker-service/internal/service"

	"github.com/jedib0t/go-pretty/table"
	"github.com/spf13/cobra"
)

var tableLimit int

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print live cases by country",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats := service.NewStatsService(newClient())

		_, rows, err := stats.Countries(context.Background())
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderTable(rows, tableLimit))
		return nil
	},
}

func init() {
	tableCmd.Flags().IntVarP(&tableLimit, "limit", "n", 20, "number of countries to show, 0 for all")
}

func renderTable(rows []model.TableRow, limit int) string {
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}

	tb := table.NewWriter()
	tb.AppendHeader(table.Row{"#", "country", "iso2", "cases", "deaths", "recovered"})
	for i, r := range rows {
		tb.AppendRow(table.Row{
			i + 1,
			r.Country,
			r.Iso2,
			r.CasesDisplay,
			service.FormatCount(r.Deaths),
			service.FormatCount(r.Recovered),
		})
	}
	return tb.Render()
}
