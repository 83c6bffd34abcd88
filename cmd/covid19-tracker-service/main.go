package main

import (
	"os"

	"covid19-tracker-service/internal/config"
	"covid19-tracker-service/internal/diseaseapi"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "covid19-tracker-service",
	Short: "COVID-19 statistics by country",
	Long: `Serves COVID-19 statistics by country from the disease.sh API.

Available subcommands:
  serve - Run the HTTP API
  table - Print the cases table to the terminal`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load configuration
		return config.Load()
	},
}

func main() {
	rootCmd.AddCommand(serveCmd, tableCmd)

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}

func newClient(opts ...diseaseapi.Option) *diseaseapi.Client {
	opts = append([]diseaseapi.Option{
		diseaseapi.WithUserAgent(config.AppConfig.UserAgent),
		diseaseapi.WithTimeout(config.AppConfig.HTTPTimeout),
	}, opts...)
	return diseaseapi.NewClient(config.AppConfig.DiseaseAPIBase, opts...)
}
