package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/review-crew/internal/config"
	"github.com/sevigo/review-crew/internal/costs"
	"github.com/sevigo/review-crew/internal/db"
	"github.com/sevigo/review-crew/internal/logger"
)

var (
	costAgentID int64
	costDays    int
)

var costsCmd = &cobra.Command{
	Use:   "costs",
	Short: "Report token spend from the configured database",
	Long: `Report token spend from the configured database: per-agent totals over the
trailing day, grouped totals per repository, and a per-day trend.

Database settings come from the RC_DB_* environment variables.`,
	RunE: runCostsReport,
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	costsCmd.Flags().Int64Var(&costAgentID, "agent", 0, "agent ID for the per-agent section")
	costsCmd.Flags().IntVar(&costDays, "days", 7, "days of history for the trend section")
	rootCmd.AddCommand(costsCmd)
}

func runCostsReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	dbCfg := dbConfigFromEnv()
	conn, cleanup, err := db.NewDatabase(dbCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer cleanup()

	slogger := logger.NewLogger(logger.Config{Level: cliLogLevel(), Format: "text"}, os.Stderr)
	accountant := costs.NewAccountant(conn.DB, slogger)

	if costAgentID != 0 {
		usage, err := accountant.AgentUsage(ctx, costAgentID, 24*time.Hour)
		if err != nil {
			return err
		}
		titleColor.Printf("Agent %d, trailing 24h\n", usage.AgentID)
		fmt.Printf("  calls:        %d\n", usage.Records)
		fmt.Printf("  tokens:       %d (avg %.1f per call)\n", usage.TotalTokens, usage.AvgTokensPerCall)
		fmt.Printf("  cost:         $%.6f\n\n", usage.TotalCostUSD)
	}

	byRepo, err := accountant.UsageByRepository(ctx)
	if err != nil {
		return err
	}
	titleColor.Println("Per repository")
	for _, u := range byRepo {
		repoLabel := "(none)"
		if u.RepositoryID.Valid {
			repoLabel = fmt.Sprintf("#%d", u.RepositoryID.Int64)
		}
		fmt.Printf("  %-8s %8d tokens  $%.6f\n", repoLabel, u.TotalTokens, u.TotalCostUSD)
	}

	trend, err := accountant.DailyTrend(ctx, costDays)
	if err != nil {
		return err
	}
	titleColor.Printf("\nDaily trend (last %d days, UTC)\n", costDays)
	for _, u := range trend {
		fmt.Printf("  %s %8d tokens  $%.6f\n", u.Day.Format("2006-01-02"), u.TotalTokens, u.TotalCostUSD)
	}
	return nil
}

func dbConfigFromEnv() *config.DBConfig {
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "review_crew")
	viper.SetDefault("DB_NAME", "review_crew")

	return &config.DBConfig{
		Host:     viper.GetString("DB_HOST"),
		Port:     viper.GetInt("DB_PORT"),
		Username: viper.GetString("DB_USER"),
		Password: viper.GetString("DB_PASSWORD"),
		Database: viper.GetString("DB_NAME"),
	}
}
