package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MGmadhavan/medication-reminder-app/internal/logger"
	"github.com/MGmadhavan/medication-reminder-app/services/reminder-service/internal/check"
	"github.com/MGmadhavan/medication-reminder-app/services/reminder-service/internal/db"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run one check pass and exit",
	Long:  "Runs a single fetch/classify/dispatch pass for exec-style cron setups and prints the result as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		var mode check.Mode
		switch viper.GetString("check.mode") {
		case "missed":
			mode = check.ModeMissed
		case "immediate":
			mode = check.ModeImmediate
		default:
			return fmt.Errorf("invalid check mode %q: expected 'missed' or 'immediate'", viper.GetString("check.mode"))
		}

		log, err := logger.New(viper.GetString("log.level"))
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		ctx := context.Background()
		if err := db.Init(ctx); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()

		checker, _, err := buildChecker(log)
		if err != nil {
			return err
		}

		res, err := checker.Run(ctx, mode, time.Now())
		if err != nil {
			return fmt.Errorf("check run failed: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	},
}

func init() {
	checkCmd.Flags().String("mode", "missed", "Check mode: 'missed' or 'immediate'")
	viper.BindPFlag("check.mode", checkCmd.Flags().Lookup("mode"))

	rootCmd.AddCommand(checkCmd)
}
