package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"telegram-alerts/internal/alerts"
	"telegram-alerts/internal/config"
	"telegram-alerts/internal/schedule"
	"telegram-alerts/internal/telegram"
	"telegram-alerts/pkg/logger"
)

var dryRun bool

var rootCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Run scheduled Telegram alerts",
	Long: `alerts runs one or more alert sources and sends the combined result to the
configured Telegram chat. Without a subcommand it runs the Spinny price tracker,
which is what the daily-alert workflow dispatch expects.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), func(cfg *config.AlertsConfig, log *zap.Logger) []alerts.Source {
			return []alerts.Source{newPriceTracker(cfg, log)}
		})
	},
}

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Send the Spinny price breakdown of the tracked car",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), func(cfg *config.AlertsConfig, log *zap.Logger) []alerts.Source {
			return []alerts.Source{newPriceTracker(cfg, log)}
		})
	},
}

var tiguanCmd = &cobra.Command{
	Use:   "tiguan",
	Short: "Search Spinny cities for Tiguan listings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), func(cfg *config.AlertsConfig, log *zap.Logger) []alerts.Source {
			return []alerts.Source{alerts.NewTiguanSearch(cfg.Spinny.APIBaseURL, cfg.Spinny.Models, cfg.Spinny.Cities, log)}
		})
	},
}

var hairCmd = &cobra.Command{
	Use:       "hair <slot>",
	Short:     "Send today's hair schedule reminder for one slot",
	Long:      `Send today's (IST) reminder for one slot. Nothing is sent if the slot does not occur today.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: lowerSlotLabels(),
	RunE: func(cmd *cobra.Command, args []string) error {
		reminder, err := alerts.NewSlotReminder(args[0])
		if err != nil {
			return err
		}
		return run(cmd.Context(), func(cfg *config.AlertsConfig, log *zap.Logger) []alerts.Source {
			return []alerts.Source{reminder}
		})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Print messages instead of sending them")
	rootCmd.AddCommand(priceCmd, tiguanCmd, hairCmd, versionCmd)
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

type sourceFactory func(cfg *config.AlertsConfig, log *zap.Logger) []alerts.Source

func run(ctx context.Context, build sourceFactory) error {
	log := logger.NewLogger()
	if dryRun {
		log = logger.NewDevelopment()
	}
	defer log.Sync()

	cfg, err := config.LoadAlerts()
	if err != nil {
		return err
	}
	if !dryRun {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	sources := build(cfg, log)

	var messenger alerts.Messenger = alerts.WriterMessenger{W: os.Stdout}
	if !dryRun {
		messenger = telegram.NewClient(cfg.Telegram.APIBaseURL, cfg.Telegram.BotToken, log)
	}

	runner := alerts.NewRunner(messenger, cfg.Telegram.NotifyChatID, log)
	if err := runner.Run(ctx, sources...); err != nil {
		log.Error("Alert run failed", zap.Error(err))
		return err
	}
	return nil
}

func newPriceTracker(cfg *config.AlertsConfig, log *zap.Logger) alerts.Source {
	return alerts.NewPriceTracker(cfg.Spinny.APIBaseURL, cfg.Spinny.CarID, log)
}

func lowerSlotLabels() []string {
	labels := schedule.SlotLabels()
	for i, l := range labels {
		labels[i] = strings.ToLower(l)
	}
	return labels
}

var (
	Version   = "dev"
	GitCommit = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("alerts version %s\n", Version)
		fmt.Printf("  Git commit: %s\n", GitCommit)
	},
}
