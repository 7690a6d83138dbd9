package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"dyele/internal/app"
	"dyele/internal/daily"
	"dyele/internal/devtools"
	"dyele/internal/game"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dataDir  string
		logPath  string
		practice bool
	)

	root := &cobra.Command{
		Use:           "dyele",
		Short:         "A daily food-dye deduction puzzle for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(dataDir, logPath)
			if err != nil {
				return err
			}
			if practice {
				cfg.Mode = "practice"
			}
			a, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer a.Close()
			return a.Run(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "override the state directory")
	root.PersistentFlags().StringVar(&logPath, "log", "", "write a JSON log to this file")
	root.Flags().BoolVar(&practice, "practice", false, "start in practice mode")

	root.AddCommand(newHistoryCmd(&dataDir, &logPath))
	root.AddCommand(newResetCmd(&dataDir, &logPath))
	root.AddCommand(newDebugCmd(&dataDir, &logPath))
	root.AddCommand(newVersionCmd())
	return root
}

func buildConfig(dataDir, logPath string) (app.Config, error) {
	cfg, err := app.ConfigFromEnv()
	if err != nil {
		return app.Config{}, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if logPath != "" {
		cfg.LogPath = logPath
	}
	if err := cfg.Validate(); err != nil {
		return app.Config{}, err
	}
	return cfg, nil
}

func openApp(dataDir, logPath string) (*app.App, error) {
	cfg, err := buildConfig(dataDir, logPath)
	if err != nil {
		return nil, err
	}
	return app.New(cfg)
}

func newHistoryCmd(dataDir, logPath *string) *cobra.Command {
	var showGrids bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the finished-game ledger, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*dataDir, *logPath)
			if err != nil {
				return err
			}
			defer a.Close()

			entries, err := a.History()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No finished games yet.")
				return nil
			}
			for _, e := range entries {
				fmt.Println(historyLine(e))
				if showGrids {
					fmt.Println(e.ShareGrid)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showGrids, "grids", false, "include the emoji grid for each entry")
	return cmd
}

func historyLine(e game.HistoryEntry) string {
	icon := "✗"
	if e.Status == game.StatusWon {
		icon = "✓"
	}
	label := e.DayKey
	when := e.DayKey
	if e.Practice {
		label = "practice"
		if t, err := time.Parse(time.RFC3339, e.DayKey); err == nil {
			when = humanize.Time(t)
		}
	} else if t, err := time.Parse(daily.DayKeyLayout, e.DayKey); err == nil {
		when = humanize.Time(t)
	}
	return fmt.Sprintf("%s %-10s %d/%d  %s", icon, label, e.Attempts, game.MaxAttempts, when)
}

func newResetCmd(dataDir, logPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard today's daily progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*dataDir, *logPath)
			if err != nil {
				return err
			}
			defer a.Close()

			mgr := devtools.NewManager(a.Store(), a.Clock())
			if err := mgr.ResetDaily(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Today's puzzle has been reset.")
			return nil
		},
	}
}

func newDebugCmd(dataDir, logPath *string) *cobra.Command {
	debug := &cobra.Command{
		Use:    "debug",
		Short:  "Maintenance helpers for development",
		Hidden: true,
	}

	var days int
	seed := &cobra.Command{
		Use:   "seed-history",
		Short: "Fill the ledger with synthetic past results",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*dataDir, *logPath)
			if err != nil {
				return err
			}
			defer a.Close()

			mgr := devtools.NewManager(a.Store(), a.Clock())
			if err := mgr.SeedHistory(cmd.Context(), days); err != nil {
				return err
			}
			fmt.Printf("Seeded %d days of history.\n", days)
			return nil
		},
	}
	seed.Flags().IntVar(&days, "days", 7, "how many past days to seed")

	reset := &cobra.Command{
		Use:   "reset-daily",
		Short: "Clear today's saved state without touching history",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*dataDir, *logPath)
			if err != nil {
				return err
			}
			defer a.Close()

			mgr := devtools.NewManager(a.Store(), a.Clock())
			return mgr.ResetDaily(cmd.Context())
		},
	}

	debug.AddCommand(seed, reset)
	return debug
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dyele version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("dyele", version)
		},
	}
}
