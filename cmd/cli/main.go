package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jakechorley/term-timetable/cmd/cli/commands"
	"github.com/jakechorley/term-timetable/internal/config"
	"github.com/jakechorley/term-timetable/pkg/utils/logging"
)

var (
	env     string
	verbose bool
	quiet   bool
	app     = &commands.AppContext{Ctx: context.Background()}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "timetable",
		Short: "Term timetable CLI - Generate semester schedules",
		Long:  `A CLI tool for allocating lessons to student groups across a term, honouring teacher assignments, preferred days and blackout days.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.Close()
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment suffix for timetable_config.<env>.yaml (e.g. test, prod)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to the console")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log warnings to the console and skip the log file")

	rootCmd.AddCommand(commands.GenerateScheduleCmd(app))
	rootCmd.AddCommand(commands.ListSubjectsCmd(app))
	rootCmd.AddCommand(commands.ListBlackoutDaysCmd(app))
	rootCmd.AddCommand(commands.MigrateCmd(app))
	rootCmd.AddCommand(commands.ServeCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up the logger and configuration
func initApp() error {
	var err error
	app.Env = env

	// Rendered timetables go to stdout, logs to stderr
	opts := []logging.Option{logging.WithConsole(os.Stderr)}
	switch {
	case quiet:
		opts = append(opts, logging.WithConsoleLevel(zapcore.WarnLevel), logging.WithoutFile())
	case verbose:
		opts = append(opts, logging.WithConsoleLevel(zapcore.DebugLevel))
	}

	app.Logger, err = logging.InitLogger(env, opts...)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully",
		zap.String("curriculum_source", string(app.Cfg.Curriculum.Source)),
		zap.Int("weeks_per_semester", app.Cfg.WeeksPerSemester))

	return nil
}
