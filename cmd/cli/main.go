package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/config"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/storage"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "meal-planner",
	Short: "Meal Planner CLI - weekly plan, pantry and shopping tooling",
	Long: `A CLI for the household meal planner: print the shopping list for a
week, export the plan to a spreadsheet, and summarize the cook history.
All commands operate directly on the JSON documents in the data directory.`,
	PersistentPreRunE: persistentPreRun,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml or ./config.yaml)")
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
	}
}

// persistentPreRun runs before each command and initializes dependencies
func persistentPreRun(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "help" || cmd.Name() == "completion" {
		return nil
	}
	logger = initLogger()
	return nil
}

func initLogger() *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	if cfg != nil && cfg.Logging.Level != "" {
		if parsedLevel, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
			level = parsedLevel
		}
	}

	// Always use console format for CLI
	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stdout, NoColor: cfg != nil && cfg.Logging.NoColor}

	log := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &log
}

func openStore() (*storage.Store, error) {
	dir := "./data"
	if cfg != nil && cfg.Data.Dir != "" {
		dir = cfg.Data.Dir
	}
	return storage.New(dir)
}

// currentWeek fills in the ISO week for commands called without one.
func currentWeek(year, week int) (int, int) {
	if year > 0 && week > 0 {
		return year, week
	}
	y, w := time.Now().ISOWeek()
	return y, w
}

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
