package cmd

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/zhubert/gigglegen/internal/app"
	"github.com/zhubert/gigglegen/internal/catalog"
	"github.com/zhubert/gigglegen/internal/clipboard"
	"github.com/zhubert/gigglegen/internal/config"
	"github.com/zhubert/gigglegen/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	version, commit, date string
)

// Flags shared by the TUI and the joke command
var (
	categoryFlag string
	darkFlag     bool
	seedFlag     uint64
	catalogFlag  string
	notifyFlag   bool
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "gigglegen",
	Short: "Your daily dose of laughter, in the terminal",
	Long: `GiggleGen shows a random joke from the category you pick. Rate it,
share it or copy it, then grab another one.

Preferences are read from ~/.gigglegen/config.json, then from .env and
GIGGLEGEN_* environment variables, then from flags.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to "+logger.DefaultLogPath)
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "JSON file with extra jokes to merge into the catalog")
	rootCmd.PersistentFlags().Uint64Var(&seedFlag, "seed", 0, "Fixed random seed for a reproducible joke sequence")

	rootCmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "Category to start in")
	rootCmd.Flags().BoolVar(&darkFlag, "dark", false, "Start in the dark theme")
	rootCmd.Flags().BoolVar(&notifyFlag, "notify", false, "Show a desktop notification after copying")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("gigglegen %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("gigglegen %s\n", version)
}

// loadConfig reads preferences from disk and the environment, then applies
// any flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if err := config.LoadDotEnv(); err != nil {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("category") {
		cfg.InitialCategory = categoryFlag
	}
	if flags.Changed("dark") {
		cfg.DarkTheme = darkFlag
	}
	if flags.Changed("notify") {
		cfg.Notifications = notifyFlag
	}
	if flags.Changed("catalog") {
		cfg.CatalogPath = catalogFlag
	}
	if flags.Changed("seed") {
		seed := seedFlag
		cfg.Seed = &seed
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	defer logger.Close()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("error loading catalog: %w", err)
	}

	if err := clipboard.Init(); err != nil {
		logger.Warn("native clipboard unavailable: %v", err)
	}

	m := app.New(cfg, app.WithCatalog(cat))
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
