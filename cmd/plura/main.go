package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Nomadcxx/plura/internal/catalog"
	"github.com/Nomadcxx/plura/internal/config"
	"github.com/Nomadcxx/plura/internal/logging"
	"github.com/Nomadcxx/plura/internal/ui"
)

var (
	cfgFile     string
	catalogPath string
	logLevel    string

	// Version information (set via -ldflags during build)
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "plura",
	Short: "Browse movies, TV shows and anime from the terminal",
	Long:  getLongDescription(),
	Args:  cobra.NoArgs,
	Run:   runBrowse,
}

var checkCmd = &cobra.Command{
	Use:   "check <catalog-file>",
	Short: "Validate a catalog file and summarize its contents",
	Args:  cobra.ExactArgs(1),
	Run:   runCheck,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration file location and contents",
	Run:   runConfig,
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the active key bindings",
	Run:   runKeys,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("plura %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/plura/config.toml)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog file (JSON or YAML), overrides the config")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error), overrides the config")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runBrowse(cmd *cobra.Command, args []string) {
	if err := browse(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func browse() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	cat, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	logger.Info("plura starting", "version", version, "items", cat.Count())

	opts := ui.Options{Config: cfg, Catalog: cat, Logger: logger}
	if cfg.Catalog.Watch && cfg.Catalog.Path != "" {
		w, err := catalog.Watch(cfg.Catalog.Path)
		if err != nil {
			logger.Warn("catalog watch disabled", "err", err)
		} else {
			defer w.Close()
			opts.Reload = w.Events()
			logger.Info("watching catalog", "path", cfg.Catalog.Path)
		}
	}

	model := ui.New(opts)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	logger.Info("plura exiting")
	return nil
}

func runCheck(cmd *cobra.Command, args []string) {
	cat, err := catalog.Load(args[0])
	if err == nil {
		err = cat.Validate()
	}
	if err != nil {
		fmt.Println(ui.FormatStatusFail(err.Error()))
		os.Exit(1)
	}

	fmt.Println(ui.FormatStatusOK(fmt.Sprintf("%s is valid", args[0])))
	fmt.Print(summarize(cat))
}

func runConfig(cmd *cobra.Command, args []string) {
	path := cfgFile
	if path == "" {
		p, err := config.ConfigPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error locating config: %v\n", err)
			os.Exit(1)
		}
		path = p
	}

	fmt.Printf("Configuration file: %s\n\n", path)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	out, err := encodeConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Current configuration:")
	fmt.Println()
	fmt.Print(out)
}

func runKeys(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	for _, b := range cfg.Keys.Bindings() {
		fmt.Printf("  %-9s %s\n", b.Action, formatKeys(b.Keys))
	}
}

// loadConfig reads the config named by --config, or the default one, and
// applies flag overrides
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadCatalog reads the configured catalog, falling back to the built-in
// sample when none is set
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Sample(), nil
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// openLogger opens the log file; the terminal belongs to the TUI
func openLogger(cfg *config.Config) (*log.Logger, func(), error) {
	path := cfg.Log.File
	if path == "" {
		p, err := config.LogPath()
		if err != nil {
			return nil, nil, err
		}
		path = p
	}

	f, err := logging.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(f, cfg.Log.Level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

func encodeConfig(cfg *config.Config) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// summarize lists item counts per view and category
func summarize(cat *catalog.Catalog) string {
	var b strings.Builder
	for _, v := range catalog.Views {
		cats := catalog.Categories(v)
		if len(cats) == 0 {
			continue
		}

		fmt.Fprintf(&b, "\n%s:\n", v.Label())
		for _, c := range cats {
			fmt.Fprintf(&b, "  %-20s %d\n", c.Label, len(cat.Items(v, c.ID)))
		}
	}
	fmt.Fprintf(&b, "\nTotal: %d items\n", cat.Count())
	return b.String()
}

func formatKeys(keys []string) string {
	out := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		out[i] = k
	}
	return strings.Join(out, ", ")
}

func getLongDescription() string {
	return ui.FormatASCIIHeader() + "\n\n" +
		"plura is a keyboard-first browser for movies, TV shows and anime.\n" +
		"Arrow keys move focus spatially between tabs, cards and buttons."
}
