package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/chatkit/internal/app"
	"github.com/zhubert/chatkit/internal/clipboard"
	"github.com/zhubert/chatkit/internal/config"
	"github.com/zhubert/chatkit/internal/logger"
	"github.com/zhubert/chatkit/internal/ui"
)

var (
	debugMode             bool
	quietMode             bool
	configPath            string
	version, commit, date string
)

// Rule flags override the config file for one run.
var (
	acceptFlag      string
	maxFilesFlag    int
	maxSizeFlag     float64
	noFilesFlag     bool
	placeholderFlag string
	themeFlag       string
	sendersFlag     []string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "chatkit",
	Short: "Terminal chat composer with attachments and a live message list",
	Long: `chatkit is a terminal chat view: a message list that follows new messages,
and a composer that takes text plus files from the picker, bracketed paste,
or paths dropped onto the terminal.

Pass two or more --senders to hold a conversation with yourself; tab switches
who is typing.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.chatkit/config.json)")

	rootCmd.Flags().StringVar(&acceptFlag, "accept", "", `Allowed file types, e.g. "image/*, .pdf"`)
	rootCmd.Flags().IntVar(&maxFilesFlag, "max-files", 0, "Maximum pending attachments (0 for unlimited)")
	rootCmd.Flags().Float64Var(&maxSizeFlag, "max-size-mb", 0, "Maximum size per file in MB (0 for unlimited)")
	rootCmd.Flags().BoolVar(&noFilesFlag, "no-files", false, "Disable attachments")
	rootCmd.Flags().StringVar(&placeholderFlag, "placeholder", "", "Placeholder shown in an empty composer")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "UI theme (dark-purple, nord, dracula, gruvbox, light)")
	rootCmd.Flags().StringSliceVar(&sendersFlag, "senders", []string{"You"}, "Sender names; tab cycles between them")
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
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("chatkit %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("chatkit %s\n", version)
}

// loadConfig reads --config, or the default file when it is unset.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// applyFlags lets explicitly set flags win over the config file.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("accept") || flags.Changed("max-files") || flags.Changed("max-size-mb") {
		opts := cfg.ComposerOptions()
		types, maxFiles, maxMB := opts.AllowedTypes, opts.MaxFiles, opts.MaxFileSizeMB
		if flags.Changed("accept") {
			types = acceptFlag
		}
		if flags.Changed("max-files") {
			maxFiles = maxFilesFlag
		}
		if flags.Changed("max-size-mb") {
			maxMB = maxSizeFlag
		}
		cfg.SetLimits(types, maxFiles, maxMB)
	}
	if flags.Changed("no-files") {
		cfg.SetAllowFiles(!noFilesFlag)
	}
	if flags.Changed("placeholder") {
		cfg.SetPlaceholder(placeholderFlag)
	}
	if flags.Changed("theme") {
		cfg.SetTheme(themeFlag)
	}
	return cfg.Validate()
}

// appOptions builds the host options: one seat per sender, all sharing the
// configured rules.
func appOptions(cfg *config.Config, senders []string) app.Options {
	opts := app.Options{
		ScrollThresholdLines: cfg.GetScrollThresholdLines(),
		DesktopNotifications: cfg.GetDesktopNotifications(),
		Clipboard:            clipboard.NewReader(nil),
	}
	for _, name := range senders {
		if name == "" {
			continue
		}
		opts.Seats = append(opts.Seats, app.Seat{Name: name, Composer: cfg.ComposerOptions()})
	}
	return opts
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	if err := ui.SetTheme(ui.ThemeName(cfg.GetTheme())); err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	if err := clipboard.Init(); err != nil {
		// Image paste is unavailable; text paste and drops still work.
		logger.Warn("clipboard unavailable: %v", err)
	}

	// Create and run the app
	m := app.New(appOptions(cfg, sendersFlag))
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
