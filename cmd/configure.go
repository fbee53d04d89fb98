package cmd

import (
	"fmt"
	"strconv"
	"strings"

	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/chatkit/internal/config"
	"github.com/zhubert/chatkit/internal/ui"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Edit attachment rules and display settings",
	Long: `Opens a form over the config file and saves the result.

Limits left at 0 are unlimited. Allowed types take MIME patterns such as
"image/*" and extensions such as ".pdf", separated by commas.`,
	RunE: runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)
}

// settings is the editable form state. Numbers are kept as text while the
// form is open.
type settings struct {
	allowFiles    bool
	allowedTypes  string
	maxFiles      string
	maxFileSizeMB string
	placeholder   string
	theme         string
	notifications bool
}

func settingsFrom(cfg *config.Config) settings {
	opts := cfg.ComposerOptions()
	theme := cfg.GetTheme()
	if theme == "" {
		theme = string(ui.DefaultTheme)
	}
	return settings{
		allowFiles:    opts.AllowFiles,
		allowedTypes:  opts.AllowedTypes,
		maxFiles:      strconv.Itoa(opts.MaxFiles),
		maxFileSizeMB: strconv.FormatFloat(opts.MaxFileSizeMB, 'f', -1, 64),
		placeholder:   cfg.GetPlaceholder(),
		theme:         theme,
		notifications: cfg.GetDesktopNotifications(),
	}
}

// apply copies the form state into cfg.
func (s settings) apply(cfg *config.Config) error {
	maxFiles, err := parseCount(s.maxFiles)
	if err != nil {
		return fmt.Errorf("max files: %w", err)
	}
	maxMB, err := parseMegabytes(s.maxFileSizeMB)
	if err != nil {
		return fmt.Errorf("max file size: %w", err)
	}
	cfg.SetAllowFiles(s.allowFiles)
	cfg.SetLimits(strings.TrimSpace(s.allowedTypes), maxFiles, maxMB)
	cfg.SetPlaceholder(s.placeholder)
	cfg.SetTheme(s.theme)
	cfg.SetDesktopNotifications(s.notifications)
	return cfg.Validate()
}

func parseCount(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", v)
	}
	if n < 0 {
		return 0, fmt.Errorf("must not be negative")
	}
	return n, nil
}

func parseMegabytes(v string) (float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", v)
	}
	if n < 0 {
		return 0, fmt.Errorf("must not be negative")
	}
	return n, nil
}

func validateCount(v string) error {
	_, err := parseCount(v)
	return err
}

func validateMegabytes(v string) error {
	_, err := parseMegabytes(v)
	return err
}

// formTheme matches the form to the active UI palette.
func formTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)
		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ui.ColorPrimary)
		t.Focused.Title = lipgloss.NewStyle().Foreground(ui.ColorText).Bold(true)
		t.Focused.Description = lipgloss.NewStyle().Foreground(ui.ColorTextMuted).Italic(true)
		t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(ui.ColorWarning).SetString(" *")
		t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(ui.ColorWarning)
		t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(ui.ColorPrimary).SetString("> ")
		t.Focused.FocusedButton = lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(1).
			Foreground(ui.ColorTextInverse).
			Background(ui.ColorPrimary)
		t.Blurred = t.Focused
		t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
		return t
	})
}

func (s *settings) form() *huh.Form {
	themes := ui.ThemeNames()
	themeOptions := make([]huh.Option[string], len(themes))
	for i, name := range themes {
		themeOptions[i] = huh.NewOption(ui.BuiltinThemes[name].Name, string(name))
	}

	attachments := huh.NewGroup(
		huh.NewConfirm().
			Title("Allow attachments").
			Value(&s.allowFiles),
		huh.NewInput().
			Title("Allowed types").
			Description(`Comma-separated, e.g. "image/*, .pdf". Empty allows all.`).
			Value(&s.allowedTypes),
		huh.NewInput().
			Title("Max files").
			Description("0 for unlimited").
			Validate(validateCount).
			Value(&s.maxFiles),
		huh.NewInput().
			Title("Max file size (MB)").
			Description("0 for unlimited").
			Validate(validateMegabytes).
			Value(&s.maxFileSizeMB),
	)

	display := huh.NewGroup(
		huh.NewInput().
			Title("Placeholder").
			Value(&s.placeholder),
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&s.theme),
		huh.NewConfirm().
			Title("Desktop notifications").
			Description("Notify rejected files while the terminal is in the background").
			Value(&s.notifications),
	)

	return huh.NewForm(attachments, display).WithTheme(formTheme())
}

func runConfigure(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := ui.SetTheme(ui.ThemeName(cfg.GetTheme())); err != nil {
		return err
	}

	s := settingsFrom(cfg)
	if err := s.form().Run(); err != nil {
		if err == huh.ErrUserAborted {
			return nil
		}
		return err
	}
	if err := s.apply(cfg); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", cfg.Path())
	return nil
}
