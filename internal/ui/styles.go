package ui

import "charm.land/lipgloss/v2"

// Header styles
var (
	HeaderStyle      lipgloss.Style
	HeaderTitleStyle lipgloss.Style
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Message list styles
var (
	MessageMeStyle      lipgloss.Style
	MessageOtherStyle   lipgloss.Style
	MessageAuthorStyle  lipgloss.Style
	MessageTimeStyle    lipgloss.Style
	MessageFileStyle    lipgloss.Style
	DateDividerStyle    lipgloss.Style
	JumpAffordanceStyle lipgloss.Style
	EmptyListStyle      lipgloss.Style
)

// Composer styles
var (
	ComposerStyle        lipgloss.Style
	ComposerFocusedStyle lipgloss.Style
	ComposerDragStyle    lipgloss.Style
	NoticeStyle          lipgloss.Style
	PillStyle            lipgloss.Style
	PillImageStyle       lipgloss.Style
	SendHintStyle        lipgloss.Style
	PickerStyle          lipgloss.Style
	PickerTitleStyle     lipgloss.Style
)

// Markdown styles
var (
	MarkdownBoldStyle       lipgloss.Style
	MarkdownInlineCodeStyle lipgloss.Style
	MarkdownLinkStyle       lipgloss.Style
	MarkdownHeadingStyle    lipgloss.Style
	MarkdownListBulletStyle lipgloss.Style
	MarkdownQuoteStyle      lipgloss.Style
)

func buildStyles() {
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	MessageMeStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMe).
		Foreground(ColorText).
		Padding(0, 1)

	MessageOtherStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorOther).
		Foreground(ColorText).
		Padding(0, 1)

	MessageAuthorStyle = lipgloss.NewStyle().
		Foreground(ColorOther).
		Bold(true)

	MessageTimeStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	MessageFileStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	DateDividerStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	JumpAffordanceStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorInfo).
		Bold(true).
		Padding(0, 1)

	EmptyListStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	ComposerStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	ComposerFocusedStyle = ComposerStyle.
		BorderForeground(ColorBorderFocus)

	ComposerDragStyle = ComposerStyle.
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(ColorWarning)

	NoticeStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorError).
		Padding(0, 1)

	PillStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(lipgloss.Color(currentTheme.Border)).
		Padding(0, 1)

	PillImageStyle = PillStyle.
		Foreground(ColorMe)

	SendHintStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	PickerStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 1)

	PickerTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	MarkdownBoldStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	MarkdownInlineCodeStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	MarkdownLinkStyle = lipgloss.NewStyle().
		Foreground(ColorInfo).
		Underline(true)

	MarkdownHeadingStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	MarkdownListBulletStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary)

	MarkdownQuoteStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		BorderLeft(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
}
