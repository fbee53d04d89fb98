package ui

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/chatkit/internal/attach"
)

// Header is the top bar: the title on the left and a summary of the
// attachment rules on the right.
type Header struct {
	width   int
	title   string
	summary string
}

// NewHeader creates a header with the given title
func NewHeader(title string) *Header {
	return &Header{title: title}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetTitle replaces the title
func (h *Header) SetTitle(title string) {
	h.title = title
}

// SetRules summarizes the composer's attachment rules on the right side.
func (h *Header) SetRules(allowFiles bool, rules attach.RuleSet) {
	h.summary = RulesSummary(allowFiles, rules)
}

// RulesSummary describes attachment rules in a few words, e.g.
// "≤3 files · ≤5 MB · image/*, .pdf".
func RulesSummary(allowFiles bool, rules attach.RuleSet) string {
	if !allowFiles {
		return "attachments off"
	}
	var parts []string
	if rules.MaxFiles > 0 {
		parts = append(parts, fmt.Sprintf("≤%d files", rules.MaxFiles))
	}
	if rules.MaxFileSizeMB > 0 {
		parts = append(parts, "≤"+strconv.FormatFloat(rules.MaxFileSizeMB, 'f', -1, 64)+" MB")
	}
	types := "any type"
	if len(rules.Patterns) > 0 {
		types = strings.Join(rules.Patterns, ", ")
	}
	parts = append(parts, types)
	return strings.Join(parts, " · ")
}

// View renders the header
func (h *Header) View() string {
	left := " " + h.title
	right := ""
	if h.summary != "" {
		right = h.summary + " "
	}

	padding := max(0, h.width-runewidth.StringWidth(left)-runewidth.StringWidth(right))
	content := left + strings.Repeat(" ", padding) + right
	if h.width > 0 {
		content = runewidth.Truncate(content, h.width, "…")
	}
	return h.renderGradient(content, len([]rune(left)))
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders content over a background fading from the theme's
// primary color to its background. The first titleLen runes are bold.
func (h *Header) renderGradient(content string, titleLen int) string {
	if content == "" {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)
		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Bold(i < titleLen)
		if i < titleLen {
			style = style.Foreground(textColor)
		} else {
			style = style.Foreground(mutedColor)
		}
		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
