package ui

// Layout constants
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// InputPaddingWidth is the horizontal padding inside the composer (Padding(0, 1))
	InputPaddingWidth = 2

	// DefaultWrapWidth is used when the viewport width is unknown
	DefaultWrapWidth = 80

	// BubbleWidthRatio caps a message bubble at this fraction of the list width
	BubbleWidthRatio = 0.75

	// MinTerminalWidth and MinTerminalHeight clamp layout calculations
	MinTerminalWidth  = 40
	MinTerminalHeight = 12
)

// Glyphs used in previews and the message list
const (
	ImageGlyph = "🖼"
	FileGlyph  = "📎"
	JumpLabel  = "↓ new messages"
)
