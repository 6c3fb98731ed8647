package core

// Color is a lipgloss colour value for a screen cell: an ANSI 256 code
// ("245") or a hex triplet ("#0ea5e9"). The empty string is the terminal
// default foreground.
type Color string

// Named colours used by the HUD and the projection.
const (
	ColorDefault Color = ""
	ColorGray    Color = "245"
	ColorDim     Color = "238"
	ColorWhite   Color = "15"
	ColorRed     Color = "#ef4444"
	ColorGreen   Color = "#10b981"
	ColorYellow  Color = "#fbbf24"
	ColorCyan    Color = "#0ea5e9"
	ColorMagenta Color = "#d946ef"
	ColorPurple  Color = "#a855f7"
)
