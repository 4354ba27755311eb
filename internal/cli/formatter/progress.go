package formatter

import "strings"

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderShare renders a proportional bar like ████░░░░ for a day's share
// of the total work time. share is clamped to [0, 1].
func RenderShare(share float64, width int) string {
	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(share * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return StyleBlue.Render(bar)
}
