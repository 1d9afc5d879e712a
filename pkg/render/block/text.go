package block

const (
	fontHeightRatio = 0.6
	fontWidthRatio  = 0.85
	fontCharWidth   = 0.55
	fontSizeMin     = 6.0
	fontSizeMax     = 20.0
)

// fontSizeFor fits a label into the available box, constrained by both the
// box height and the width the text needs at a given character count.
func fontSizeFor(availWidth, availHeight float64, textLen int) float64 {
	n := max(1, textLen)
	byHeight := availHeight * fontHeightRatio
	byWidth := (availWidth * fontWidthRatio) / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, min(byHeight, byWidth)))
}

// truncateLabel shortens a label that cannot fit the available width at the
// chosen font size, appending ".." when characters are dropped.
func truncateLabel(label string, availWidth, fontSize float64) string {
	charWidth := fontSize * fontCharWidth
	maxChars := int(availWidth * fontWidthRatio / charWidth)
	if maxChars < 3 {
		maxChars = 3
	}

	runes := []rune(label)
	if len(runes) <= maxChars {
		return label
	}
	return string(runes[:maxChars-2]) + ".."
}
