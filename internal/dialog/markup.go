package dialog

import "strings"

const escapeChars = "_[]()~`>#+-=|{}.!"

// EscapeMarkdown prefixes every MarkdownV2-reserved character with a
// backslash, unless the previous character already is one, so input
// that arrives pre-escaped is not escaped twice.
func EscapeMarkdown(text string) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/4)
	var prev rune
	for _, ch := range text {
		if strings.ContainsRune(escapeChars, ch) && prev != '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(ch)
		prev = ch
	}
	return b.String()
}

// buttonsPerRow picks the row width for a flat set of n buttons.
// Width 5 is the default; when that would strand a single button on
// the last row, widths 7 down to 4 are probed for one that does not.
func buttonsPerRow(n int) int {
	const defaultWidth = 5
	if n <= defaultWidth {
		return n
	}
	if n%defaultWidth != 1 {
		return defaultWidth
	}
	for width := 7; width >= 4; width-- {
		if n%width != 1 {
			return width
		}
	}
	return defaultWidth
}

// PackButtons lays out a flat button list into keyboard rows so that
// no row ends up with a single trailing button.
func PackButtons(buttons []Button) [][]Button {
	if len(buttons) == 0 {
		return nil
	}
	width := buttonsPerRow(len(buttons))
	rows := make([][]Button, 0, len(buttons)/width+1)
	for i := 0; i < len(buttons); i += width {
		end := i + width
		if end > len(buttons) {
			end = len(buttons)
		}
		rows = append(rows, buttons[i:end])
	}
	return rows
}
