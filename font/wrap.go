package font

import "strings"

// wrapLines wraps text at word boundaries so each line fits maxWidth per
// widthOf. Explicit newlines force breaks. Words wider than maxWidth are
// split mid-word so no line ever exceeds the limit
func wrapLines(text string, maxWidth int, widthOf func(string) int) []string {
	if maxWidth <= 0 {
		// Degenerate constraint, nothing can fit
		return strings.Split(text, "\n")
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := ""
		for _, word := range words {
			// Split words that cannot fit on a line by themselves
			for widthOf(word) > maxWidth {
				runes := []rune(word)
				n := len(runes)
				for n > 1 && widthOf(string(runes[:n])) > maxWidth {
					n--
				}
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				lines = append(lines, string(runes[:n]))
				word = string(runes[n:])
			}
			if word == "" {
				continue
			}

			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if line != "" && widthOf(candidate) > maxWidth {
				lines = append(lines, line)
				line = word
			} else {
				line = candidate
			}
		}
		lines = append(lines, line)
	}
	return lines
}
