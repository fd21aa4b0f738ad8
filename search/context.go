package search

import "strings"

// findContext locates the first line of content containing matched text and
// collects whole lines of surrounding context, up to window characters in
// each direction. A blank line, or a line that would push the running total
// past the window, stops the walk; partial lines are never included.
//
// Multi-line candidates never match a single line, so they get empty context.
func findContext(content, matched string, window int) (before, after string) {
	lines := strings.Split(content, "\n")
	needle := strings.TrimSpace(matched)

	matchIndex := -1
	for i, line := range lines {
		if strings.Contains(strings.TrimSpace(line), needle) {
			matchIndex = i
			break
		}
	}
	if matchIndex == -1 {
		return "", ""
	}

	count := 0
	for i := matchIndex - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" || count+len(line) > window {
			break
		}
		before = line + "\n" + before
		count += len(line)
	}

	count = 0
	for i := matchIndex + 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || count+len(line) > window {
			break
		}
		after += line + "\n"
		count += len(line)
	}

	return strings.TrimSpace(before), strings.TrimSpace(after)
}
