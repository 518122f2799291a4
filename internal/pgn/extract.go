// Package pgn locates and parses a PGN game record embedded in noisy text.
package pgn

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrNoRecord means none of the location strategies found a PGN block.
	ErrNoRecord = errors.New("no game record found in input")
	// ErrUnparsable means a block was located but could not be parsed.
	ErrUnparsable = errors.New("game record could not be parsed")
)

const markerToken = "PGN:"

var moveStartRe = regexp.MustCompile(`^\s*\d+\.`)

// Extract pulls a PGN block out of a possibly noisy file. Strategies are
// tried in order, first non-empty candidate wins:
//
//  1. everything after a line that equals or starts with "PGN:"
//  2. from the first tag-pair line "[...]" to the end
//  3. from the first line starting with a move number ("1.") to the end
func Extract(raw string) (string, error) {
	lines := strings.Split(raw, "\n")

	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), markerToken) {
			block := strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
			if block != "" {
				return block, nil
			}
		}
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") && strings.Contains(trimmed, "]") {
			block := strings.TrimSpace(strings.Join(lines[i:], "\n"))
			if block != "" {
				return block, nil
			}
		}
	}

	for i, line := range lines {
		if moveStartRe.MatchString(line) {
			block := strings.TrimSpace(strings.Join(lines[i:], "\n"))
			if block != "" {
				return block, nil
			}
		}
	}

	return "", ErrNoRecord
}
