// Package distribution holds the weighted value distributions that drive
// column generation. Distribution data ships as .dst text files embedded in
// the binary; each file is parsed once into parallel value vectors and
// cumulative-weight vectors and shared read-only for the life of the process.
package distribution

import (
	"embed"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

//go:embed data/*.dst
var dataFiles embed.FS

// ParseError reports a malformed .dst line.
type ParseError struct {
	File   string
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Reason)
}

// parsedLine is one data line: value fields left of the colon, weight fields
// right of it.
type parsedLine struct {
	values  []string
	weights []string
}

// loadDistributionFile reads and parses an embedded .dst file. Files are
// Latin-1 encoded; blank lines and lines starting with "--" are skipped.
func loadDistributionFile(filename string) ([]parsedLine, error) {
	raw, err := dataFiles.ReadFile("data/" + filename)
	if err != nil {
		return nil, fmt.Errorf("reading distribution file %s: %w", filename, err)
	}

	content, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding distribution file %s: %w", filename, err)
	}

	var lines []parsedLine
	for i, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}

		parts := strings.Split(trimmed, ":")
		if len(parts) != 2 {
			return nil, &ParseError{
				File:   filename,
				Line:   i + 1,
				Reason: fmt.Sprintf("expected 2 colon-separated parts, got %d", len(parts)),
			}
		}

		var values []string
		if strings.TrimSpace(parts[0]) == "" {
			values = []string{""}
		} else {
			values = splitEscapedCommas(parts[0])
		}
		weights := splitEscapedCommas(parts[1])

		lines = append(lines, parsedLine{values: values, weights: weights})
	}

	return lines, nil
}

// splitEscapedCommas splits on commas, honoring the \, and \\ escapes.
func splitEscapedCommas(input string) []string {
	var values []string
	var current strings.Builder

	runes := []rune(strings.TrimSpace(input))
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '\\' && i+1 < len(runes) && runes[i+1] == ',':
			current.WriteByte(',')
			i++
		case ch == '\\' && i+1 < len(runes) && runes[i+1] == '\\':
			current.WriteByte('\\')
			i++
		case ch == ',':
			values = append(values, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	if current.Len() > 0 {
		values = append(values, strings.TrimSpace(current.String()))
	}

	return values
}
