package contour

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileSuffix is appended to an asset stem to name its contour file.
const FileSuffix = "_contour"

// ErrMalformedPair is wrapped by every error caused by a contour line that is
// not exactly two numeric fields separated by ';'.
var ErrMalformedPair = errors.New("malformed coordinate pair")

// ContourPath returns the contour file path for an asset stem,
// e.g. ContourPath("data", "rocket") == "data/rocket_contour".
func ContourPath(dir, stem string) string {
	return filepath.Join(dir, stem+FileSuffix)
}

// LoadPairs reads a contour file and returns its coordinate pairs in file order.
//
// Parameters:
//   - path: Path to the contour file, e.g., "rocket_contour"
//
// Returns:
//   - []Pair: The parsed pairs (empty for a file holding only blank lines)
//   - error: I/O error or a wrapped ErrMalformedPair
//
// Example:
//
//	pairs, err := LoadPairs(ContourPath(".", "rocket"))
//	if err != nil {
//	    log.Fatalf("Failed to load contour: %v", err)
//	}
func LoadPairs(path string) ([]Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read contour file '%s': %w", path, err)
	}

	pairs, err := ParsePairs(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse contour file '%s': %w", path, err)
	}
	return pairs, nil
}

// ParsePairs parses contour file content: one "x;y" pair per line.
//
// The final segment after the last newline is always dropped, even when the
// file does not end with a newline. An extra blank line is malformed, except
// for content that is a single blank line ("\n"), which holds no pairs.
// Fields are trimmed before numeric conversion, so CRLF files parse the same
// as LF files.
func ParsePairs(content string) ([]Pair, error) {
	lines := strings.Split(content, "\n")
	lines = lines[:len(lines)-1]
	if len(lines) == 1 && strings.TrimSpace(lines[0]) == "" {
		return []Pair{}, nil
	}

	pairs := make([]Pair, 0, len(lines))
	for i, line := range lines {
		pair, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

func parseLine(line string) (Pair, error) {
	fields := strings.Split(line, ";")
	if len(fields) != 2 {
		return Pair{}, fmt.Errorf("%w: expected 2 fields, got %d in %q", ErrMalformedPair, len(fields), line)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return Pair{}, fmt.Errorf("%w: invalid x %q: %v", ErrMalformedPair, fields[0], err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return Pair{}, fmt.Errorf("%w: invalid y %q: %v", ErrMalformedPair, fields[1], err)
	}
	return Pair{X: x, Y: y}, nil
}
