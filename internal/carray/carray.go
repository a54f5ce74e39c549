// Package carray reads and writes uint8_t pixel arrays embedded in C source
// files, the container format LVGL uses for compiled-in image assets.
package carray

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoArray is returned when the source text contains no recognizable
// uint8_t array declaration.
var ErrNoArray = errors.New("no uint8_t array declaration found")

// declPattern matches the first `uint8_t <name>[] = { <body> }` declaration.
// The body match is a flat brace span: a body containing `}` is out of
// contract, as are any declarations after the first.
var declPattern = regexp.MustCompile(`(?s)uint8_t\s+([A-Za-z0-9_]+)\[\]\s*=\s*\{([^}]+)\}`)

var hexPattern = regexp.MustCompile(`0x[0-9a-fA-F]{2}`)

// Declaration is the byte array extracted from a C source file.
type Declaration struct {
	Name  string // identifier of the array variable
	Bytes []byte // parsed hex literals, in order of appearance
}

// Extract finds the first uint8_t array declaration in content and parses
// every two-digit hex literal in its body. It does not validate the byte
// count against any pixel geometry.
func Extract(content string) (*Declaration, error) {
	m := declPattern.FindStringSubmatch(content)
	if m == nil {
		return nil, ErrNoArray
	}

	lits := hexPattern.FindAllString(m[2], -1)
	data := make([]byte, len(lits))
	for i, lit := range lits {
		v, err := strconv.ParseUint(lit[2:], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("parsing literal %s: %w", lit, err)
		}
		data[i] = byte(v)
	}

	return &Declaration{Name: m[1], Bytes: data}, nil
}

// Render formats pixel bytes as lowercase two-digit hex literals, wrapped at
// width pixels (width*4 literals) per line. Each line is indented two spaces
// and ends with a trailing comma. The formatting is stable: rendering the
// same bytes with the same width always yields identical text.
func Render(pixels []byte, width int) string {
	rowBytes := width * 4
	lines := make([]string, 0, (len(pixels)+rowBytes-1)/rowBytes)

	for off := 0; off < len(pixels); off += rowBytes {
		end := min(off+rowBytes, len(pixels))
		parts := make([]string, 0, end-off)
		for _, v := range pixels[off:end] {
			parts = append(parts, fmt.Sprintf("0x%02x", v))
		}
		lines = append(lines, "  "+strings.Join(parts, ", ")+",")
	}

	return strings.Join(lines, "\n")
}

// Splice substitutes body for the body of the first uint8_t array declaration
// in content, leaving everything outside the braces byte-for-byte unchanged.
// Later matching declarations are not touched.
func Splice(content, body string) (string, error) {
	loc := declPattern.FindStringSubmatchIndex(content)
	if loc == nil {
		return "", ErrNoArray
	}

	// loc[4]:loc[5] is the span of the body submatch.
	return content[:loc[4]] + "\n" + body + "\n" + content[loc[5]:], nil
}
