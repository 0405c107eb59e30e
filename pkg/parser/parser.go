package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ccollicutt/velplot/pkg/property"
)

// maxMalformedLines caps the line numbers kept in an Inventory.
const maxMalformedLines = 10

var keyDecoration = strings.NewReplacer(`"`, "", ":", "")

// CleanKey strips quote and colon characters from a key token.
func CleanKey(token string) string {
	return keyDecoration.Replace(token)
}

// Parse extracts the values of the requested properties from lines.
//
// Every line must split into exactly two whitespace-separated tokens, whether
// or not its key was requested. Values are only parsed for requested keys.
// The first failure aborts the parse and is returned as a *LineError.
func Parse(lines []string, properties property.Set) (*Samples, error) {
	names := properties.Names()
	samples := &Samples{
		Properties: names,
		Values:     make(map[property.Name][]float64, len(names)),
	}
	for _, n := range names {
		samples.Values[n] = []float64{}
	}

	for i, line := range lines {
		key, value, err := splitLine(line)
		if err != nil {
			return nil, &LineError{Line: i + 1, Text: line, Err: err}
		}

		name := property.Name(CleanKey(key))
		if !properties.Contains(name) {
			continue
		}

		v, err := ParseValue(value)
		if err != nil {
			return nil, &LineError{Line: i + 1, Text: line, Err: err}
		}
		samples.Values[name] = append(samples.Values[name], v)
	}

	return samples, nil
}

// ParseValue reads a decimal value token. Underscores are allowed between
// digits. Hexadecimal, NaN and infinite values are rejected with ErrValueParse.
func ParseValue(token string) (float64, error) {
	digits := strings.TrimLeft(token, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, fmt.Errorf("%w: hexadecimal value %q", ErrValueParse, token)
	}

	cleaned, ok := stripDigitSeparators(token)
	if !ok {
		return 0, fmt.Errorf("%w: misplaced underscore in %q", ErrValueParse, token)
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrValueParse, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: non-finite value %q", ErrValueParse, token)
	}
	return v, nil
}

// stripDigitSeparators removes underscores that sit between two digits.
func stripDigitSeparators(s string) (string, bool) {
	if !strings.Contains(s, "_") {
		return s, true
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// TakeInventory tallies the keys a log contains. Malformed lines are counted, not fatal.
func TakeInventory(lines []string) *Inventory {
	inv := &Inventory{Lines: len(lines)}
	index := make(map[string]int)

	for i, line := range lines {
		key, _, err := splitLine(line)
		if err != nil {
			inv.Malformed++
			if len(inv.MalformedLines) < maxMalformedLines {
				inv.MalformedLines = append(inv.MalformedLines, i+1)
			}
			continue
		}

		key = CleanKey(key)
		pos, ok := index[key]
		if !ok {
			pos = len(inv.Keys)
			index[key] = pos
			inv.Keys = append(inv.Keys, KeyCount{Key: key, Known: property.Name(key).Valid()})
		}
		inv.Keys[pos].Count++
	}

	return inv
}

func splitLine(line string) (key, value string, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", "", fmt.Errorf("expected 2 whitespace-separated tokens, got %d", len(fields))
	}
	return fields[0], fields[1], nil
}
