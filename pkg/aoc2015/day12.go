package aoc2015

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

// sumJSON adds every number in v. With skipRed set, objects holding the
// value "red" count as zero along with everything inside them.
func sumJSON(v any, skipRed bool) int {
	switch v := v.(type) {
	case float64:
		return int(v)
	case []any:
		total := 0
		for _, e := range v {
			total += sumJSON(e, skipRed)
		}
		return total
	case map[string]any:
		total := 0
		for _, e := range v {
			if s, ok := e.(string); ok && skipRed && s == "red" {
				return 0
			}
			total += sumJSON(e, skipRed)
		}
		return total
	}
	return 0
}

func sumDocument(input string, skipRed bool) (string, error) {
	var doc any
	if err := json.Unmarshal([]byte(strings.TrimSpace(input)), &doc); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "parse document")
	}
	return puzzle.Int(sumJSON(doc, skipRed)), nil
}

func sumNumbers(_ context.Context, input string) (string, error) {
	return sumDocument(input, false)
}

func sumNumbersNotRed(_ context.Context, input string) (string, error) {
	return sumDocument(input, true)
}
