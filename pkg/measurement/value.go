package measurement

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Cell texts read as a missing value, whatever the column.
var missingMarkers = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-1.#IND":  true,
	"-1.#QNAN": true,
	"-NaN":     true,
	"-nan":     true,
	"1.#IND":   true,
	"1.#QNAN":  true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

// IsMissing reports whether a cell holds a missing-value marker.
func IsMissing(cell string) bool {
	return missingMarkers[strings.TrimSpace(cell)]
}

// ParseNumber converts a numeric cell. Missing markers become NaN; any other non-numeric text is an error.
func ParseNumber(cell string) (float64, error) {
	if IsMissing(cell) {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0, errors.Errorf("%q is not a number", cell)
	}
	return v, nil
}

// CoerceNumber converts a numeric cell, turning anything that does not parse into NaN.
func CoerceNumber(cell string) float64 {
	v, err := ParseNumber(cell)
	if err != nil {
		return math.NaN()
	}
	return v
}
