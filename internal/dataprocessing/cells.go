package dataprocessing

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ethandillon/DreamJobRealityCheck/pkg/contracts/domain"
)

var occCodePattern = regexp.MustCompile(`^\d{2}-\d{4}$`)

// IsMissing reports whether a cell holds no value: empty, whitespace, or one
// of the sentinel markers.
func IsMissing(cell string, sentinels []string) bool {
	v := strings.TrimSpace(cell)
	if v == "" {
		return true
	}
	for _, s := range sentinels {
		if v == s {
			return true
		}
	}
	return false
}

// CleanText trims a text cell, mapping missing values to the empty string
func CleanText(cell string, sentinels []string) string {
	if IsMissing(cell, sentinels) {
		return ""
	}
	return strings.TrimSpace(cell)
}

// ParseNullableInt parses an integer cell. Thousands separators are ignored
// and integral floats such as "1234.0" are accepted; other floats are
// rounded. The second result is false when the cell cannot be parsed, in
// which case the value is null.
func ParseNullableInt(cell string) (domain.NullInt64, bool) {
	v := strings.ReplaceAll(strings.TrimSpace(cell), ",", "")
	if v == "" {
		return domain.NullInt64{}, false
	}

	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return domain.Int64(i), true
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return domain.NullInt64{}, false
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return domain.NullInt64{}, false
	}
	return domain.Int64(int64(math.Round(f))), true
}

// NormalizeOccCode renders an occupation code the same way regardless of
// whether the spreadsheet stored it as text or as a number.
// "15-1252", " 15-1252 ", "151252" and "151252.0" all become "15-1252".
func NormalizeOccCode(cell string) string {
	v := strings.TrimSpace(cell)
	if occCodePattern.MatchString(v) {
		return v
	}

	v = strings.TrimSuffix(v, ".0")
	if len(v) == 6 {
		if _, err := strconv.Atoi(v); err == nil {
			return v[:2] + "-" + v[2:]
		}
	}
	return v
}

// IsOccCode reports whether code has the DD-DDDD shape
func IsOccCode(code string) bool {
	return occCodePattern.MatchString(code)
}
