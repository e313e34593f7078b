package pmml

import (
	"math"
	"strconv"

	"github.com/YuminosukeSato/lgbmpmml/pkg/errors"
)

// maxPlainIntegral bounds the integral values printed without exponent.
// strconv switches 'g' formatting to exponent form at 1e21.
const maxPlainIntegral = 1e21

// FormatValue returns the canonical text for v: the shortest decimal string
// that parses back to exactly v. Integral values print without fraction or
// exponent ("10", not "10.0" or "1e+01"); non-finite values use the XML
// Schema double spellings NaN, INF and -INF.
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "INF"
	case math.IsInf(v, -1):
		return "-INF"
	}
	if v == math.Trunc(v) && math.Abs(v) < maxPlainIntegral {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ParseValue is the inverse of FormatValue. It also accepts the inf/nan
// spellings LightGBM writes.
func ParseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse value %q", s)
	}
	return v, nil
}
