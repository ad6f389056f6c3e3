package validation

import (
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "AE"

var ErrInvalidMobile = errors.New(MsgMobileInvalid)

// LineType tells advisors whether to call or message a lead
type LineType string

const (
	LineMobile    LineType = "mobile"
	LineFixed     LineType = "fixed_line"
	LineUndecided LineType = "unknown"
)

// MobileInfo is the presentation of an accepted number for advisors
type MobileInfo struct {
	E164          string   `json:"e164"`
	International string   `json:"international"`
	LineType      LineType `json:"line_type"`
}

// CanonicalMobile converts an accepted UAE number to E.164 (+971...).
func CanonicalMobile(mobile string) (string, error) {
	if ValidateMobile(mobile) != nil {
		return "", ErrInvalidMobile
	}

	n := NormalizeMobile(mobile)
	switch {
	case strings.HasPrefix(n, "+971"):
		n = strings.TrimPrefix(n, "+971")
	case strings.HasPrefix(n, "00971"):
		n = strings.TrimPrefix(n, "00971")
	case strings.HasPrefix(n, "0"):
		n = strings.TrimPrefix(n, "0")
	}
	return "+971" + n, nil
}

// DescribeMobile returns the E.164, international display form and line type of an
// accepted number. When the numbering metadata does not know the range, the E.164 form
// is used for display.
func DescribeMobile(mobile string) (MobileInfo, error) {
	e164, err := CanonicalMobile(mobile)
	if err != nil {
		return MobileInfo{}, err
	}

	info := MobileInfo{E164: e164, International: e164, LineType: LineUndecided}

	num, err := phonenumbers.Parse(e164, defaultRegion)
	if err != nil {
		return info, nil
	}
	info.International = phonenumbers.Format(num, phonenumbers.INTERNATIONAL)

	switch phonenumbers.GetNumberType(num) {
	case phonenumbers.MOBILE:
		info.LineType = LineMobile
	case phonenumbers.FIXED_LINE:
		info.LineType = LineFixed
	}
	return info, nil
}
