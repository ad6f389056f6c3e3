package validation

import (
	"regexp"
	"strings"
)

// ErrorKind classifies why a contact field was rejected
type ErrorKind string

const (
	KindRequired      ErrorKind = "required"
	KindInvalidFormat ErrorKind = "invalid_format"
)

// Messages shown inline next to the form fields
const (
	MsgEmailRequired  = "Email is required"
	MsgEmailInvalid   = "Enter a valid professional email"
	MsgMobileRequired = "Mobile number is required"
	MsgMobileInvalid  = "Enter a valid UAE mobile (+971...)"
)

// FieldError is a field-local, recoverable validation failure
type FieldError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Message
}

// Regex patterns
var (
	// local@domain.tld, no whitespace and a single @. Whitespace includes the
	// Unicode space separators and the BOM, as browsers treat them.
	emailRegex = regexp.MustCompile(`^[^\s\x0B\p{Z}\x{FEFF}@]+@[^\s\x0B\p{Z}\x{FEFF}@]+\.[^\s\x0B\p{Z}\x{FEFF}@]+$`)

	// UAE numbers: optional +971 / 00971 / 0 prefix, operator code 50-58 or area code, 7 digits
	uaeMobileRegex = regexp.MustCompile(`^(?:\+971|00971|0)?(?:50|51|52|54|55|56|58|2|3|4|6|7|9)\d{7}$`)

	mobileSeparatorRegex = regexp.MustCompile(`[\s\x0B\p{Z}\x{FEFF}-]+`)
	blankRegex           = regexp.MustCompile(`^[\s\x0B\p{Z}\x{FEFF}]*$`)
	nonDigitRegex        = regexp.MustCompile(`\D`)
	mobileGroupsRegex    = regexp.MustCompile(`^(\d{0,3})(\d{0,2})(\d{0,3})(\d{0,4})`)
)

// ValidateEmail returns nil for a syntactically valid email address.
// No deliverability or domain check is made.
func ValidateEmail(email string) *FieldError {
	if email == "" {
		return &FieldError{Kind: KindRequired, Message: MsgEmailRequired}
	}
	if !emailRegex.MatchString(email) {
		return &FieldError{Kind: KindInvalidFormat, Message: MsgEmailInvalid}
	}
	return nil
}

// ValidateMobile returns nil when the number, once normalized, is a UAE mobile or landline
func ValidateMobile(mobile string) *FieldError {
	if blankRegex.MatchString(mobile) {
		return &FieldError{Kind: KindRequired, Message: MsgMobileRequired}
	}
	if !uaeMobileRegex.MatchString(NormalizeMobile(mobile)) {
		return &FieldError{Kind: KindInvalidFormat, Message: MsgMobileInvalid}
	}
	return nil
}

// NormalizeMobile strips whitespace (Unicode spaces included) and hyphens
func NormalizeMobile(mobile string) string {
	return mobileSeparatorRegex.ReplaceAllString(mobile, "")
}

// FormatMobile is the as-you-type formatter for the mobile field. Input that starts
// with "+" or "971" is regrouped as "+971 5X XXX XXXX"; anything else is returned as typed.
// The result is cosmetic; ValidateMobile normalizes on its own.
func FormatMobile(value string) string {
	if !strings.HasPrefix(value, "+") && !strings.HasPrefix(value, "971") {
		return value
	}

	digits := nonDigitRegex.ReplaceAllString(value, "")
	groups := mobileGroupsRegex.FindStringSubmatch(digits)
	if groups == nil {
		return value
	}

	if groups[2] == "" {
		return "+" + groups[1]
	}
	return strings.TrimRight("+"+strings.Join(groups[1:], " "), " ")
}
