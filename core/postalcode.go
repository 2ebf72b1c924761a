package core

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	// PostalCodeLength is the number of digits in a brazilian postal code (CEP).
	PostalCodeLength = 8
	// FormattedPostalCodeLength is the length of a postal code including the separator, e.g. "12345-678".
	FormattedPostalCodeLength = PostalCodeLength + 1

	postalCodeSeparator = "-"
	postalCodePrefixLen = 5
)

var nonDigits = regexp.MustCompile(`\D`)

// PostalCode is a brazilian postal code (CEP) containing exactly 8 digits.
type PostalCode struct {
	digits string
}

// StripNonDigits removes every character that is not an ASCII digit.
func StripNonDigits(value string) string {
	return nonDigits.ReplaceAllLiteralString(value, "")
}

// ParsePostalCode parses a postal code from any string. All non-digit characters are ignored, so
// "01310-100", "01310100" and "01.310-100" all parse to the same postal code.
func ParsePostalCode(value string) (PostalCode, error) {
	digits := StripNonDigits(value)
	if len(digits) == 0 {
		return PostalCode{}, errors.Join(ErrInvalidPostalCode, errors.New("postal code is empty"))
	}
	if len(digits) != PostalCodeLength {
		return PostalCode{}, errors.Join(
			ErrInvalidPostalCode,
			fmt.Errorf("postal code %q should contain %d digits, not %d", value, PostalCodeLength, len(digits)),
		)
	}
	return PostalCode{digits}, nil
}

// String returns the 8 digits of the postal code without separator.
func (code PostalCode) String() string {
	return code.digits
}

// Formatted returns the postal code the way it is displayed in forms, e.g. "12345-678".
func (code PostalCode) Formatted() string {
	if len(code.digits) != PostalCodeLength {
		return code.digits
	}
	return code.digits[:postalCodePrefixLen] + postalCodeSeparator + code.digits[postalCodePrefixLen:]
}

// IsZero returns true for the zero value, which is not a valid postal code.
func (code PostalCode) IsZero() bool {
	return len(code.digits) == 0
}

func (code *PostalCode) UnmarshalText(text []byte) error {
	val, err := ParsePostalCode(string(text))
	if err != nil {
		return err
	}
	*code = val
	return nil
}

func (code PostalCode) MarshalText() ([]byte, error) {
	return []byte(code.digits), nil
}

// MaskPostalCode formats partial user input the same way the postal code input mask does:
// only digits are kept and a separator is inserted after the fifth digit.
// The result never exceeds FormattedPostalCodeLength characters.
func MaskPostalCode(value string) string {
	digits := StripNonDigits(value)
	if len(digits) > PostalCodeLength {
		digits = digits[:PostalCodeLength]
	}
	if len(digits) <= postalCodePrefixLen {
		return digits
	}
	var sb strings.Builder
	sb.WriteString(digits[:postalCodePrefixLen])
	sb.WriteString(postalCodeSeparator)
	sb.WriteString(digits[postalCodePrefixLen:])
	return sb.String()
}
