package utils

import (
	"regexp"
	"strings"
)

// phonePattern accepts an optional leading + followed by 9 to 15 digits,
// which covers E.164 mobile numbers without pinning a country plan.
var phonePattern = regexp.MustCompile(`^\+?[0-9]{9,15}$`)

// ValidatePhone validates a mobile number and returns its normalized form.
// Separators commonly pasted from contact apps are stripped before matching.
func ValidatePhone(phone string) (bool, string) {
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "(", "")
	stripped = strings.ReplaceAll(stripped, ")", "")

	if !phonePattern.MatchString(stripped) {
		return false, ""
	}

	return true, stripped
}
