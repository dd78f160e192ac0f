package validation

import "regexp"

var (
	emailRegex  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobileRegex = regexp.MustCompile(`^(\+91|91|0)?[6789]\d{9}$`)
)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// ValidMobile reports whether s is an Indian mobile number. Whitespace is
// stripped before matching so "+91 98765 43210" passes.
func ValidMobile(s string) bool {
	return mobileRegex.MatchString(stripSpaces(s))
}

func stripSpaces(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
