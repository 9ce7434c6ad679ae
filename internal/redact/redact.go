// Package redact strips sensitive fragments from strings before they are
// logged. Error chains in this service can carry database connection
// strings, SQL text, and customer email addresses; none of those belong in
// log output.
package redact

import "regexp"

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

var rules = []rule{
	// Datastore locators carry credentials before the @.
	{regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`), "[REDACTED_DSN]@"},
	// Password-ish key/value fragments.
	{regexp.MustCompile(`(?i)(password|passwd|secret)([=:]\s*)\S+`), "$1$2[REDACTED]"},
	// Customer email addresses.
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), "[REDACTED_EMAIL]"},
	// SQL statement fragments leaked from driver errors.
	{regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE)\s[\s\w,*()=$'"]+(?:FROM|INTO|SET|WHERE)[\s\w,*()=$'"]*`), "[REDACTED_SQL]"},
	// host:port endpoints.
	{regexp.MustCompile(`\b[\w.-]+\.[A-Za-z]{2,}:\d{1,5}\b`), "[REDACTED_HOST]"},
}

// String returns input with all sensitive fragments replaced.
func String(input string) string {
	if input == "" {
		return input
	}
	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error returns the redacted Error() text of err, or "" for nil.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
