package respond

import (
	"regexp"
)

var (
	// postgres:// and amqp:// DSNs embed credentials as user:password@
	dsnPasswordPattern = regexp.MustCompile(`://([^:/\s]+):([^@\s]+)@`)

	// bearer tokens from forwarded auth headers
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9\-_.]+`)
)

// SanitizeError masks credentials in an error message before it is logged.
// Connection errors routinely echo the full DSN and auth failures can echo
// the presented token.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = dsnPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = bearerPattern.ReplaceAllString(msg, "Bearer ****")
	return msg
}
