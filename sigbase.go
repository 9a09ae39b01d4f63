package hmacauth

import (
	"strings"
	"time"
)

// timestampLayout renders UTC time with microsecond precision.
const timestampLayout = "2006-01-02T15:04:05.000000"

// timestampSuffix is appended verbatim to every timestamp. Deployed
// verifiers expect this exact literal, so it is not replaced with "Z" or a
// computed offset even though the timestamp is already UTC.
const timestampSuffix = "-00:00"

// formatTimestamp renders t as the scheme's wire timestamp.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout) + timestampSuffix
}

// stringToSign builds the canonical string the HMAC is computed over:
//
//	{method}\n{host}\n{uri}\n{timestamp}\n
//
// followed by the values of the allow-listed headers present on the message,
// in the allow-list's sorted order, joined with "\n" and without a trailing
// newline. Absent allow-listed headers are skipped silently; the string is a
// pure function of the message, the header list, and the timestamp.
func stringToSign(msg Message, headers []string, timestamp string) string {
	var b strings.Builder

	b.WriteString(msg.Method())
	b.WriteString("\n")
	b.WriteString(msg.Host())
	b.WriteString("\n")
	b.WriteString(msg.RequestURI())
	b.WriteString("\n")
	b.WriteString(timestamp)
	b.WriteString("\n")

	first := true

	for _, name := range headers {
		val, ok := msg.Header(name)
		if !ok {
			continue
		}

		if !first {
			b.WriteString("\n")
		}

		b.WriteString(val)
		first = false
	}

	return b.String()
}
