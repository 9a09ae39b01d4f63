package hmacauth

import (
	"fmt"
	"strings"
	"time"
)

// Authorization holds the parsed fields of a scheme Authorization header.
type Authorization struct {
	APIKey    string
	Signature string

	// Timestamp is the parsed signing time. RawTimestamp preserves the
	// exact string that was signed, which verification needs to rebuild the
	// string-to-sign byte-for-byte.
	Timestamp    time.Time
	RawTimestamp string
}

// formatAuthorization assembles the header value. Field order is fixed and
// no quoting or escaping is applied; interoperability depends on this exact
// form.
func formatAuthorization(apiKey, signature, timestamp string) string {
	return "APIKey=" + apiKey + ",Signature=" + signature + ",Timestamp=" + timestamp
}

// ParseAuthorization parses an Authorization header value of the form
// APIKey=<k>,Signature=<sig>,Timestamp=<ts>. Parameters may appear in any
// order; unknown parameters, repeated parameters, and missing fields are
// rejected.
func ParseAuthorization(header string) (*Authorization, error) {
	if header == "" {
		return nil, ErrNoAuthorization
	}

	var auth Authorization

	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, part)
		}

		switch key {
		case "APIKey":
			if auth.APIKey != "" {
				return nil, fmt.Errorf("%w: APIKey", ErrRepeatedParameter)
			}

			auth.APIKey = value

		case "Signature":
			if auth.Signature != "" {
				return nil, fmt.Errorf("%w: Signature", ErrRepeatedParameter)
			}

			auth.Signature = value

		case "Timestamp":
			if !auth.Timestamp.IsZero() {
				return nil, fmt.Errorf("%w: Timestamp", ErrRepeatedParameter)
			}

			ts, err := time.Parse(time.RFC3339, value)
			if err != nil {
				return nil, ErrInvalidTimestamp
			}

			auth.Timestamp = ts
			auth.RawTimestamp = value

		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownParameter, key)
		}
	}

	if auth.APIKey == "" || auth.Signature == "" || auth.Timestamp.IsZero() {
		return nil, ErrMissingParameter
	}

	return &auth, nil
}
