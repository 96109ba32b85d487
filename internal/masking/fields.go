package masking

import "strings"

const (
	// Placeholder replaces the value of a sensitive header or parameter.
	Placeholder = "***************"
	// EmailPlaceholder replaces an email address found in a reply body.
	EmailPlaceholder = "***********"
	// ElementPlaceholder is the content written into masked XML elements.
	ElementPlaceholder = "**********"
)

var sensitiveFields = []string{"restApiKey", "email", "password", "Authorization"}

// Fields returns a copy of the sensitive field names.
func Fields() []string {
	out := make([]string, len(sensitiveFields))
	copy(out, sensitiveFields)
	return out
}

// IsSensitive reports whether name belongs to the sensitive field set.
// The comparison ignores case, so "authorization" and "Authorization" match.
func IsSensitive(name string) bool {
	for _, f := range sensitiveFields {
		if strings.EqualFold(f, name) {
			return true
		}
	}
	return false
}

// Value returns [Placeholder] for sensitive names and value otherwise.
func Value(name, value string) string {
	if IsSensitive(name) {
		return Placeholder
	}
	return value
}
