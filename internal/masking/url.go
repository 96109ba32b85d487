package masking

import (
	"errors"
	"net/url"
	"strings"
)

// URL masks sensitive query parameters and any userinfo password in raw.
// Strings that do not parse as URLs, or carry nothing sensitive, are
// returned unchanged.
func URL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	changed := false
	if u.User != nil {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), Placeholder)
			changed = true
		}
	}

	if u.RawQuery != "" {
		q := u.Query()
		for key := range q {
			if IsSensitive(key) {
				q.Set(key, Placeholder)
				changed = true
			}
		}
		if changed {
			u.RawQuery = q.Encode()
		}
	}

	if !changed {
		return raw
	}
	return u.String()
}

// Error returns the message of err with the URL of any wrapped *url.Error
// masked. Transport errors name the full request URL, query string included.
// Context added by outer wrappers is kept.
func Error(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.URL != "" {
		msg = strings.ReplaceAll(msg, urlErr.URL, URL(urlErr.URL))
	}
	return msg
}
