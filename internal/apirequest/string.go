package apirequest

import (
	"strings"

	"github.com/MKhiriev/klevu-api-request/internal/masking"
)

// String renders the request for logs:
//
//	METHOD endpoint
//	Name: value
//	...
//
// Get and Post requests append a "GET parameters:" or "POST parameters:"
// section. Sensitive header and parameter values are replaced with
// [masking.Placeholder], and so are sensitive query values of the endpoint.
// Headers with empty values are left out unless they are sensitive.
func (r Request) String() string {
	var b strings.Builder

	b.WriteString(r.Method().String())
	b.WriteString(" ")
	b.WriteString(masking.URL(r.endpoint))
	b.WriteString("\n")

	for _, h := range r.headers {
		if h.Value == "" && !masking.IsSensitive(h.Name) {
			continue
		}
		b.WriteString(h.Name)
		b.WriteString(": ")
		b.WriteString(masking.Value(h.Name, h.Value))
		b.WriteString("\n")
	}

	switch r.kind {
	case KindGet:
		writeParams(&b, "GET parameters:", r.params)
	case KindPost:
		writeParams(&b, "POST parameters:", r.params)
	}

	return b.String()
}

func writeParams(b *strings.Builder, title string, params []Param) {
	lines := make([]string, 0, len(params))
	for _, p := range params {
		lines = append(lines, p.Key+": "+masking.Value(p.Key, p.Value))
	}

	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
}
