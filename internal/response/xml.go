// Package response holds [models.ResponseModel] implementations for the
// payload formats returned by Klevu APIs.
package response

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/klevu-api-request/models"
)

// Field is one top-level child element of an XML reply.
type Field struct {
	Name  string
	Value string
}

// XMLResponse parses Klevu XML replies such as
//
//	<data><enabled>boosting</enabled><disabled/></data>
//	<response><error>Invalid API key</error></response>
//
// Only the root's direct children are kept; nested elements contribute their
// concatenated text to the enclosing field.
type XMLResponse struct {
	raw    models.RawResponse
	root   string
	fields []Field
}

var _ models.ResponseModel = (*XMLResponse)(nil)

// NewXMLResponse returns an empty model ready for SetRawResponse.
func NewXMLResponse() *XMLResponse {
	return &XMLResponse{}
}

// SetRawResponse implements [models.ResponseModel]. An empty body is accepted
// and leaves the model without fields.
func (r *XMLResponse) SetRawResponse(raw models.RawResponse) error {
	r.raw = raw
	r.root = ""
	r.fields = nil

	if len(bytes.TrimSpace(raw.Body)) == 0 {
		return nil
	}

	root, fields, err := parseTopLevel(raw.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedXML, err)
	}
	r.root = root
	r.fields = fields
	return nil
}

// IsSuccess reports a 2xx status and the absence of an <error> element.
func (r *XMLResponse) IsSuccess() bool {
	if !r.raw.IsSuccessStatus() {
		return false
	}
	_, hasError := r.Value("error")
	return !hasError
}

// Message returns the <error> text, else the <message> text, else the HTTP
// status text.
func (r *XMLResponse) Message() string {
	if v, ok := r.Value("error"); ok {
		return v
	}
	if v, ok := r.Value("message"); ok {
		return v
	}
	return http.StatusText(r.raw.StatusCode)
}

// Value returns the text of the first top-level element called name.
func (r *XMLResponse) Value(name string) (string, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Values returns all top-level fields in document order.
func (r *XMLResponse) Values() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Root returns the name of the root element.
func (r *XMLResponse) Root() string {
	return r.root
}

// Raw returns the reply the model was built from.
func (r *XMLResponse) Raw() models.RawResponse {
	return r.raw
}

func parseTopLevel(body []byte) (string, []Field, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))

	var (
		root   string
		fields []Field
		depth  int
		text   strings.Builder
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch depth {
			case 1:
				if root != "" {
					return "", nil, errors.New("multiple root elements")
				}
				root = t.Name.Local
			case 2:
				fields = append(fields, Field{Name: t.Name.Local})
				text.Reset()
			}
		case xml.CharData:
			if depth >= 2 {
				text.Write(t)
			}
		case xml.EndElement:
			if depth == 2 {
				fields[len(fields)-1].Value = strings.TrimSpace(text.String())
			}
			depth--
		}
	}

	if root == "" {
		return "", nil, errors.New("no root element")
	}
	return root, fields, nil
}
