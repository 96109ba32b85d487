package apirequest

import (
	"net/http"
	"slices"
	"sort"

	"github.com/MKhiriev/klevu-api-request/models"
)

// Kind selects how a request places its parameters on the wire.
type Kind int

const (
	KindPlain Kind = iota
	KindGet
	KindPost
)

func (k Kind) String() string {
	switch k {
	case KindGet:
		return "get"
	case KindPost:
		return "post"
	default:
		return "plain"
	}
}

// Header is a single request header.
type Header struct {
	Name  string
	Value string
}

// Param is a single request parameter.
type Param struct {
	Key   string
	Value string
}

// Request describes one outbound API call. The zero value is a plain GET
// request with no endpoint.
type Request struct {
	endpoint      string
	method        models.Method
	kind          Kind
	headers       []Header
	params        []Param
	responseModel models.ResponseModel
}

// New returns a plain request to endpoint using GET.
func New(endpoint string) Request {
	return Request{endpoint: endpoint, method: models.MethodGet, kind: KindPlain}
}

// NewGet returns a request that always goes out as GET with its parameters
// in the query string.
func NewGet(endpoint string) Request {
	return Request{endpoint: endpoint, method: models.MethodGet, kind: KindGet}
}

// NewPost returns a request that always goes out as POST with its
// parameters in a form-encoded body.
func NewPost(endpoint string) Request {
	return Request{endpoint: endpoint, method: models.MethodPost, kind: KindPost}
}

func (r Request) clone() Request {
	r.headers = slices.Clone(r.headers)
	r.params = slices.Clone(r.params)
	return r
}

// WithEndpoint sets the URL the request is sent to.
func (r Request) WithEndpoint(url string) Request {
	r = r.clone()
	r.endpoint = url
	return r
}

// WithMethod sets the method of a plain request. Get and Post requests keep
// their forced method when sent.
func (r Request) WithMethod(method models.Method) Request {
	r = r.clone()
	r.method = method
	return r
}

// WithHeader adds or replaces one header. Names are compared in canonical
// form, so "authorization" replaces "Authorization" in place.
func (r Request) WithHeader(name, value string) Request {
	r = r.clone()
	key := http.CanonicalHeaderKey(name)
	for i, h := range r.headers {
		if http.CanonicalHeaderKey(h.Name) == key {
			r.headers[i] = Header{Name: name, Value: value}
			return r
		}
	}
	r.headers = append(r.headers, Header{Name: name, Value: value})
	return r
}

// WithHeaders applies WithHeader for every entry, in sorted name order.
func (r Request) WithHeaders(headers map[string]string) Request {
	for _, name := range sortedKeys(headers) {
		r = r.WithHeader(name, headers[name])
	}
	return r
}

// ReplaceHeaders discards every header and keeps only name: value.
// This is the single-entry semantic older integrations rely on.
func (r Request) ReplaceHeaders(name, value string) Request {
	r = r.clone()
	r.headers = []Header{{Name: name, Value: value}}
	return r
}

// WithParam adds or replaces one parameter, keeping first-insertion order.
func (r Request) WithParam(key, value string) Request {
	r = r.clone()
	for i, p := range r.params {
		if p.Key == key {
			r.params[i].Value = value
			return r
		}
	}
	r.params = append(r.params, Param{Key: key, Value: value})
	return r
}

// WithParams applies WithParam for every entry, in sorted key order.
func (r Request) WithParams(params map[string]string) Request {
	for _, key := range sortedKeys(params) {
		r = r.WithParam(key, params[key])
	}
	return r
}

// WithResponseModel sets the model that parses the reply.
func (r Request) WithResponseModel(model models.ResponseModel) Request {
	r = r.clone()
	r.responseModel = model
	return r
}

// Endpoint returns the target URL as configured.
func (r Request) Endpoint() string {
	return r.endpoint
}

// Method returns the method the request is sent with.
func (r Request) Method() models.Method {
	switch r.kind {
	case KindGet:
		return models.MethodGet
	case KindPost:
		return models.MethodPost
	}
	if r.method == "" {
		return models.MethodGet
	}
	return r.method
}

// Kind reports whether the request is plain, Get or Post.
func (r Request) Kind() Kind {
	return r.kind
}

// Headers returns a copy of the headers in insertion order.
func (r Request) Headers() []Header {
	return slices.Clone(r.headers)
}

// HeaderMap returns the headers keyed by name.
func (r Request) HeaderMap() map[string]string {
	out := make(map[string]string, len(r.headers))
	for _, h := range r.headers {
		out[h.Name] = h.Value
	}
	return out
}

// Params returns a copy of the parameters in insertion order.
func (r Request) Params() []Param {
	return slices.Clone(r.params)
}

// ResponseModel returns the model set with WithResponseModel, or nil.
func (r Request) ResponseModel() models.ResponseModel {
	return r.responseModel
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
