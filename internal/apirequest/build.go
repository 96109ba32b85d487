package apirequest

import (
	"context"
	"net/url"

	"github.com/MKhiriev/klevu-api-request/models"
	"github.com/go-resty/resty/v2"
)

// build turns req into a ready-to-execute resty request and the method to
// execute it with. Masking plays no part here.
func build(ctx context.Context, client *resty.Client, req Request) (*resty.Request, models.Method) {
	r := client.R().SetContext(ctx)

	for _, h := range req.headers {
		if h.Value == "" {
			continue
		}
		r.SetHeader(h.Name, h.Value)
	}

	switch req.kind {
	case KindGet:
		r.SetQueryParamsFromValues(paramValues(req.params))
	case KindPost:
		r.SetFormDataFromValues(paramValues(req.params))
	}

	return r, req.Method()
}

func paramValues(params []Param) url.Values {
	values := make(url.Values, len(params))
	for _, p := range params {
		values.Set(p.Key, p.Value)
	}
	return values
}
