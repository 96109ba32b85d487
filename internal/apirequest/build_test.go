package apirequest

import (
	"context"
	"testing"

	"github.com/MKhiriev/klevu-api-request/models"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
)

func TestBuild_GetForcesMethodAndQuery(t *testing.T) {
	req := NewGet(testEndpoint).
		WithMethod(models.MethodPost).
		WithParam("store", "1").
		WithParam("restApiKey", "KEY")

	r, method := build(context.Background(), resty.New(), req)

	assert.Equal(t, models.MethodGet, method)
	assert.Equal(t, "1", r.QueryParam.Get("store"))
	assert.Equal(t, "KEY", r.QueryParam.Get("restApiKey"))
	assert.Empty(t, r.FormData)
}

func TestBuild_PostForcesMethodAndBody(t *testing.T) {
	req := NewPost(testEndpoint).
		WithMethod(models.MethodGet).
		WithParam("store", "1")

	r, method := build(context.Background(), resty.New(), req)

	assert.Equal(t, models.MethodPost, method)
	assert.Equal(t, "1", r.FormData.Get("store"))
	assert.Empty(t, r.QueryParam)
}

func TestBuild_PlainUsesConfiguredMethod(t *testing.T) {
	req := New(testEndpoint).WithMethod(models.MethodPost).WithParam("store", "1")

	r, method := build(context.Background(), resty.New(), req)

	assert.Equal(t, models.MethodPost, method)
	assert.Empty(t, r.QueryParam)
	assert.Empty(t, r.FormData)
}

// TestBuild_HeadersUnmasked verifies that masking never reaches the wire.
func TestBuild_HeadersUnmasked(t *testing.T) {
	req := New(testEndpoint).
		WithHeader("Authorization", "secret").
		WithHeader("X-Empty", "")

	r, _ := build(context.Background(), resty.New(), req)

	assert.Equal(t, "secret", r.Header.Get("Authorization"))
	_, present := r.Header["X-Empty"]
	assert.False(t, present)
}

func TestBuild_AttachesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	r, _ := build(ctx, resty.New(), New(testEndpoint))

	assert.Equal(t, "v", r.Context().Value(key{}))
}
