package apirequest

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/klevu-api-request/internal/logger"
	"github.com/MKhiriev/klevu-api-request/internal/masking"
	"github.com/MKhiriev/klevu-api-request/internal/utils"
	"github.com/MKhiriev/klevu-api-request/models"
	"github.com/rs/zerolog"
)

// Sender executes [Request] values over a shared HTTP client.
// It holds no per-call state and may be used from several goroutines.
type Sender struct {
	client *utils.HTTPClient
	levels LogLevelProvider
	ids    IDGenerator
	masker *masking.Masker
	logger *logger.Logger
}

// NewSender constructs a Sender. Reply bodies are masked with the built-in
// rules; use WithMasker to add more.
func NewSender(client *utils.HTTPClient, levels LogLevelProvider, ids IDGenerator, logger *logger.Logger) *Sender {
	return &Sender{
		client: client,
		levels: levels,
		ids:    ids,
		masker: masking.NewMasker(),
		logger: logger,
	}
}

// WithMasker returns a copy of s that masks reply bodies with m.
func (s *Sender) WithMasker(m *masking.Masker) *Sender {
	c := *s
	c.masker = m
	return &c
}

// Send performs req and returns its response model populated from the reply.
//
// ErrNoEndpoint and ErrNoResponseModel are returned before any network I/O.
// If the call itself fails (connection refused, timeout, TLS error) the
// failure is logged and [models.NoResponse] is returned with a nil error.
// A non-nil error after a completed call means the response model rejected
// the reply; the model is returned alongside it.
func (s *Sender) Send(ctx context.Context, req Request) (models.ResponseModel, error) {
	if strings.TrimSpace(req.Endpoint()) == "" {
		return nil, ErrNoEndpoint
	}
	model := req.ResponseModel()
	if model == nil {
		return nil, ErrNoResponseModel
	}

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = s.ids.Generate()
		ctx = utils.WithRequestID(ctx, requestID)
	}
	log := s.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("request_id", requestID)
	})

	debug := s.levels.LogLevel() <= zerolog.DebugLevel

	httpReq, method := build(ctx, s.client.Client, req)
	if debug {
		log.Debug().Msgf("API EndPoint: %s", masking.URL(req.Endpoint()))
		s.logMasked(log, "API request", req.String())
	}

	resp, err := httpReq.Execute(method.String(), req.Endpoint())
	if err != nil {
		log.Error().Msgf("HTTP error: %s", masking.Error(err))
		return models.NoResponse, nil
	}

	body := resp.Body()
	if debug {
		s.logMasked(log, "API response", string(body))
	}

	raw := models.RawResponse{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       body,
	}
	if err = model.SetRawResponse(raw); err != nil {
		return model, fmt.Errorf("%w: %w", ErrParseResponse, err)
	}

	return model, nil
}

// logMasked writes content at debug level after body masking. Header and
// parameter values are already masked by name in Request.String; the body
// rules also catch keys and emails carried under other names.
func (s *Sender) logMasked(log *logger.Logger, label, content string) {
	res := s.masker.Body(content)
	if res.Status == masking.StatusFailed {
		log.Error().Err(res.Err).Msgf("exception while masking %s", strings.ToLower(label))
	}
	log.Debug().
		Str("masking", res.Status.String()).
		Msgf("%s:\n%s", label, res.Content)
}
