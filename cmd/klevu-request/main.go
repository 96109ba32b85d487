package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/klevu-api-request/internal/apirequest"
	"github.com/MKhiriev/klevu-api-request/internal/config"
	"github.com/MKhiriev/klevu-api-request/internal/logger"
	"github.com/MKhiriev/klevu-api-request/internal/masking"
	"github.com/MKhiriev/klevu-api-request/internal/response"
	"github.com/MKhiriev/klevu-api-request/internal/utils"
	"github.com/MKhiriev/klevu-api-request/models"
	"github.com/rs/zerolog"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("klevu-request", zerolog.InfoLevel).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("klevu-request", cfg.Log.LogLevel())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		stop()
		log.Fatal().Err(err).Msg("klevu request failed")
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	req, err := requestFromConfig(cfg.API)
	if err != nil {
		return err
	}

	client := utils.NewHTTPClient(utils.HTTPClientConfig{
		Timeout:            cfg.API.Timeout,
		InsecureSkipVerify: cfg.API.InsecureSkipVerify,
		UserAgent:          cfg.API.UserAgent,
		Logger:             log,
	})
	sender := apirequest.NewSender(client, cfg.Log, utils.NewUUIDGenerator(), log)

	model, err := sender.Send(ctx, req)
	if err != nil {
		return fmt.Errorf("send: %w", err)
	}

	if !model.IsSuccess() {
		return fmt.Errorf("%w: %s", errUnsuccessful, model.Message())
	}

	values := zerolog.Dict()
	if xmlResp, ok := model.(*response.XMLResponse); ok {
		for _, f := range xmlResp.Values() {
			values = values.Str(f.Name, masking.Value(f.Name, masking.Body(f.Value).Content))
		}
	}
	log.Info().
		Str("reply_message", model.Message()).
		Dict("values", values).
		Msg("klevu request succeeded")

	return nil
}

var errUnsuccessful = errors.New("klevu api call unsuccessful")

// requestFromConfig builds the request described by the API settings. An
// empty method yields a Get request so parameters and the restApiKey, if
// configured, always reach the wire.
func requestFromConfig(api config.API) (apirequest.Request, error) {
	method, err := models.ParseMethod(api.Method)
	if err != nil {
		return apirequest.Request{}, err
	}

	req := apirequest.NewGet(api.Endpoint)
	if method == models.MethodPost {
		req = apirequest.NewPost(api.Endpoint)
	}

	req = req.WithParams(api.Params)
	if api.RestAPIKey != "" {
		req = req.WithParam("restApiKey", api.RestAPIKey)
	}

	return req.
		WithHeader("Accept", "application/xml").
		WithResponseModel(response.NewXMLResponse()), nil
}
