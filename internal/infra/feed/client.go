// Package feed fetches and normalizes the public fuel-price feed.
package feed

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"gasradar/config"
	"gasradar/internal/domain/entity"
	domainerrors "gasradar/internal/domain/errors"
	"gasradar/internal/domain/service"
	"gasradar/internal/errors"
	"gasradar/internal/util"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.uber.org/fx"
)

const (
	resultOK       = "OK"
	schemaResource = "feed_schema.json"
)

//go:embed feed_schema.json
var feedSchema []byte

type feedResponse struct {
	Fecha             string                    `json:"Fecha"`
	ListaEESSPrecio   []entity.RawStationRecord `json:"ListaEESSPrecio"`
	Nota              string                    `json:"Nota"`
	ResultadoConsulta string                    `json:"ResultadoConsulta"`
}

// ClientParams defines the dependencies of the feed client.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Client downloads full snapshots of the feed.
type Client struct {
	url        string
	httpClient *http.Client
	schema     *jsonschema.Schema
	logger     *slog.Logger
}

// NewClient creates the feed client. The payload schema is compiled once here.
func NewClient(params ClientParams) (service.FeedClient, error) {
	return newClient(params.Config.Feed, params.Logger, &http.Client{Timeout: params.Config.Feed.Timeout})
}

func newClient(cfg config.FeedConfig, logger *slog.Logger, httpClient *http.Client) (*Client, error) {
	client := &Client{
		url:        cfg.URL,
		httpClient: httpClient,
		logger:     logger,
	}

	if cfg.ValidateSchema {
		schema, err := compileSchema()
		if err != nil {
			return nil, err
		}
		client.schema = schema
	}

	return client, nil
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaResource, bytes.NewReader(feedSchema)); err != nil {
		return nil, errors.Wrap(err, "failed to add feed schema")
	}

	schema, err := compiler.Compile(schemaResource)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compile feed schema")
	}

	return schema, nil
}

// FetchSnapshot performs one GET of the feed. It does not retry.
func (c *Client) FetchSnapshot(ctx context.Context) (*entity.FeedSnapshot, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return nil, domainerrors.ErrFeedUnavailable.WithCause(errors.Wrap(err, "failed to create request"))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrFeedUnavailable.WithCause(errors.Wrap(err, "failed to fetch feed"))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, domainerrors.ErrFeedUnavailable.WithCause(errors.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerrors.ErrFeedUnavailable.WithCause(errors.Wrap(err, "failed to read feed body"))
	}

	if c.schema != nil {
		var doc any
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, domainerrors.ErrFeedUnavailable.WithCause(errors.Wrap(err, "feed body is not JSON"))
		}
		if err := c.schema.Validate(doc); err != nil {
			return nil, domainerrors.ErrFeedUnavailable.WithCause(errors.Wrap(err, "feed schema validation failed"))
		}
	}

	var payload feedResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, domainerrors.ErrFeedUnavailable.WithCause(errors.Wrap(err, "failed to decode feed"))
	}

	if payload.ResultadoConsulta != resultOK {
		return nil, domainerrors.ErrFeedUnavailable.WithCause(errors.Errorf("feed query result: %q", payload.ResultadoConsulta))
	}

	c.logger.Debug("Feed snapshot fetched",
		slog.String("date", payload.Fecha),
		slog.Int("stations", len(payload.ListaEESSPrecio)),
		slog.String("size", util.FormatBytes(int64(len(body)))),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)

	return &entity.FeedSnapshot{
		Date:    payload.Fecha,
		Records: payload.ListaEESSPrecio,
	}, nil
}
