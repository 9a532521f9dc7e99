package feed

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gasradar/config"
	domainerrors "gasradar/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validFeed = `{
  "Fecha": "03/03/2025 10:15:02",
  "ListaEESSPrecio": [
    {"IDEESS": "4375", "Latitud": "40,416775", "Longitud (WGS84)": "-3,703790", "Precio Gasolina 95 E5": "1,649"},
    {"IDEESS": "5122", "Latitud": "40,420000", "Longitud (WGS84)": "-3,700000", "Precio Gasoleo A": "1,499"}
  ],
  "Nota": "",
  "ResultadoConsulta": "OK"
}`

func newTestClient(t *testing.T, handler http.HandlerFunc, validate bool) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := newClient(config.FeedConfig{
		URL:            server.URL,
		Timeout:        time.Second,
		ValidateSchema: validate,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)), server.Client())
	require.NoError(t, err)

	return client
}

func TestClient_FetchSnapshot(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, validFeed)
	}, true)

	snapshot, err := client.FetchSnapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "03/03/2025 10:15:02", snapshot.Date)
	require.Len(t, snapshot.Records, 2)
	assert.Equal(t, "4375", snapshot.Records[0]["IDEESS"])
	assert.Equal(t, "1,649", snapshot.Records[0]["Precio Gasolina 95 E5"])
}

func TestClient_FetchSnapshot_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		validate bool
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "boom"},
		{name: "not found", status: http.StatusNotFound, body: "{}"},
		{name: "not json", status: http.StatusOK, body: "<html></html>"},
		{name: "not json with schema", status: http.StatusOK, body: "<html></html>", validate: true},
		{name: "schema violation", status: http.StatusOK, body: `{"ListaEESSPrecio": [{"IDEESS": 4375}], "ResultadoConsulta": "OK"}`, validate: true},
		{name: "missing list", status: http.StatusOK, body: `{"ResultadoConsulta": "OK"}`, validate: true},
		{name: "query not ok", status: http.StatusOK, body: `{"ListaEESSPrecio": [], "ResultadoConsulta": "ERROR"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}, tt.validate)

			snapshot, err := client.FetchSnapshot(context.Background())
			assert.Nil(t, snapshot)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrFeedUnavailable)
		})
	}
}

func TestClient_FetchSnapshot_NetworkError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client, err := newClient(config.FeedConfig{URL: url}, slog.New(slog.NewTextHandler(io.Discard, nil)), &http.Client{Timeout: time.Second})
	require.NoError(t, err)

	_, err = client.FetchSnapshot(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrFeedUnavailable)
}
