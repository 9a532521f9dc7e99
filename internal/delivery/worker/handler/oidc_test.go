package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/idtoken"
)

func TestOIDCVerifier_Verify(t *testing.T) {
	googlePayload := func(claims map[string]any) *idtoken.Payload {
		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: claims}
	}

	tests := []struct {
		name           string
		header         string
		serviceAccount string
		payload        *idtoken.Payload
		validateErr    error
		wantErr        string
	}{
		{
			name:    "valid",
			header:  "Bearer tok",
			payload: googlePayload(map[string]any{"email_verified": true}),
		},
		{
			name:    "missing header",
			wantErr: "missing bearer token",
		},
		{
			name:        "signature rejected",
			header:      "Bearer tok",
			validateErr: errors.New("idtoken: invalid signature"),
			wantErr:     "invalid push token",
		},
		{
			name:    "foreign issuer",
			header:  "Bearer tok",
			payload: &idtoken.Payload{Issuer: "https://evil.example"},
			wantErr: "unexpected issuer",
		},
		{
			name:    "unverified email",
			header:  "Bearer tok",
			payload: googlePayload(map[string]any{"email_verified": false}),
			wantErr: "not verified",
		},
		{
			name:           "wrong service account",
			header:         "Bearer tok",
			serviceAccount: "push@gasradar.iam.gserviceaccount.com",
			payload:        googlePayload(map[string]any{"email": "other@example.iam.gserviceaccount.com"}),
			wantErr:        "token issued to",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAudience string
			v := newOIDCVerifier("", tt.serviceAccount)
			v.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				gotAudience = audience

				return tt.payload, tt.validateErr
			}

			req := httptest.NewRequest(http.MethodPost, "http://worker.internal/push", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			err := v.Verify(req)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "http://worker.internal/push", gotAudience)
		})
	}
}

func TestOIDCVerifier_ConfiguredAudience(t *testing.T) {
	v := newOIDCVerifier("https://push.gasradar.app/push", "")
	req := httptest.NewRequest(http.MethodPost, "http://10.0.0.3:8080/push", nil)

	assert.Equal(t, "https://push.gasradar.app/push", v.audienceFor(req))

	v.audience = ""
	req.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://10.0.0.3:8080/push", v.audienceFor(req))
}
