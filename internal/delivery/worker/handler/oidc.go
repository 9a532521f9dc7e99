package handler

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"gasradar/internal/errors"

	"google.golang.org/api/idtoken"
)

var googleIssuers = []string{"accounts.google.com", "https://accounts.google.com"}

type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// oidcVerifier checks the Google-signed token of an authenticated push subscription.
// See https://cloud.google.com/pubsub/docs/authenticate-push-subscriptions
type oidcVerifier struct {
	audience       string
	serviceAccount string
	validate       validateFunc
}

func newOIDCVerifier(audience, serviceAccount string) *oidcVerifier {
	return &oidcVerifier{
		audience:       audience,
		serviceAccount: serviceAccount,
		validate:       idtoken.Validate,
	}
}

func (v *oidcVerifier) Verify(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	payload, err := v.validate(req.Context(), token, v.audienceFor(req))
	if err != nil {
		return errors.Wrap(err, "invalid push token")
	}

	if !slices.Contains(googleIssuers, payload.Issuer) {
		return errors.Errorf("unexpected issuer %q", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("token email is not verified")
	}
	if v.serviceAccount != "" {
		if email, _ := payload.Claims["email"].(string); email != v.serviceAccount {
			return errors.Errorf("token issued to %q", email)
		}
	}

	return nil
}

// audienceFor defaults to the URL Pub/Sub was configured to push to.
func (v *oidcVerifier) audienceFor(req *http.Request) string {
	if v.audience != "" {
		return v.audience
	}

	scheme := "https"
	if req.TLS == nil && req.Header.Get("X-Forwarded-Proto") != "https" {
		scheme = "http"
	}

	return scheme + "://" + req.Host + req.URL.Path
}
