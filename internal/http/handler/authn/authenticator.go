package authn

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/bornholm/foyer/internal/login"
	"github.com/pkg/errors"
)

// ErrInvalidCredentials is returned by an Authenticator when the submitted
// credentials are wrong. Any other error is treated as a backend failure.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator verifies password credentials against an external
// credential service. This service never stores or hashes passwords itself.
type Authenticator interface {
	Authenticate(ctx context.Context, identifier string, secret string) (*User, error)
}

type AuthenticatorFunc func(ctx context.Context, identifier string, secret string) (*User, error)

func (f AuthenticatorFunc) Authenticate(ctx context.Context, identifier string, secret string) (*User, error) {
	return f(ctx, identifier, secret)
}

// HTTPAuthenticator delegates credential checks to a backend endpoint. The
// backend answers 200 with a user payload, or 401/403 for bad credentials.
type HTTPAuthenticator struct {
	endpoint string
	client   *http.Client
}

type httpAuthRequest struct {
	Identifier string `json:"identifier"`
	Secret     string `json:"secret"`
}

type httpAuthResponse struct {
	Subject     string `json:"subject"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

func NewHTTPAuthenticator(endpoint string, client *http.Client) *HTTPAuthenticator {
	if client == nil {
		client = http.DefaultClient
	}

	return &HTTPAuthenticator{
		endpoint: endpoint,
		client:   client,
	}
}

func (a *HTTPAuthenticator) Authenticate(ctx context.Context, identifier string, secret string) (*User, error) {
	payload, err := json.Marshal(httpAuthRequest{
		Identifier: identifier,
		Secret:     secret,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := a.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "could not reach credential backend")
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		var body httpAuthResponse
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			return nil, errors.Wrap(err, "could not decode credential backend response")
		}

		if body.Subject == "" {
			return nil, errors.New("credential backend returned an empty subject")
		}

		return &User{
			Subject:     body.Subject,
			Provider:    login.MethodPassword,
			Email:       body.Email,
			DisplayName: body.DisplayName,
			Role:        body.Role,
		}, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, errors.WithStack(ErrInvalidCredentials)
	default:
		return nil, errors.Errorf("credential backend answered with status %d", res.StatusCode)
	}
}

var _ Authenticator = &HTTPAuthenticator{}
