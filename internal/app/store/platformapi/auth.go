package platformapi

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// AuthConfig selects how the dashboard authenticates to the platform API.
//
// With ClientID and TokenURL set the client-credentials flow is used and
// tokens are refreshed automatically. Otherwise a non-empty Token is sent as
// a static bearer token. With neither, requests are unauthenticated.
type AuthConfig struct {
	Token        string
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string
}

// Mode names the authentication mode for logging.
func (a AuthConfig) Mode() string {
	switch {
	case a.ClientID != "" && a.TokenURL != "":
		return "client_credentials"
	case a.Token != "":
		return "static_token"
	default:
		return "none"
	}
}

// NewHTTPClient builds the *http.Client used by Client. The context is used
// by the OAuth2 transport when fetching tokens and should live as long as the
// application.
func NewHTTPClient(ctx context.Context, auth AuthConfig, timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultClientTimeout
	}
	base := &http.Client{Timeout: timeout}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)

	var hc *http.Client
	switch auth.Mode() {
	case "client_credentials":
		cc := clientcredentials.Config{
			ClientID:     auth.ClientID,
			ClientSecret: auth.ClientSecret,
			TokenURL:     auth.TokenURL,
			Scopes:       auth.Scopes,
		}
		hc = cc.Client(ctx)
	case "static_token":
		hc = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: auth.Token,
			TokenType:   "Bearer",
		}))
	default:
		return base
	}
	hc.Timeout = timeout
	return hc
}
