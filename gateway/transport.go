package gateway

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jrsteele09/employee-tracker/tokenstore"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

// bearerTransport attaches the persisted bearer token (when one exists) and
// a request id to every outgoing request. The equivalent of the original
// request interceptor: token absence is normal and never an error here.
type bearerTransport struct {
	tokens tokenstore.Repo
	base   http.RoundTripper
	log    zerolog.Logger
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("X-Request-ID", uuid.New().String())

	token, err := t.tokens.Get()
	switch {
	case err == nil && token != "":
		(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}).SetAuthHeader(clone)
	case err != nil && !errors.Is(err, tokenstore.TokenNotFoundErr):
		t.log.Debug().Err(err).Msg("token store read failed, sending unauthenticated request")
	}

	return t.base.RoundTrip(clone)
}
