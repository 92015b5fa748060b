package auth

import (
	"context"
	"net/http"

	"github.com/2beens/fitroutine/internal/telemetry/tracing"
	"github.com/2beens/fitroutine/pkg"

	log "github.com/sirupsen/logrus"
)

type sessionRevoker interface {
	Revoke(ctx context.Context, token string) (bool, error)
}

type Handler struct {
	sessions sessionRevoker
}

func NewHandler(sessions sessionRevoker) *Handler {
	return &Handler{
		sessions: sessions,
	}
}

// HandleLogout revokes the bearer token of the request. Unknown tokens are not an error.
func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	token := BearerToken(r.Header.Get("Authorization"))
	if token == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	revoked, err := handler.sessions.Revoke(ctx, token)
	if err != nil {
		log.Errorf("logout: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}
	if !revoked {
		log.Tracef("logout: token not found")
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}
