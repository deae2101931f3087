package http

import (
	"net/http"

	"github.com/officeflow/officeflow-backend-go/internal/authz"
	"github.com/officeflow/officeflow-backend-go/internal/domain/session"
	"github.com/officeflow/officeflow-backend-go/internal/handler/http/middleware"
	"github.com/officeflow/officeflow-backend-go/internal/handler/http/response"
)

// sessionOrFail pulls the resolved session from the request context.
func sessionOrFail(w http.ResponseWriter, r *http.Request) (session.Session, bool) {
	sess, ok := middleware.SessionFrom(r.Context())
	if !ok {
		response.Unauthorized(w, "No session")
		return session.Session{}, false
	}
	return sess, true
}

type NavHandler interface {
	Sections(w http.ResponseWriter, r *http.Request)
}

type NavHandlerImpl struct{}

func NewNavHandler() NavHandler {
	return &NavHandlerImpl{}
}

// Sections returns the console sections the session's role may open.
func (h *NavHandlerImpl) Sections(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	sections := authz.VisibleNavSections(sess.Role)
	response.Success(w, map[string]any{
		"role":             sess.Role,
		"role_provisional": !sess.Resolved(),
		"sections":         sections,
	})
}
