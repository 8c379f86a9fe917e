package middleware

import (
	"net/http"

	"medical-profile-qr/internal/delivery/web"

	"github.com/sirupsen/logrus"
)

// RecoveryMiddleware converts panics into a rendered 500 page instead
// of a dropped connection or a raw stack trace.
type RecoveryMiddleware struct {
	log      *logrus.Logger
	renderer *web.Renderer
}

func NewRecoveryMiddleware(log *logrus.Logger, renderer *web.Renderer) *RecoveryMiddleware {
	return &RecoveryMiddleware{
		log:      log,
		renderer: renderer,
	}
}

type errorPageData struct {
	Message string
}

func (m *RecoveryMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				entry := m.log.WithFields(logrus.Fields{
					"method": req.Method,
					"path":   req.URL.Path,
				})
				if requestID, ok := GetRequestIDFromContext(req.Context()); ok {
					entry = entry.WithField("request_id", requestID)
				}
				entry.Errorf("Panic while handling request: %v", rec)
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)
				if err := m.renderer.Render(w, "error", errorPageData{
					Message: "An unexpected error occurred. Please try again.",
				}); err != nil {
					m.log.Errorf("Failed to render error page: %+v", err)
				}
			}
		}()

		next.ServeHTTP(w, req)
	})
}
