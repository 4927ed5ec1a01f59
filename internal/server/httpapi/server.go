// Package httpapi is the JSON-over-HTTP boundary of the catalog. It stays
// deliberately thin: decode the request, call a service, map the error,
// encode the response. All business rules live in the services package.
package httpapi

import (
	"context"
	"net/http"

	"artcatalog/internal/logging"
	"artcatalog/internal/server/services"
)

// sessionCookie is the cookie carrying the opaque session token.
const sessionCookie = "catalog_session"

type Server struct {
	address    string
	logger     logging.Logger
	auth       *services.AuthService
	moderation *services.ModerationService
	query      *services.QueryService
	admin      *services.AdminService
	images     *services.ImageService
}

func NewServer(a string, l logging.Logger, as *services.AuthService, ms *services.ModerationService,
	qs *services.QueryService, ads *services.AdminService, is *services.ImageService) *Server {
	return &Server{
		address:    a,
		logger:     l.With("module", "http_server"),
		auth:       as,
		moderation: ms,
		query:      qs,
		admin:      ads,
		images:     is,
	}
}

// Handler builds the route table. Method-qualified patterns make the mux
// answer 405 for wrong methods on known paths.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/logout", s.handleLogout)
	mux.HandleFunc("GET /api/me", s.handleMe)

	mux.HandleFunc("GET /api/artworks", s.handleListArtworks)
	mux.HandleFunc("GET /api/artworks/{id}", s.handleGetArtwork)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/categories", s.handleListCategories)

	mux.HandleFunc("POST /api/submissions", s.handleCreateSubmission)
	mux.HandleFunc("GET /api/submissions", s.handleListSubmissions)

	mux.HandleFunc("GET /api/admin/stats", s.handleStats)
	mux.HandleFunc("GET /api/admin/users", s.handleListUsers)
	mux.HandleFunc("PATCH /api/admin/users/{id}/role", s.handleUpdateUserRole)
	mux.HandleFunc("PATCH /api/admin/users/{id}/status", s.handleUpdateUserStatus)
	mux.HandleFunc("PATCH /api/admin/submissions/{id}/status", s.handleUpdateSubmissionStatus)
	mux.HandleFunc("POST /api/admin/categories", s.handleCreateCategory)
	mux.HandleFunc("DELETE /api/admin/categories/{id}", s.handleDeleteCategory)
	mux.HandleFunc("POST /api/admin/artworks", s.handleImportArtwork)
	mux.HandleFunc("POST /api/admin/images", s.handlePresignImage)

	return mux
}

// Run serves the API until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.address, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		if err := srv.Shutdown(context.Background()); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
