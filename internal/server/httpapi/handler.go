package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"artcatalog/internal/common"
	"artcatalog/internal/server/models"
	"artcatalog/internal/server/services"
)

const (
	defaultPerPage = 9
	maxPerPage     = 100
)

func (s *Server) token(r *http.Request) string {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// pathID parses the {id} segment. A non-numeric id is indistinguishable from
// an absent record, so it maps to not found.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, common.ErrNotFound
	}
	return id, nil
}

func queryInt(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 1 {
		return def
	}
	return v
}

// artworkPayload is the wire form of artwork content fields, shared by
// submissions and admin imports.
type artworkPayload struct {
	Title         string `json:"title"`
	Type          string `json:"type"`
	Artist        string `json:"artist"`
	Period        string `json:"period"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	ImageURL      string `json:"image_url"`
	ConditionNote string `json:"condition_note"`
}

func (p artworkPayload) input() services.ArtworkInput {
	return services.ArtworkInput{
		Title:         p.Title,
		Type:          p.Type,
		Artist:        p.Artist,
		Period:        p.Period,
		Description:   p.Description,
		Location:      p.Location,
		ImageURL:      p.ImageURL,
		ConditionNote: p.ConditionNote,
	}
}

// resolveImages swaps stored image references for fetchable URLs. A failed
// resolution keeps the raw reference; display degrades, the listing does not.
func (s *Server) resolveImages(ctx context.Context, items []models.Artwork) []models.Artwork {
	for i := range items {
		url, err := s.images.ResolveImageURL(ctx, items[i].ImageURL)
		if err != nil {
			s.logger.Warn(ctx, "image url resolution failed", "artwork_id", items[i].ID, "error", err.Error())
			continue
		}
		items[i].ImageURL = url
	}
	return items
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username        string `json:"username"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	user, token, err := s.auth.Register(r.Context(), services.RegisterParams{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	setSessionCookie(w, token)
	writeJSON(w, http.StatusCreated, map[string]any{"user": user})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	user, token, err := s.auth.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.auth.Logout(s.token(r))
	clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, err := s.auth.CurrentUser(r.Context(), s.token(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (s *Server) handleListArtworks(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	perPage := queryInt(r, "per_page", defaultPerPage)
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	items, pagination, err := s.query.ListApproved(r.Context(), page, perPage)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"artworks":   s.resolveImages(r.Context(), items),
		"pagination": pagination,
	})
}

func (s *Server) handleGetArtwork(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	artwork, similar, err := s.query.GetWithSimilar(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resolved := s.resolveImages(r.Context(), append([]models.Artwork{*artwork}, similar...))
	writeJSON(w, http.StatusOK, map[string]any{
		"artwork": resolved[0],
		"similar": resolved[1:],
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	results, err := s.query.Search(r.Context(), q.Get("q"), q.Get("type"), q.Get("period"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"artworks": s.resolveImages(r.Context(), results)})
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.query.ListCategories(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": cats})
}

func (s *Server) handleCreateSubmission(w http.ResponseWriter, r *http.Request) {
	session, err := s.auth.RequireAuth(s.token(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req artworkPayload
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	sub, err := s.moderation.Submit(r.Context(), session.UserID, req.input())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"submission": sub})
}

func (s *Server) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	session, err := s.auth.RequireAuth(s.token(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	status := models.SubmissionStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		ve := &common.ValidationError{}
		ve.Add("unknown submission status")
		s.writeError(w, r, ve)
		return
	}

	subs, err := s.query.ListSubmissions(r.Context(), session, status)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"submissions": subs})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if _, err := s.auth.RequireAdmin(s.token(r)); err != nil {
		s.writeError(w, r, err)
		return
	}

	stats, err := s.query.Stats(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	if _, err := s.auth.RequireAdmin(s.token(r)); err != nil {
		s.writeError(w, r, err)
		return
	}

	userList, err := s.admin.ListUsers(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": userList})
}

func (s *Server) handleUpdateUserRole(w http.ResponseWriter, r *http.Request) {
	if _, err := s.auth.RequireAdmin(s.token(r)); err != nil {
		s.writeError(w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req struct {
		Role models.Role `json:"role"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	user, err := s.admin.UpdateUserRole(r.Context(), id, req.Role)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (s *Server) handleUpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	if _, err := s.auth.RequireAdmin(s.token(r)); err != nil {
		s.writeError(w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req struct {
		Status models.UserStatus `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	user, err := s.admin.UpdateUserStatus(r.Context(), id, req.Status)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (s *Server) handleUpdateSubmissionStatus(w http.ResponseWriter, r *http.Request) {
	if _, err := s.auth.RequireAdmin(s.token(r)); err != nil {
		s.writeError(w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req struct {
		Status models.SubmissionStatus `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	sub, err := s.moderation.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"submission": sub})
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	if _, err := s.auth.RequireAdmin(s.token(r)); err != nil {
		s.writeError(w, r, err)
		return
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	cat, err := s.admin.CreateCategory(r.Context(), req.Name, req.Description)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"category": cat})
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if _, err := s.auth.RequireAdmin(s.token(r)); err != nil {
		s.writeError(w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.admin.DeleteCategory(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleImportArtwork(w http.ResponseWriter, r *http.Request) {
	session, err := s.auth.RequireAdmin(s.token(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req artworkPayload
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	artwork, err := s.admin.ImportArtwork(r.Context(), session.UserID, req.input())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"artwork": artwork})
}

func (s *Server) handlePresignImage(w http.ResponseWriter, r *http.Request) {
	if _, err := s.auth.RequireAdmin(s.token(r)); err != nil {
		s.writeError(w, r, err)
		return
	}

	key, url, err := s.images.PresignUpload(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"key": key, "upload_url": url})
}
