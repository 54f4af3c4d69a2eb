package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dmaltsev/journal/internal/common"
	"github.com/dmaltsev/journal/internal/server/models"
	"github.com/dmaltsev/journal/internal/validation"
)

// Conflict and auth messages surfaced as field errors. Validation
// messages live in the validation package; these two depend on store
// state rather than input shape.
const (
	msgEmailExists  = "A user already exists with this email"
	msgSlugExists   = "A post already exists with this slug"
	msgInvalidLogin = "Invalid email or password"
)

type fieldErrorsResponse struct {
	Errors validation.FieldErrors `json:"errors"`
}

func writeFieldErrors(w http.ResponseWriter, fe validation.FieldErrors) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(fieldErrorsResponse{Errors: fe})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type postPayload struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Markdown  string    `json:"markdown"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type postSummary struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

func toPostPayload(p *models.Post) postPayload {
	return postPayload{
		Slug:      p.Slug,
		Title:     p.Title,
		Markdown:  p.Markdown,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Already authenticated: nothing to create.
	if _, ok := s.currentUserID(r); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	cmd := parseSignupCommand(r)

	if fe := validation.Credentials(cmd.Email, cmd.Password); fe.Any() {
		writeFieldErrors(w, fe)
		return
	}

	user, err := s.users.SignUp(ctx, cmd.Email, cmd.Password)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			writeFieldErrors(w, validation.FieldErrors{"email": msgEmailExists})
			return
		}
		s.logger.Error(ctx, "signup failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	token, err := s.sessions.Issue(user.ID, false)
	if err != nil {
		s.logger.Error(ctx, "session issue failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.logger.Info(ctx, "account created", "user_id", user.ID)
	s.setSessionCookie(w, token, false)
	http.Redirect(w, r, safeRedirect(cmd.RedirectTo, "/"), http.StatusFound)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, ok := s.currentUserID(r); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	cmd := parseLoginCommand(r)

	if fe := validation.Credentials(cmd.Email, cmd.Password); fe.Any() {
		writeFieldErrors(w, fe)
		return
	}

	user, err := s.users.VerifyCredentials(ctx, cmd.Email, cmd.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			// One generic message whether the email exists or not.
			writeFieldErrors(w, validation.FieldErrors{"email": msgInvalidLogin})
			return
		}
		s.logger.Error(ctx, "login failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	token, err := s.sessions.Issue(user.ID, cmd.Remember)
	if err != nil {
		s.logger.Error(ctx, "session issue failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.setSessionCookie(w, token, cmd.Remember)
	http.Redirect(w, r, safeRedirect(cmd.RedirectTo, "/posts"), http.StatusFound)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := s.posts.List(ctx)
	if err != nil {
		s.logger.Error(ctx, "list posts failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	summaries := make([]postSummary, 0, len(list))
	for _, p := range list {
		summaries = append(summaries, postSummary{Slug: p.Slug, Title: p.Title})
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := mux.Vars(r)["slug"]

	post, err := s.posts.Get(ctx, slug)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			http.NotFound(w, r)
			return
		}
		s.logger.Error(ctx, "get post failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toPostPayload(post))
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cmd := parseCreatePostCommand(r)

	if fe := validation.PostFields(cmd.Title, cmd.Slug, cmd.Markdown); fe.Any() {
		writeFieldErrors(w, fe)
		return
	}

	post, err := s.posts.Create(ctx, cmd.Title, cmd.Slug, cmd.Markdown)
	if err != nil {
		if errors.Is(err, common.ErrSlugTaken) {
			writeFieldErrors(w, validation.FieldErrors{"slug": msgSlugExists})
			return
		}
		s.logger.Error(ctx, "create post failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.logger.Info(ctx, "post created", "slug", post.Slug)
	http.Redirect(w, r, "/posts/admin", http.StatusFound)
}

// handleAdminPost dispatches the per-post admin form, which multiplexes
// update and delete through an "action" field.
func (s *Server) handleAdminPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := mux.Vars(r)["slug"]

	switch r.PostFormValue("action") {
	case "update":
		cmd := parseUpdatePostCommand(r, slug)

		if fe := validation.PostFields(cmd.Title, cmd.NewSlug, cmd.Markdown); fe.Any() {
			writeFieldErrors(w, fe)
			return
		}

		post, err := s.posts.Update(ctx, cmd.CurrentSlug, cmd.Title, cmd.NewSlug, cmd.Markdown)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				http.NotFound(w, r)
				return
			}
			if errors.Is(err, common.ErrSlugTaken) {
				writeFieldErrors(w, validation.FieldErrors{"slug": msgSlugExists})
				return
			}
			s.logger.Error(ctx, "update post failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		s.logger.Info(ctx, "post updated", "slug", post.Slug)
		http.Redirect(w, r, "/posts/admin", http.StatusFound)

	case "delete":
		if err := s.posts.Delete(ctx, slug); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				http.NotFound(w, r)
				return
			}
			s.logger.Error(ctx, "delete post failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		s.logger.Info(ctx, "post deleted", "slug", slug)
		http.Redirect(w, r, "/posts/admin", http.StatusFound)

	default:
		http.Error(w, "unexpected action", http.StatusBadRequest)
	}
}
