// AngelaMos | 2026
// handler.go

package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/primebid/auction-api/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes mounts the public user endpoints; the caller scopes the
// router to /user.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/leaderboard", h.Leaderboard)
}

// RegisterAdminRoutes mounts the provisioning endpoint; the caller scopes
// the router to /superadmin and gates it behind the super admin role.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/createsuperadmin", h.CreateSuperAdmin)
}

func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Leaderboard(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, LeaderboardResponse{Leaderboard: entries})
}

func (h *Handler) CreateSuperAdmin(w http.ResponseWriter, r *http.Request) {
	var req CreateSuperAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	resp, err := h.service.CreateSuperAdmin(r.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			core.JSONError(w, core.DuplicateError("email"))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, resp)
}
