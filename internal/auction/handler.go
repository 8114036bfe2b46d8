// AngelaMos | 2026
// handler.go

package auction

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/primebid/auction-api/internal/config"
	"github.com/primebid/auction-api/internal/core"
	"github.com/primebid/auction-api/internal/middleware"
	"github.com/primebid/auction-api/internal/storage"
)

type Handler struct {
	service    *Service
	validator  *validator.Validate
	storageCfg config.StorageConfig
}

func NewHandler(service *Service, storageCfg config.StorageConfig) *Handler {
	return &Handler{
		service:    service,
		validator:  validator.New(validator.WithRequiredStructEnabled()),
		storageCfg: storageCfg,
	}
}

// RegisterRoutes mounts the listing endpoints; the caller scopes the router
// to /auctionitem.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Get("/all", h.List)
	r.Get("/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuctioneer)
			r.Post("/create", h.Create)
			r.Post("/settle/{id}", h.Settle)
		})
	})
}

// RegisterAdminRoutes mounts listing removal; the caller scopes the router
// to /superadmin and gates it behind the super admin role.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Delete("/auctionitem/delete/{id}", h.Delete)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())
	if ownerID == "" {
		core.Unauthorized(w, "user not authenticated")
		return
	}

	if err := r.ParseMultipartForm(h.storageCfg.MaxUploadSize); err != nil {
		core.BadRequest(w, "invalid multipart form")
		return
	}

	startingBid, err := strconv.ParseFloat(r.FormValue("startingBid"), 64)
	if err != nil {
		core.BadRequest(w, "startingBid must be a number")
		return
	}

	startTime, err := time.Parse(time.RFC3339, r.FormValue("startTime"))
	if err != nil {
		core.BadRequest(w, "startTime must be an RFC 3339 timestamp")
		return
	}

	endTime, err := time.Parse(time.RFC3339, r.FormValue("endTime"))
	if err != nil {
		core.BadRequest(w, "endTime must be an RFC 3339 timestamp")
		return
	}

	req := CreateRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Condition:   r.FormValue("condition"),
		StartingBid: startingBid,
		StartTime:   startTime,
		EndTime:     endTime,
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		core.BadRequest(w, "Auction item image required.")
		return
	}
	defer file.Close()

	if !storage.AllowedImageType(header.Header.Get("Content-Type")) {
		core.BadRequest(w, "File format not supported.")
		return
	}

	resp, err := h.service.Create(r.Context(), ownerID, req, file)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.Created(w, resp)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, AuctionListResponse{Items: items})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, item)
}

func (h *Handler) Settle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	callerID := middleware.GetUserID(r.Context())
	if callerID == "" {
		core.Unauthorized(w, "user not authenticated")
		return
	}

	item, err := h.service.Settle(
		r.Context(),
		id,
		callerID,
		middleware.IsSuperAdmin(r.Context()),
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, item)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case core.IsAppError(err):
		core.JSONError(w, err)
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "auction item")
	default:
		core.InternalServerError(w, err)
	}
}
