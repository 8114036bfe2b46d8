// AngelaMos | 2026
// handler.go

package proof

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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

// RegisterRoutes mounts proof submission; the caller scopes the router to
// /proof.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Use(middleware.RequireAuctioneer)
		r.Post("/upload", h.Submit)
	})
}

// RegisterAdminRoutes mounts the review workflow; the caller scopes the
// router to /superadmin and gates it behind the super admin role.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/paymentproofs/getall", h.List)
	r.Get("/paymentproof/{id}", h.Get)
	r.Put("/paymentproof/status/update/{id}", h.UpdateStatus)
	r.Delete("/paymentproof/delete/{id}", h.Delete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	proofs, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ProofListResponse{PaymentProofs: proofs})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	proof, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, proof)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	proof, err := h.service.UpdateStatus(r.Context(), id, req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, proof)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "user not authenticated")
		return
	}

	if err := r.ParseMultipartForm(h.storageCfg.MaxUploadSize); err != nil {
		core.BadRequest(w, "invalid multipart form")
		return
	}

	amount, err := strconv.ParseFloat(r.FormValue("amount"), 64)
	if err != nil {
		core.BadRequest(w, "amount must be a number")
		return
	}

	req := SubmitRequest{
		Amount:  amount,
		Comment: r.FormValue("comment"),
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	file, header, err := r.FormFile("proof")
	if err != nil {
		core.BadRequest(w, "Payment proof screenshot required.")
		return
	}
	defer file.Close()

	if !storage.AllowedImageType(header.Header.Get("Content-Type")) {
		core.BadRequest(w, "File format not supported.")
		return
	}

	resp, err := h.service.Submit(r.Context(), userID, req, file)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.Created(w, resp)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case core.IsAppError(err):
		core.JSONError(w, err)
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "payment proof")
	default:
		core.InternalServerError(w, err)
	}
}
