// AngelaMos | 2026
// handler.go

package auth

import (
	"encoding/json"
	"errors"
	"net/http"
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
	jwtCfg     config.JWTConfig
	storageCfg config.StorageConfig
}

func NewHandler(
	service *Service,
	jwtCfg config.JWTConfig,
	storageCfg config.StorageConfig,
) *Handler {
	return &Handler{
		service:    service,
		validator:  validator.New(validator.WithRequiredStructEnabled()),
		jwtCfg:     jwtCfg,
		storageCfg: storageCfg,
	}
}

// RegisterRoutes mounts the account endpoints on the caller's router, which
// is expected to be scoped to /user.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Get("/logout", h.Logout)
		r.Get("/me", h.GetMe)
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.storageCfg.MaxUploadSize); err != nil {
		core.BadRequest(w, "invalid multipart form")
		return
	}

	req := RegisterRequest{
		UserName:               r.FormValue("userName"),
		Email:                  r.FormValue("email"),
		Phone:                  r.FormValue("phone"),
		Password:               r.FormValue("password"),
		Address:                r.FormValue("address"),
		Role:                   r.FormValue("role"),
		BankAccountName:        r.FormValue("bankAccountName"),
		BankAccountNumber:      r.FormValue("bankAccountNumber"),
		BankName:               r.FormValue("bankName"),
		EasypaisaAccountNumber: r.FormValue("easypaisaAccountNumber"),
		PaypalEmail:            r.FormValue("paypalEmail"),
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	file, header, err := r.FormFile("profileImage")
	if err != nil {
		core.BadRequest(w, "Profile image required.")
		return
	}
	defer file.Close()

	if !storage.AllowedImageType(header.Header.Get("Content-Type")) {
		core.BadRequest(w, "File format not supported.")
		return
	}

	resp, err := h.service.Register(r.Context(), req, file)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			core.JSONError(w, core.DuplicateError("email"))
			return
		}
		if core.IsAppError(err) {
			core.JSONError(w, err)
			return
		}
		core.InternalServerError(w, err)
		return
	}

	h.setSessionCookie(w, resp.Token, resp.ExpiresAt)
	core.Created(w, resp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			core.JSONError(
				w,
				core.UnauthorizedError("invalid email or password"),
			)
			return
		}
		core.InternalServerError(w, err)
		return
	}

	h.setSessionCookie(w, resp.Token, resp.ExpiresAt)
	core.OK(w, resp)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		core.Unauthorized(w, "user not authenticated")
		return
	}

	if err := h.service.Logout(
		r.Context(),
		claims.JTI,
		claims.ExpiresAt,
	); err != nil {
		core.InternalServerError(w, err)
		return
	}

	h.clearSessionCookie(w)
	core.OK(w, LogoutResponse{Message: "Logout successful."})
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "user not authenticated")
		return
	}

	user, err := h.service.GetCurrentUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "user")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, user)
}

func (h *Handler) setSessionCookie(
	w http.ResponseWriter,
	token string,
	expiresAt time.Time,
) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.jwtCfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.jwtCfg.CookieSecure,
		SameSite: h.cookieSameSite(),
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.jwtCfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.jwtCfg.CookieSecure,
		SameSite: h.cookieSameSite(),
	})
}

// Cross-site frontends need SameSite=None, which browsers only honor on
// Secure cookies. Plain-HTTP development falls back to Lax.
func (h *Handler) cookieSameSite() http.SameSite {
	if h.jwtCfg.CookieSecure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}
