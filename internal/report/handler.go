// AngelaMos | 2026
// handler.go

package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/primebid/auction-api/internal/core"
)

type MonthlyIncomeResponse struct {
	TotalMonthlyRevenue []float64 `json:"totalMonthlyRevenue"`
}

type UsersOverviewResponse struct {
	BiddersArray     []int `json:"biddersArray"`
	AuctioneersArray []int `json:"auctioneersArray"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes mounts the reporting endpoints; the caller scopes the
// router to /superadmin and gates it behind the super admin role.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/monthlyincome", h.MonthlyIncome)
	r.Get("/users/getall", h.UsersOverview)
}

func (h *Handler) MonthlyIncome(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.service.MonthlyIncome(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, MonthlyIncomeResponse{TotalMonthlyRevenue: revenue})
}

func (h *Handler) UsersOverview(w http.ResponseWriter, r *http.Request) {
	bidders, auctioneers, err := h.service.MonthlyRegistrations(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, UsersOverviewResponse{
		BiddersArray:     bidders,
		AuctioneersArray: auctioneers,
	})
}
