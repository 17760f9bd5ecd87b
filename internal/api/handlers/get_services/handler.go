package get_services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SLN-BookingFlow/internal/api/handlers"
	"github.com/m04kA/SLN-BookingFlow/internal/service/catalog"
)

const (
	msgInvalidBranchID  = "некорректный ID филиала"
	msgBranchRejected   = "филиал не найден или недоступен"
	msgSalonUnavailable = "сервис салона временно недоступен, попробуйте ещё раз"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/branches/{branchId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branchIDStr := mux.Vars(r)["branchId"]
	branchID, err := strconv.ParseInt(branchIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /branches/{id}/services - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	categories, err := h.service.ListServices(r.Context(), branchID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /branches/{id}/services - Invalid input: branch_id=%d", branchID)
			handlers.RespondBadRequest(w, msgInvalidBranchID)

		case errors.Is(err, catalog.ErrBranchRejected):
			h.logger.Warn("GET /branches/{id}/services - Branch rejected: branch_id=%d", branchID)
			handlers.RespondNotFound(w, msgBranchRejected)

		case errors.Is(err, catalog.ErrSalonUnavailable):
			h.logger.Error("GET /branches/{id}/services - Salon API unavailable: branch_id=%d, error=%v", branchID, err)
			handlers.RespondBadGateway(w, msgSalonUnavailable)

		default:
			h.logger.Error("GET /branches/{id}/services - Failed to list services: branch_id=%d, error=%v", branchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /branches/{id}/services - Services retrieved: branch_id=%d, categories=%d",
		branchID, len(categories))
	handlers.RespondJSON(w, http.StatusOK, FromCategories(categories))
}
