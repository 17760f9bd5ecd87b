package get_staff

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

// Handle GET /api/v1/branches/{branchId}/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branchIDStr := mux.Vars(r)["branchId"]
	branchID, err := strconv.ParseInt(branchIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /branches/{id}/staff - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	employees, err := h.service.ListStaff(r.Context(), branchID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /branches/{id}/staff - Invalid input: branch_id=%d", branchID)
			handlers.RespondBadRequest(w, msgInvalidBranchID)

		case errors.Is(err, catalog.ErrBranchRejected):
			h.logger.Warn("GET /branches/{id}/staff - Branch rejected: branch_id=%d", branchID)
			handlers.RespondNotFound(w, msgBranchRejected)

		case errors.Is(err, catalog.ErrSalonUnavailable):
			h.logger.Error("GET /branches/{id}/staff - Salon API unavailable: branch_id=%d, error=%v", branchID, err)
			handlers.RespondBadGateway(w, msgSalonUnavailable)

		default:
			h.logger.Error("GET /branches/{id}/staff - Failed to list staff: branch_id=%d, error=%v", branchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /branches/{id}/staff - Staff retrieved: branch_id=%d, count=%d", branchID, len(employees))
	handlers.RespondJSON(w, http.StatusOK, FromEmployees(employees))
}
