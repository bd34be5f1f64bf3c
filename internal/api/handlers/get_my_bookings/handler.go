package get_my_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
)

const msgMissingPrincipal = "требуется аутентификация"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/my
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/my - Missing principal")
		handlers.RespondUnauthorized(w, msgMissingPrincipal)
		return
	}

	result, err := h.service.GetUserBookings(r.Context(), principal.UserID)
	if err != nil {
		h.logger.Error("GET /bookings/my - Failed to list bookings: user_id=%d, error=%v", principal.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/my - Listed %d bookings: user_id=%d", result.Total, principal.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
