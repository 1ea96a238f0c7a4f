package adaptor

import (
	"net/http"

	"car-rental/internal/usecase"
	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

type TimelineHandler struct {
	service usecase.TimelineService
	log     *zap.Logger
}

func NewTimelineHandler(service usecase.TimelineService, log *zap.Logger) *TimelineHandler {
	return &TimelineHandler{
		service: service,
		log:     log.With(zap.String("handler", "timeline")),
	}
}

// GetTimeline handles GET /api/admin/timeline (admin only)
func (h *TimelineHandler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	carID := r.URL.Query().Get("carId")

	timeline, err := h.service.GetTimeline(r.Context(), carID)
	if err != nil {
		handleServiceError(w, h.log, err, "get timeline")
		return
	}

	utils.ResponseSuccess(w, "success", timeline)
}
