package dashboard

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/dashboard/service"
	"lodge/shared/constant"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Get("/arrivals", handler.GetArrivals)
		routerGroup.Get("/departures", handler.GetDepartures)
		routerGroup.Get("/due", handler.GetDueList)
	})
}

// GetArrivals lists the bookings checking in today.
// @Summary Get today's arrivals
// @Description Retrieve the bookings whose check-in date falls on today.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetDashboardBookingsResponse] "Today's arrivals"
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/arrivals [get]
func (handler *Handler) GetArrivals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArrivals")
	defer scope.End()

	arrivals, err := handler.service.Arrivals(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get arrivals")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Arrivals retrieved successfully")

	response.WithJSON(w, http.StatusOK, arrivals)
}

// GetDepartures lists the bookings checking out today.
// @Summary Get today's departures
// @Description Retrieve the bookings whose check-out date falls on today.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetDashboardBookingsResponse] "Today's departures"
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/departures [get]
func (handler *Handler) GetDepartures(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDepartures")
	defer scope.End()

	departures, err := handler.service.Departures(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get departures")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Departures retrieved successfully")

	response.WithJSON(w, http.StatusOK, departures)
}

// GetDueList lists the bookings with an outstanding balance.
// @Summary Get bookings with amounts due
// @Description Retrieve the bookings whose recorded payments fall short of the expected total.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetDashboardBookingsResponse] "Bookings with amounts due"
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/due [get]
func (handler *Handler) GetDueList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDueList")
	defer scope.End()

	dueList, err := handler.service.DueList(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get due list")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Due list retrieved successfully")

	response.WithJSON(w, http.StatusOK, dueList)
}
