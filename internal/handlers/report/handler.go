package report

import (
	"net/http"

	"innkeep/infras/otel"
	"innkeep/internal/domains/report/service"
	"innkeep/shared/constant"
	"innkeep/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/occupancy", handler.GetOccupancyReport)
		routerGroup.Get("/financial", handler.GetFinancialReport)
		routerGroup.Get("/guests", handler.GetGuestReport)
		routerGroup.Get("/staff", handler.GetStaffReport)
	})
}

func window(r *http.Request) (from, to string) {
	query := r.URL.Query()

	return query.Get(constant.RequestParamFrom), query.Get(constant.RequestParamTo)
}

// GetOccupancyReport reports per-room occupied days over a date window.
// @Summary Occupancy report
// @Description Per-room occupied days and revenue over the closed window [from, to]. Both endpoint days count.
// @Tags Report
// @Accept json
// @Produce json
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.OccupancyReport] "Occupancy report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/occupancy [get]
// @Security BearerAuth
func (handler *Handler) GetOccupancyReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupancyReport")
	defer scope.End()

	from, to := window(r)

	report, err := handler.service.Occupancy(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build occupancy report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Occupancy report built successfully")

	response.WithJSON(w, http.StatusOK, report)
}

// GetFinancialReport aggregates revenue and occupancy over a date window.
// @Summary Financial report
// @Description Revenue, booking count and occupancy rate over the closed window [from, to].
// @Tags Report
// @Accept json
// @Produce json
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.FinancialReport] "Financial report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/financial [get]
// @Security BearerAuth
func (handler *Handler) GetFinancialReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFinancialReport")
	defer scope.End()

	from, to := window(r)

	report, err := handler.service.Financial(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build financial report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Financial report built successfully")

	response.WithJSON(w, http.StatusOK, report)
}

// GetGuestReport summarizes guest activity over a date window.
// @Summary Guest report
// @Description Booking counts and nights per guest for stays sharing at least one day with the window.
// @Tags Report
// @Accept json
// @Produce json
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GuestReport] "Guest report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/guests [get]
// @Security BearerAuth
func (handler *Handler) GetGuestReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestReport")
	defer scope.End()

	from, to := window(r)

	report, err := handler.service.Guests(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build guest report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest report built successfully")

	response.WithJSON(w, http.StatusOK, report)
}

// GetStaffReport lists employees with tenure in whole months.
// @Summary Staff report
// @Description Every employee with position, salary and tenure in whole months as of today.
// @Tags Report
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.StaffReport] "Staff report"
// @Failure 500 {object} response.Error
// @Router /v1/reports/staff [get]
// @Security BearerAuth
func (handler *Handler) GetStaffReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaffReport")
	defer scope.End()

	report, err := handler.service.Staff(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build staff report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff report built successfully")

	response.WithJSON(w, http.StatusOK, report)
}
