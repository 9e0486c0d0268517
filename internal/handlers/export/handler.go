package export

import (
	"net/http"

	"innkeep/infras/otel"
	"innkeep/internal/domains/export/service"
	"innkeep/shared/constant"
	"innkeep/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Export
	otel    otel.Otel
}

func New(service service.Export, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/exports", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateExport)
		routerGroup.Post("/reports", handler.CreateReportExport)
	})
}

// CreateExport builds and uploads an inventory workbook.
// @Summary Export hotel data
// @Description Build an Excel workbook with rooms, guests, employees and bookings, upload it to object storage and return the URL.
// @Tags Export
// @Accept json
// @Produce json
// @Success 201 {object} response.Data[dto.ExportResponse] "Export created successfully"
// @Failure 500 {object} response.Error
// @Router /v1/exports [post]
// @Security BearerAuth
func (handler *Handler) CreateExport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateExport")
	defer scope.End()

	result, err := handler.service.Workbook(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export workbook")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Export created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, result)
}

// CreateReportExport builds and uploads a report workbook for a date window.
// @Summary Export reports
// @Description Build an Excel workbook with the occupancy, financial and guest reports for the closed window [from, to], upload it to object storage and return the URL.
// @Tags Export
// @Accept json
// @Produce json
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD)"
// @Success 201 {object} response.Data[dto.ExportResponse] "Report export created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/exports/reports [post]
// @Security BearerAuth
func (handler *Handler) CreateReportExport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReportExport")
	defer scope.End()

	query := r.URL.Query()
	from := query.Get(constant.RequestParamFrom)
	to := query.Get(constant.RequestParamTo)

	result, err := handler.service.ReportWorkbook(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export report workbook")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Report export created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, result)
}
