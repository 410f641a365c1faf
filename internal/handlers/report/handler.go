package report

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/report/service"
	"lodge/shared/constant"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) *Handler {
	return &Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/revenue", handler.GetRevenue)
		routerGroup.Get("/revenue/export/csv", handler.ExportCSV)
		routerGroup.Get("/revenue/export/xlsx", handler.ExportXLSX)
	})
}

// GetRevenue computes the occupancy and revenue summary for a date window.
// @Summary Get revenue report
// @Description Compute the occupancy rate and estimated revenue over a date window. Defaults to the last 30 days.
// @Tags Report
// @Accept json
// @Produce json
// @Param from query string false "Window start (YYYY-MM-DD)"
// @Param to query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.RevenueSummary] "Revenue summary"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/revenue [get]
// @Security BearerAuth
func (handler *Handler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRevenue")
	defer scope.End()

	from := r.URL.Query().Get(constant.RequestParamFrom)
	to := r.URL.Query().Get(constant.RequestParamTo)

	summary, err := handler.service.Revenue(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute revenue report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Revenue report computed successfully")

	response.WithJSON(w, http.StatusOK, summary)
}

// ExportCSV downloads the enriched booking list as CSV.
// @Summary Export bookings as CSV
// @Description Download the enriched booking list as a CSV file.
// @Tags Report
// @Produce text/csv
// @Success 200 {file} file "CSV export"
// @Failure 500 {object} response.Error
// @Router /v1/reports/revenue/export/csv [get]
// @Security BearerAuth
func (handler *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportCSV")
	defer scope.End()

	fileName, data, err := handler.service.ExportCSV(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export bookings as CSV")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings exported as CSV")

	response.WithFile(w, fileName, constant.ContentTypeCSV, data)
}

// ExportXLSX downloads the enriched booking list as an Excel workbook.
// @Summary Export bookings as XLSX
// @Description Download the enriched booking list as an Excel workbook.
// @Tags Report
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "XLSX export"
// @Failure 500 {object} response.Error
// @Router /v1/reports/revenue/export/xlsx [get]
// @Security BearerAuth
func (handler *Handler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportXLSX")
	defer scope.End()

	fileName, data, err := handler.service.ExportXLSX(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export bookings as XLSX")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings exported as XLSX")

	response.WithFile(w, fileName, constant.ContentTypeXLSX, data)
}
