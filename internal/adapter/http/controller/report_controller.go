package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/adapter/http/models"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/commons"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/usecase/service_interfaces"
)

type ReportController struct {
	service service_interfaces.ReportService
}

func NewReportController(service service_interfaces.ReportService) *ReportController {
	return &ReportController{service: service}
}

func (c *ReportController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(handler http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(handler)
		}
		return handler
	}

	mux.Handle("GET /relatorios/geral", wrap(c.general))
	mux.Handle("GET /relatorios/saldo-baixo", wrap(c.lowBalance))
	mux.Handle("GET /relatorios/movimentacoes", wrap(c.movements))
}

func (c *ReportController) general(w http.ResponseWriter, r *http.Request) {
	report, err := c.service.General(r.Context())
	if err != nil {
		logError(r, err, nil)
		writeBusinessError[models.GeneralReportResponse](w, err)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("general report computed successfully", models.NewGeneralReportResponse(report)))
}

func (c *ReportController) lowBalance(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("limite"))
	if raw == "" {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.LowBalanceReportResponse]("validation failed", "limite is required"))
		return
	}

	threshold, err := decimal.NewFromString(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.LowBalanceReportResponse]("validation failed", "limite must be a decimal number"))
		return
	}

	accounts, err := c.service.LowBalance(r.Context(), threshold)
	if err != nil {
		logError(r, err, fields("threshold", raw))
		writeBusinessError[models.LowBalanceReportResponse](w, err)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("low balance report computed successfully", models.LowBalanceReportResponse{
		Threshold: threshold.StringFixed(2),
		Accounts:  models.NewAccountResponses(accounts),
	}))
}

func (c *ReportController) movements(w http.ResponseWriter, r *http.Request) {
	fromRaw := strings.TrimSpace(r.URL.Query().Get("inicio"))
	toRaw := strings.TrimSpace(r.URL.Query().Get("fim"))
	if fromRaw == "" || toRaw == "" {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.MovementReportResponse]("validation failed", "inicio and fim are required"))
		return
	}

	from, err := time.Parse(dateLayout, fromRaw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.MovementReportResponse]("validation failed", "inicio must use the yyyy-MM-dd format"))
		return
	}
	to, err := time.Parse(dateLayout, toRaw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.MovementReportResponse]("validation failed", "fim must use the yyyy-MM-dd format"))
		return
	}
	to = to.Add(24*time.Hour - time.Nanosecond)

	summaries, err := c.service.Movements(r.Context(), from, to)
	if err != nil {
		logError(r, err, fields("from", fromRaw, "to", toRaw))
		writeBusinessError[models.MovementReportResponse](w, err)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("movement report computed successfully", models.MovementReportResponse{
		From:      fromRaw,
		To:        toRaw,
		Movements: models.NewMovementSummaryResponses(summaries),
	}))
}
