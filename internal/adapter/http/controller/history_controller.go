package controller

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/adapter/http/models"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/commons"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/usecase/service_interfaces"
)

const dateLayout = "2006-01-02"

type HistoryController struct {
	service service_interfaces.HistoryService
	ledger  service_interfaces.LedgerService
}

func NewHistoryController(service service_interfaces.HistoryService, ledger service_interfaces.LedgerService) *HistoryController {
	return &HistoryController{service: service, ledger: ledger}
}

func (c *HistoryController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(handler http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(handler)
		}
		return handler
	}

	mux.Handle("GET /historico/conta/{numero}", wrap(c.byAccount))
	mux.Handle("GET /historico/tipo/{tipo}", wrap(c.byType))
	mux.Handle("GET /historico/extrato/{numero}", wrap(c.statement))
	mux.Handle("POST /historico/admin/aplicar-taxa", wrap(c.applyMaintenanceFee))
}

func (c *HistoryController) byAccount(w http.ResponseWriter, r *http.Request) {
	number, ok := pathNumber(w, r, "numero")
	if !ok {
		return
	}

	from, to, ok := optionalPeriod(w, r)
	if !ok {
		return
	}

	entries, err := c.service.ByAccount(r.Context(), number, from, to)
	if err != nil {
		logError(r, err, fields("number", number))
		writeBusinessError[[]models.HistoryEntryResponse](w, err)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("history fetched successfully", models.NewHistoryEntryResponses(entries)))
}

func (c *HistoryController) byType(w http.ResponseWriter, r *http.Request) {
	raw := strings.ToUpper(strings.TrimSpace(r.PathValue("tipo")))
	operationType, ok := domain.ParseOperationType(raw)
	if !ok {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[[]models.HistoryEntryResponse]("validation failed", "unknown operation type "+raw))
		return
	}

	entries, err := c.service.ByType(r.Context(), operationType)
	if err != nil {
		logError(r, err, fields("operationType", raw))
		writeBusinessError[[]models.HistoryEntryResponse](w, err)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("history fetched successfully", models.NewHistoryEntryResponses(entries)))
}

func (c *HistoryController) statement(w http.ResponseWriter, r *http.Request) {
	number, ok := pathNumber(w, r, "numero")
	if !ok {
		return
	}

	from, to, ok := optionalPeriod(w, r)
	if !ok {
		return
	}

	statement, err := c.service.GetStatement(r.Context(), number, from, to)
	if err != nil {
		logError(r, err, fields("number", number))
		writeBusinessError[models.StatementResponse](w, err)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("statement fetched successfully", models.StatementResponse{
		Account: models.NewAccountResponse(statement.Account),
		Entries: models.NewHistoryEntryResponses(statement.Entries),
	}))
}

func (c *HistoryController) applyMaintenanceFee(w http.ResponseWriter, r *http.Request) {
	var req models.MaintenanceFeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.MaintenanceFeeResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	result, err := c.ledger.ApplyMaintenanceFee(r.Context(), req.Amount, req.Description)
	if err != nil {
		logError(r, err, fields("fee", req.Amount.String()))
		writeBusinessError[models.MaintenanceFeeResponse](w, err)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("maintenance fee applied successfully", models.MaintenanceFeeResponse{
		AccountsCharged: result.AccountsCharged,
		AccountsSkipped: result.AccountsSkipped,
		FeeAmount:       result.FeeAmount.StringFixed(2),
		TotalCharged:    result.TotalCharged.StringFixed(2),
	}))
}

// optionalPeriod reads inicio/fim query params as yyyy-MM-dd dates. The end
// bound is widened to the last instant of its day.
func optionalPeriod(w http.ResponseWriter, r *http.Request) (*time.Time, *time.Time, bool) {
	var from, to *time.Time

	if raw := strings.TrimSpace(r.URL.Query().Get("inicio")); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[[]models.HistoryEntryResponse]("validation failed", "inicio must use the yyyy-MM-dd format"))
			return nil, nil, false
		}
		from = &parsed
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("fim")); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[[]models.HistoryEntryResponse]("validation failed", "fim must use the yyyy-MM-dd format"))
			return nil, nil, false
		}
		endOfDay := parsed.Add(24*time.Hour - time.Nanosecond)
		to = &endOfDay
	}

	return from, to, true
}
