package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/adapter/http/models"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/commons"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/usecase/service_interfaces"
)

type AccountController struct {
	service service_interfaces.LedgerService
	policy  domain.ClosePolicy
}

func NewAccountController(service service_interfaces.LedgerService, policy domain.ClosePolicy) *AccountController {
	return &AccountController{service: service, policy: policy}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(handler http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(handler)
		}
		return handler
	}

	mux.Handle("POST /contas", wrap(c.open))
	mux.Handle("GET /contas", wrap(c.list))
	mux.Handle("GET /contas/{numero}", wrap(c.get))
	mux.Handle("GET /contas/{numero}/saldo", wrap(c.balance))
	mux.Handle("POST /contas/{numero}/depositar", wrap(c.deposit))
	mux.Handle("POST /contas/{numero}/sacar", wrap(c.withdraw))
	mux.Handle("POST /contas/transferir", wrap(c.transfer))
	mux.Handle("DELETE /contas/{numero}", wrap(c.close))
}

func (c *AccountController) open(w http.ResponseWriter, r *http.Request) {
	var req models.OpenAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()))
		return
	}

	account, err := c.service.Open(r.Context(), req.Number, domain.Holder{
		Name:  req.Holder.Name,
		TaxID: req.Holder.TaxID,
		Email: req.Holder.Email,
	})
	if err != nil {
		logError(r, err, nil)
		writeBusinessError[models.AccountResponse](w, err)
		return
	}

	writeJSON(w, http.StatusCreated, commons.SuccessResponse("account opened successfully", models.NewAccountResponse(account)))
}

func (c *AccountController) list(w http.ResponseWriter, r *http.Request) {
	accounts, err := c.service.ListAccounts(r.Context())
	if err != nil {
		logError(r, err, nil)
		writeBusinessError[[]models.AccountResponse](w, err)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("accounts fetched successfully", models.NewAccountResponses(accounts)))
}

func (c *AccountController) get(w http.ResponseWriter, r *http.Request) {
	number, ok := pathNumber(w, r, "numero")
	if !ok {
		return
	}

	account, err := c.service.GetAccount(r.Context(), number)
	if err != nil {
		logError(r, err, fields("number", number))
		writeBusinessError[models.AccountResponse](w, err)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("account fetched successfully", models.NewAccountResponse(account)))
}

func (c *AccountController) balance(w http.ResponseWriter, r *http.Request) {
	number, ok := pathNumber(w, r, "numero")
	if !ok {
		return
	}

	balance, err := c.service.GetBalance(r.Context(), number)
	if err != nil {
		logError(r, err, fields("number", number))
		writeBusinessError[models.BalanceResponse](w, err)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("balance fetched successfully", models.BalanceResponse{
		Number:  number,
		Balance: balance.StringFixed(2),
	}))
}

func (c *AccountController) deposit(w http.ResponseWriter, r *http.Request) {
	number, ok := pathNumber(w, r, "numero")
	if !ok {
		return
	}

	var req models.MovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()))
		return
	}

	account, err := c.service.Deposit(r.Context(), number, req.Amount, req.Description)
	if err != nil {
		logError(r, err, fields("number", number))
		writeBusinessError[models.AccountResponse](w, err)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("deposit applied successfully", models.NewAccountResponse(account)))
}

func (c *AccountController) withdraw(w http.ResponseWriter, r *http.Request) {
	number, ok := pathNumber(w, r, "numero")
	if !ok {
		return
	}

	var req models.MovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()))
		return
	}

	account, err := c.service.Withdraw(r.Context(), number, req.Amount, req.Description)
	if err != nil {
		logError(r, err, fields("number", number))
		writeBusinessError[models.AccountResponse](w, err)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("withdrawal applied successfully", models.NewAccountResponse(account)))
}

func (c *AccountController) transfer(w http.ResponseWriter, r *http.Request) {
	var req models.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransferResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()))
		return
	}

	result, err := c.service.Transfer(r.Context(), req.FromNumber, req.ToNumber, req.Amount, req.Description)
	if err != nil {
		logError(r, err, fields("from", req.FromNumber, "to", req.ToNumber))
		writeBusinessError[models.TransferResponse](w, err)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("transfer applied successfully", models.TransferResponse{
		ReferenceID: result.ReferenceID,
		FromNumber:  result.From.Number,
		ToNumber:    result.To.Number,
		Amount:      result.Amount.StringFixed(2),
		FromBalance: result.From.Balance.StringFixed(2),
		ToBalance:   result.To.Balance.StringFixed(2),
	}))
}

func (c *AccountController) close(w http.ResponseWriter, r *http.Request) {
	number, ok := pathNumber(w, r, "numero")
	if !ok {
		return
	}

	_, err := c.service.Close(r.Context(), number)
	if err != nil {
		logError(r, err, fields("number", number))
		writeBusinessError[models.CloseAccountResponse](w, err)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("account closed successfully", models.CloseAccountResponse{
		Number: number,
		Policy: string(c.policy),
	}))
}

func pathNumber(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	number, err := strconv.Atoi(r.PathValue(name))
	if err != nil || number <= 0 {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("validation failed", name+" must be a positive integer"))
		return 0, false
	}
	return number, true
}
