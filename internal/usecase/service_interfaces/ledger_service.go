package service_interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/usecase/services"
)

type LedgerService interface {
	Open(ctx context.Context, number int, holderData domain.Holder) (domain.Account, error)
	Deposit(ctx context.Context, number int, amount decimal.Decimal, description string) (domain.Account, error)
	Withdraw(ctx context.Context, number int, amount decimal.Decimal, description string) (domain.Account, error)
	Transfer(ctx context.Context, fromNumber, toNumber int, amount decimal.Decimal, description string) (services.TransferResult, error)
	Close(ctx context.Context, number int) (domain.Account, error)
	ApplyMaintenanceFee(ctx context.Context, fee decimal.Decimal, description string) (services.MaintenanceFeeResult, error)
	GetAccount(ctx context.Context, number int) (domain.Account, error)
	GetBalance(ctx context.Context, number int) (decimal.Decimal, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
