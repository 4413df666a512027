package service_interfaces

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
)

type ReportService interface {
	General(ctx context.Context) (domain.GeneralReport, error)
	LowBalance(ctx context.Context, threshold decimal.Decimal) ([]domain.Account, error)
	Movements(ctx context.Context, from, to time.Time) ([]domain.MovementSummary, error)
}
