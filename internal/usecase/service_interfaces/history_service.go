package service_interfaces

import (
	"context"
	"time"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/usecase/services"
)

type HistoryService interface {
	ByAccount(ctx context.Context, number int, from, to *time.Time) ([]domain.HistoryEntry, error)
	ByType(ctx context.Context, operationType domain.OperationType) ([]domain.HistoryEntry, error)
	GetStatement(ctx context.Context, number int, from, to *time.Time) (services.Statement, error)
}
