package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
)

// ReportService computes derived views over the account store and the
// history log. It never takes account locks: results are point-in-time
// snapshots and may miss in-flight transfers, which is acceptable for
// reporting.
type ReportService struct {
	accountRepo repo_interfaces.AccountRepository
	historyRepo repo_interfaces.HistoryRepository
}

func NewReportService(
	accountRepo repo_interfaces.AccountRepository,
	historyRepo repo_interfaces.HistoryRepository,
) *ReportService {
	return &ReportService{
		accountRepo: accountRepo,
		historyRepo: historyRepo,
	}
}

func (s *ReportService) General(ctx context.Context) (domain.GeneralReport, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return domain.GeneralReport{}, domain.StorageError(err)
	}

	report := domain.GeneralReport{
		TotalBalance:   decimal.Zero,
		AverageBalance: decimal.Zero,
		HighestBalance: decimal.Zero,
		LowestBalance:  decimal.Zero,
	}

	for _, account := range accounts {
		if !account.Active {
			continue
		}
		if report.ActiveAccounts == 0 {
			report.HighestBalance = account.Balance
			report.LowestBalance = account.Balance
		} else {
			if account.Balance.GreaterThan(report.HighestBalance) {
				report.HighestBalance = account.Balance
			}
			if account.Balance.LessThan(report.LowestBalance) {
				report.LowestBalance = account.Balance
			}
		}
		report.ActiveAccounts++
		report.TotalBalance = report.TotalBalance.Add(account.Balance)
	}

	if report.ActiveAccounts > 0 {
		report.AverageBalance = report.TotalBalance.
			Div(decimal.NewFromInt(report.ActiveAccounts)).
			Round(2)
	}

	return report, nil
}

// LowBalance lists active accounts whose balance is strictly below the
// caller-supplied threshold.
func (s *ReportService) LowBalance(ctx context.Context, threshold decimal.Decimal) ([]domain.Account, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, domain.StorageError(err)
	}

	out := make([]domain.Account, 0)
	for _, account := range accounts {
		if account.Active && account.Balance.LessThan(threshold) {
			out = append(out, account)
		}
	}
	return out, nil
}

func (s *ReportService) Movements(ctx context.Context, from, to time.Time) ([]domain.MovementSummary, error) {
	summaries, err := s.historyRepo.SummarizeBetween(ctx, from, to)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return summaries, nil
}
