package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/adapter/repository/memory"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/usecase/services"
)

func newReportFixture(t *testing.T) (fixture, *services.ReportService) {
	t.Helper()
	f := newFixture(domain.CloseSoft)
	return f, services.NewReportService(memory.NewAccountRepository(f.store), f.history)
}

func TestGeneralReportCountsOnlyActiveAccounts(t *testing.T) {
	f, reports := newReportFixture(t)
	mustOpen(t, f, 100, "11111111111")
	mustOpen(t, f, 200, "22222222222")
	mustOpen(t, f, 300, "33333333333")
	mustDeposit(t, f, 100, "100")
	mustDeposit(t, f, 200, "250")

	if _, err := f.ledger.Close(context.Background(), 300); err != nil {
		t.Fatalf("close: %v", err)
	}

	report, err := reports.General(context.Background())
	if err != nil {
		t.Fatalf("general report: %v", err)
	}

	if report.ActiveAccounts != 2 {
		t.Errorf("expected 2 active accounts, got %d", report.ActiveAccounts)
	}
	if report.TotalBalance.Cmp(dec("350")) != 0 {
		t.Errorf("expected total 350, got %s", report.TotalBalance)
	}
	if report.AverageBalance.Cmp(dec("175")) != 0 {
		t.Errorf("expected average 175, got %s", report.AverageBalance)
	}
	if report.HighestBalance.Cmp(dec("250")) != 0 {
		t.Errorf("expected highest 250, got %s", report.HighestBalance)
	}
	if report.LowestBalance.Cmp(dec("100")) != 0 {
		t.Errorf("expected lowest 100, got %s", report.LowestBalance)
	}
}

func TestGeneralReportAverageRounded(t *testing.T) {
	f, reports := newReportFixture(t)
	mustOpen(t, f, 100, "11111111111")
	mustOpen(t, f, 200, "22222222222")
	mustOpen(t, f, 300, "33333333333")
	mustDeposit(t, f, 100, "10")

	report, err := reports.General(context.Background())
	if err != nil {
		t.Fatalf("general report: %v", err)
	}
	if report.AverageBalance.Cmp(dec("3.33")) != 0 {
		t.Errorf("expected average 3.33, got %s", report.AverageBalance)
	}
}

func TestGeneralReportEmptyStore(t *testing.T) {
	_, reports := newReportFixture(t)

	report, err := reports.General(context.Background())
	if err != nil {
		t.Fatalf("general report: %v", err)
	}
	if report.ActiveAccounts != 0 {
		t.Errorf("expected 0 active accounts, got %d", report.ActiveAccounts)
	}
	if !report.TotalBalance.IsZero() || !report.AverageBalance.IsZero() {
		t.Errorf("expected zero totals, got total %s average %s", report.TotalBalance, report.AverageBalance)
	}
}

func TestLowBalanceStrictThreshold(t *testing.T) {
	f, reports := newReportFixture(t)
	mustOpen(t, f, 100, "11111111111")
	mustOpen(t, f, 200, "22222222222")
	mustOpen(t, f, 300, "33333333333")
	mustDeposit(t, f, 100, "50")
	mustDeposit(t, f, 200, "100")
	mustDeposit(t, f, 300, "150")

	accounts, err := reports.LowBalance(context.Background(), dec("100"))
	if err != nil {
		t.Fatalf("low balance: %v", err)
	}
	if len(accounts) != 1 {
		t.Fatalf("expected exactly the account below 100, got %d accounts", len(accounts))
	}
	if accounts[0].Number != 100 {
		t.Errorf("expected account 100, got %d", accounts[0].Number)
	}
}

func TestLowBalanceSkipsInactiveAccounts(t *testing.T) {
	f, reports := newReportFixture(t)
	mustOpen(t, f, 100, "11111111111")
	if _, err := f.ledger.Close(context.Background(), 100); err != nil {
		t.Fatalf("close: %v", err)
	}

	accounts, err := reports.LowBalance(context.Background(), dec("100"))
	if err != nil {
		t.Fatalf("low balance: %v", err)
	}
	if len(accounts) != 0 {
		t.Errorf("expected closed account excluded, got %d accounts", len(accounts))
	}
}

func TestMovementsGroupsByOperationType(t *testing.T) {
	f, reports := newReportFixture(t)
	mustOpen(t, f, 100, "11111111111")
	mustOpen(t, f, 200, "22222222222")
	mustDeposit(t, f, 100, "30")
	mustDeposit(t, f, 100, "20")
	mustDeposit(t, f, 200, "40")
	if _, err := f.ledger.Transfer(context.Background(), 100, 200, dec("10"), ""); err != nil {
		t.Fatalf("transfer: %v", err)
	}

	from := time.Now().UTC().Add(-time.Hour)
	to := time.Now().UTC().Add(time.Hour)
	summaries, err := reports.Movements(context.Background(), from, to)
	if err != nil {
		t.Fatalf("movements: %v", err)
	}

	byType := make(map[domain.OperationType]domain.MovementSummary, len(summaries))
	for _, summary := range summaries {
		byType[summary.OperationType] = summary
	}

	deposits, ok := byType[domain.OperationDeposit]
	if !ok {
		t.Fatal("expected a DEPOSIT summary")
	}
	if deposits.Count != 3 || deposits.Total.Cmp(dec("90")) != 0 {
		t.Errorf("expected 3 deposits totaling 90, got %d totaling %s", deposits.Count, deposits.Total)
	}

	out, ok := byType[domain.OperationTransferOut]
	if !ok {
		t.Fatal("expected a TRANSFER_OUT summary")
	}
	if out.Count != 1 || out.Total.Cmp(dec("10")) != 0 {
		t.Errorf("expected 1 outgoing transfer totaling 10, got %d totaling %s", out.Count, out.Total)
	}

	in, ok := byType[domain.OperationTransferIn]
	if !ok {
		t.Fatal("expected a TRANSFER_IN summary")
	}
	if in.Count != out.Count {
		t.Errorf("transfer legs must balance, got %d out and %d in", out.Count, in.Count)
	}
}

func TestMovementsOutsidePeriodEmpty(t *testing.T) {
	f, reports := newReportFixture(t)
	mustOpen(t, f, 100, "11111111111")
	mustDeposit(t, f, 100, "30")

	from := time.Now().UTC().Add(-2 * time.Hour)
	to := time.Now().UTC().Add(-time.Hour)
	summaries, err := reports.Movements(context.Background(), from, to)
	if err != nil {
		t.Fatalf("movements: %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("expected no summaries outside the period, got %d", len(summaries))
	}
}
