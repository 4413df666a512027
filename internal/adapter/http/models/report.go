package models

import (
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
)

type GeneralReportResponse struct {
	ActiveAccounts int64  `json:"activeAccounts"`
	TotalBalance   string `json:"totalBalance"`
	AverageBalance string `json:"averageBalance"`
	HighestBalance string `json:"highestBalance"`
	LowestBalance  string `json:"lowestBalance"`
}

type LowBalanceReportResponse struct {
	Threshold string            `json:"threshold"`
	Accounts  []AccountResponse `json:"accounts"`
}

type MovementSummaryResponse struct {
	OperationType string `json:"operationType"`
	Count         int64  `json:"count"`
	Total         string `json:"total"`
}

type MovementReportResponse struct {
	From      string                    `json:"from"`
	To        string                    `json:"to"`
	Movements []MovementSummaryResponse `json:"movements"`
}

func NewGeneralReportResponse(report domain.GeneralReport) GeneralReportResponse {
	return GeneralReportResponse{
		ActiveAccounts: report.ActiveAccounts,
		TotalBalance:   report.TotalBalance.StringFixed(2),
		AverageBalance: report.AverageBalance.StringFixed(2),
		HighestBalance: report.HighestBalance.StringFixed(2),
		LowestBalance:  report.LowestBalance.StringFixed(2),
	}
}

func NewMovementSummaryResponses(summaries []domain.MovementSummary) []MovementSummaryResponse {
	out := make([]MovementSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		out = append(out, MovementSummaryResponse{
			OperationType: string(summary.OperationType),
			Count:         summary.Count,
			Total:         summary.Total.StringFixed(2),
		})
	}
	return out
}
