package usecase

import (
	"context"

	"github.com/fisclab/fiscaliza/pkg/service/report"
)

func (uc *UseCases) Dashboard(ctx context.Context) (*report.DashboardStats, error) {
	return uc.reports.Dashboard(ctx)
}

func (uc *UseCases) MonthlySummary(ctx context.Context) (*report.Summary, error) {
	return uc.reports.Summary(ctx)
}
