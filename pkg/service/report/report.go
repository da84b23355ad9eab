package report

import (
	"context"

	"github.com/fisclab/fiscaliza/pkg/domain/interfaces"
	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/fisclab/fiscaliza/pkg/service/deadline"
	"github.com/fisclab/fiscaliza/pkg/utils/clock"
	"github.com/m-mizutani/goerr/v2"
)

// Service aggregates repository state into the figures shown on the
// dashboard and the monthly summary. All numbers are recomputed per call;
// deadline classes depend on the context clock and must never be cached.
type Service struct {
	repo interfaces.Repository
}

func New(repo interfaces.Repository) *Service {
	return &Service{repo: repo}
}

// DashboardStats backs the stat cards on the landing view.
type DashboardStats struct {
	TotalNotices      int
	PendingNotices    int
	DueSoon           int
	Overdue           int
	IrregularWorks    int
	EmbargoedWorks    int
	FinesIssued       int
	FineTotal         float64
	AppointmentsToday int
}

func (x *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	notices, err := x.repo.ListNotices(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list notices for dashboard")
	}
	works, err := x.repo.ListWorks(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list works for dashboard")
	}
	appointments, err := x.repo.ListAppointments(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list appointments for dashboard")
	}

	stats := &DashboardStats{
		TotalNotices:      len(notices),
		PendingNotices:    notices.CountByStatus(types.NoticeStatusPending),
		FinesIssued:       notices.CountByKind(types.NoticeKindFine),
		FineTotal:         notices.TotalAmount(),
		IrregularWorks:    works.CountByStatus(types.WorkStatusIrregular),
		EmbargoedWorks:    works.CountByStatus(types.WorkStatusEmbargoed),
		AppointmentsToday: len(appointments.OnDay(clock.Now(ctx))),
	}

	for _, n := range notices {
		cls, err := deadline.ForNotice(ctx, n)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to classify notice for dashboard",
				goerr.V("notice_id", n.ID))
		}
		switch cls {
		case types.DeadlineDueSoon:
			stats.DueSoon++
		case types.DeadlineOverdue:
			stats.Overdue++
		}
	}

	return stats, nil
}

// Summary backs the Resumo do Mês report: deadline class and kind
// breakdowns plus the fulfillment rate across all records.
type Summary struct {
	ByClass         map[types.DeadlineClass]int
	ByKind          map[types.NoticeKind]int
	FineTotal       float64
	FulfillmentRate float64
}

func (x *Service) Summary(ctx context.Context) (*Summary, error) {
	notices, err := x.repo.ListNotices(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list notices for summary")
	}

	s := &Summary{
		ByClass:   map[types.DeadlineClass]int{},
		ByKind:    map[types.NoticeKind]int{},
		FineTotal: notices.TotalAmount(),
	}

	fulfilled := 0
	for _, n := range notices {
		cls, err := deadline.ForNotice(ctx, n)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to classify notice for summary",
				goerr.V("notice_id", n.ID))
		}
		s.ByClass[cls]++
		s.ByKind[n.Kind]++
		if n.Status == types.NoticeStatusFulfilled {
			fulfilled++
		}
	}
	if len(notices) > 0 {
		s.FulfillmentRate = float64(fulfilled) / float64(len(notices))
	}

	return s, nil
}
