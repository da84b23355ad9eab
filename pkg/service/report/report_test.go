package report_test

import (
	"testing"
	"time"

	"github.com/fisclab/fiscaliza/pkg/domain/model/notice"
	"github.com/fisclab/fiscaliza/pkg/domain/model/schedule"
	"github.com/fisclab/fiscaliza/pkg/domain/model/work"
	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/fisclab/fiscaliza/pkg/repository/memory"
	"github.com/fisclab/fiscaliza/pkg/service/report"
	"github.com/fisclab/fiscaliza/pkg/utils/clock"
	"github.com/m-mizutani/gt"
)

var now = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func addNotice(t *testing.T, repo *memory.Memory, kind types.NoticeKind, status types.NoticeStatus, dueAt time.Time, amount *float64) {
	t.Helper()
	n := notice.Notice{
		ID:           types.NewNoticeID(),
		Number:       "NOT-2024-000001",
		Kind:         kind,
		Status:       status,
		TaxpayerName: "Contribuinte",
		TaxpayerID:   "000.000.000-00",
		Amount:       amount,
		IssuedAt:     dueAt.AddDate(0, -1, 0),
		DueAt:        dueAt,
		CreatedAt:    dueAt.AddDate(0, -1, 0),
	}
	gt.NoError(t, repo.PutNotice(t.Context(), n)).Required()
}

func TestDashboard(t *testing.T) {
	repo := memory.New()
	ctx := clock.Frozen(t.Context(), now)

	fine := 850.0
	addNotice(t, repo, types.NoticeKindNotification, types.NoticeStatusPending, now.AddDate(0, 0, 1), nil)  // due soon
	addNotice(t, repo, types.NoticeKindFine, types.NoticeStatusPending, now.AddDate(0, 0, -5), &fine)       // overdue
	addNotice(t, repo, types.NoticeKindEmbargo, types.NoticeStatusFulfilled, now.AddDate(0, 0, -10), nil)   // lifecycle wins
	addNotice(t, repo, types.NoticeKindNotification, types.NoticeStatusPending, now.AddDate(0, 0, 30), nil) // on track

	w := work.Work{ID: types.NewWorkID(), Owner: "Dono", Address: "Rua A", Status: types.WorkStatusIrregular, CreatedAt: now}
	gt.NoError(t, repo.PutWork(ctx, w)).Required()

	a := schedule.Appointment{
		ID:     types.NewAppointmentID(),
		Title:  "Vistoria",
		Kind:   types.AppointmentKindSurvey,
		Status: types.AppointmentStatusScheduled,
		At:     now.Add(2 * time.Hour),
	}
	gt.NoError(t, repo.PutAppointment(ctx, a)).Required()

	stats := gt.R1(report.New(repo).Dashboard(ctx)).NoError(t)
	gt.Number(t, stats.TotalNotices).Equal(4)
	gt.Number(t, stats.PendingNotices).Equal(3)
	gt.Number(t, stats.DueSoon).Equal(1)
	gt.Number(t, stats.Overdue).Equal(1)
	gt.Number(t, stats.IrregularWorks).Equal(1)
	gt.Number(t, stats.FinesIssued).Equal(1)
	gt.Number(t, stats.FineTotal).Equal(850.0)
	gt.Number(t, stats.AppointmentsToday).Equal(1)
}

func TestSummary(t *testing.T) {
	repo := memory.New()
	ctx := clock.Frozen(t.Context(), now)

	addNotice(t, repo, types.NoticeKindNotification, types.NoticeStatusPending, now.AddDate(0, 0, -1), nil)
	addNotice(t, repo, types.NoticeKindNotification, types.NoticeStatusFulfilled, now.AddDate(0, 0, -1), nil)
	addNotice(t, repo, types.NoticeKindSummons, types.NoticeStatusPending, now.AddDate(0, 1, 0), nil)

	s := gt.R1(report.New(repo).Summary(ctx)).NoError(t)
	gt.Number(t, s.ByClass[types.DeadlineOverdue]).Equal(1)
	gt.Number(t, s.ByClass[types.DeadlineFulfilled]).Equal(1)
	gt.Number(t, s.ByClass[types.DeadlineOnTrack]).Equal(1)
	gt.Number(t, s.ByKind[types.NoticeKindNotification]).Equal(2)
	gt.Number(t, s.FulfillmentRate).Equal(1.0 / 3.0)
}

func TestSummaryEmpty(t *testing.T) {
	repo := memory.New()
	ctx := clock.Frozen(t.Context(), now)

	s := gt.R1(report.New(repo).Summary(ctx)).NoError(t)
	gt.Number(t, s.FulfillmentRate).Equal(0.0)
	gt.Value(t, len(s.ByClass)).Equal(0)
}
