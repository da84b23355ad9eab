package memory_test

import (
	"testing"
	"time"

	"github.com/fisclab/fiscaliza/pkg/domain/model/notice"
	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/fisclab/fiscaliza/pkg/repository/memory"
	"github.com/m-mizutani/gt"
)

func newNotice(number string, createdAt time.Time) notice.Notice {
	return notice.Notice{
		ID:           types.NewNoticeID(),
		Number:       number,
		Kind:         types.NoticeKindNotification,
		Status:       types.NoticeStatusPending,
		TaxpayerName: "Contribuinte Teste",
		TaxpayerID:   "000.000.000-00",
		IssuedAt:     createdAt,
		DueAt:        createdAt.AddDate(0, 1, 0),
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

func TestNoticeCRUD(t *testing.T) {
	repo := memory.New()
	ctx := t.Context()

	n := newNotice("NOT-2024-000001", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	gt.NoError(t, repo.PutNotice(ctx, n)).Required()

	t.Run("get returns a copy", func(t *testing.T) {
		got := gt.R1(repo.GetNotice(ctx, n.ID)).NoError(t)
		gt.Value(t, got.Number).Equal("NOT-2024-000001")

		got.TaxpayerName = "mutated"
		again := gt.R1(repo.GetNotice(ctx, n.ID)).NoError(t)
		gt.Value(t, again.TaxpayerName).Equal("Contribuinte Teste")
	})

	t.Run("update by put", func(t *testing.T) {
		n.Status = types.NoticeStatusFulfilled
		gt.NoError(t, repo.PutNotice(ctx, n))
		got := gt.R1(repo.GetNotice(ctx, n.ID)).NoError(t)
		gt.Value(t, got.Status).Equal(types.NoticeStatusFulfilled)
	})

	t.Run("delete removes the record", func(t *testing.T) {
		gt.NoError(t, repo.DeleteNotice(ctx, n.ID))
		_, err := repo.GetNotice(ctx, n.ID)
		gt.Error(t, err)
	})

	t.Run("unknown ID fails", func(t *testing.T) {
		_, err := repo.GetNotice(ctx, types.NewNoticeID())
		gt.Error(t, err)
		gt.Error(t, repo.DeleteNotice(ctx, types.NewNoticeID()))
	})

	t.Run("empty ID is rejected", func(t *testing.T) {
		var empty notice.Notice
		gt.Error(t, repo.PutNotice(ctx, empty))
	})
}

func TestListNoticesOrder(t *testing.T) {
	repo := memory.New()
	ctx := t.Context()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	third := newNotice("NOT-2024-000003", base.AddDate(0, 0, 2))
	first := newNotice("NOT-2024-000001", base)
	second := newNotice("NOT-2024-000002", base.AddDate(0, 0, 1))

	for _, n := range []notice.Notice{third, first, second} {
		gt.NoError(t, repo.PutNotice(ctx, n)).Required()
	}

	got := gt.R1(repo.ListNotices(ctx)).NoError(t)
	gt.Array(t, got).Length(3).Required()
	gt.Value(t, got[0].Number).Equal("NOT-2024-000001")
	gt.Value(t, got[1].Number).Equal("NOT-2024-000002")
	gt.Value(t, got[2].Number).Equal("NOT-2024-000003")
}

func TestGetNoticesByStatus(t *testing.T) {
	repo := memory.New()
	ctx := t.Context()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	pending := newNotice("NOT-2024-000001", base)
	done := newNotice("NOT-2024-000002", base.AddDate(0, 0, 1))
	done.Status = types.NoticeStatusFulfilled

	gt.NoError(t, repo.PutNotice(ctx, pending))
	gt.NoError(t, repo.PutNotice(ctx, done))

	got := gt.R1(repo.GetNoticesByStatus(ctx, types.NoticeStatusPending)).NoError(t)
	gt.Array(t, got).Length(1).Required()
	gt.Value(t, got[0].Number).Equal("NOT-2024-000001")
}

func TestGetNoticesDueWithin(t *testing.T) {
	repo := memory.New()
	ctx := t.Context()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	early := newNotice("NOT-2024-000001", base)
	early.DueAt = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	late := newNotice("NOT-2024-000002", base)
	late.DueAt = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	gt.NoError(t, repo.PutNotice(ctx, early))
	gt.NoError(t, repo.PutNotice(ctx, late))

	got := gt.R1(repo.GetNoticesDueWithin(ctx,
		time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
	)).NoError(t)
	gt.Array(t, got).Length(1).Required()
	gt.Value(t, got[0].Number).Equal("NOT-2024-000001")

	// Inclusive bounds on both ends.
	got = gt.R1(repo.GetNoticesDueWithin(ctx, early.DueAt, late.DueAt)).NoError(t)
	gt.Array(t, got).Length(2)
}

func TestNextNoticeSequence(t *testing.T) {
	repo := memory.New()
	ctx := t.Context()

	gt.Number(t, gt.R1(repo.NextNoticeSequence(ctx, 2024)).NoError(t)).Equal(1)
	gt.Number(t, gt.R1(repo.NextNoticeSequence(ctx, 2024)).NoError(t)).Equal(2)
	gt.Number(t, gt.R1(repo.NextNoticeSequence(ctx, 2025)).NoError(t)).Equal(1)
}

func TestNewSeeded(t *testing.T) {
	ctx := t.Context()
	repo := gt.R1(memory.NewSeeded(ctx)).NoError(t)

	notices := gt.R1(repo.ListNotices(ctx)).NoError(t)
	gt.Array(t, notices).Length(3)

	t.Run("get by ID per collection", func(t *testing.T) {
		works := gt.R1(repo.ListWorks(ctx)).NoError(t)
		w := gt.R1(repo.GetWork(ctx, works[0].ID)).NoError(t)
		gt.Value(t, w.Address).Equal(works[0].Address)

		lots := gt.R1(repo.ListLots(ctx)).NoError(t)
		l := gt.R1(repo.GetLot(ctx, lots[0].ID)).NoError(t)
		gt.Value(t, l.Owner).Equal(lots[0].Owner)

		inspections := gt.R1(repo.ListConducts(ctx)).NoError(t)
		i := gt.R1(repo.GetConduct(ctx, inspections[0].ID)).NoError(t)
		gt.Value(t, i.Establishment).Equal(inspections[0].Establishment)

		appointments := gt.R1(repo.ListAppointments(ctx)).NoError(t)
		a := gt.R1(repo.GetAppointment(ctx, appointments[0].ID)).NoError(t)
		gt.Value(t, a.Title).Equal(appointments[0].Title)

		users := gt.R1(repo.ListUsers(ctx)).NoError(t)
		u := gt.R1(repo.GetUser(ctx, users[0].ID)).NoError(t)
		gt.Value(t, u.Email).Equal(users[0].Email)
	})

	works := gt.R1(repo.ListWorks(ctx)).NoError(t)
	gt.Array(t, works).Length(4)

	lots := gt.R1(repo.ListLots(ctx)).NoError(t)
	gt.Array(t, lots).Length(4)

	conducts := gt.R1(repo.ListConducts(ctx)).NoError(t)
	gt.Array(t, conducts).Length(4)

	appointments := gt.R1(repo.ListAppointments(ctx)).NoError(t)
	gt.Array(t, appointments).Length(3)

	users := gt.R1(repo.ListUsers(ctx)).NoError(t)
	gt.Array(t, users).Length(4)

	// Seed data keeps the sequence clear of existing numbers.
	seq := gt.R1(repo.NextNoticeSequence(ctx, 2024)).NoError(t)
	gt.Number(t, seq).Equal(9877)
}
