package deadline_test

import (
	"testing"
	"time"

	"github.com/fisclab/fiscaliza/pkg/domain/model/notice"
	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/fisclab/fiscaliza/pkg/service/deadline"
	"github.com/fisclab/fiscaliza/pkg/utils/clock"
	"github.com/m-mizutani/gt"
)

var dueAt = time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want types.DeadlineClass
	}{
		{
			name: "four days before is on track",
			now:  dueAt.AddDate(0, 0, -4),
			want: types.DeadlineOnTrack,
		},
		{
			name: "two days before is due soon",
			now:  dueAt.AddDate(0, 0, -2),
			want: types.DeadlineDueSoon,
		},
		{
			name: "one second past the deadline is overdue",
			now:  dueAt.Add(time.Second),
			want: types.DeadlineOverdue,
		},
		{
			name: "window opens exactly three days before",
			now:  dueAt.AddDate(0, 0, -3),
			want: types.DeadlineDueSoon,
		},
		{
			name: "just before the window opens is still on track",
			now:  dueAt.AddDate(0, 0, -3).Add(-time.Second),
			want: types.DeadlineOnTrack,
		},
		{
			name: "exactly at the deadline is not yet overdue",
			now:  dueAt,
			want: types.DeadlineDueSoon,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := gt.R1(deadline.Classify(dueAt, tc.now)).NoError(t)
			gt.Value(t, got).Equal(tc.want)
		})
	}
}

func TestClassifyMissingDeadline(t *testing.T) {
	_, err := deadline.Classify(time.Time{}, time.Now())
	gt.Error(t, err)
}

func TestForNotice(t *testing.T) {
	base := notice.Notice{
		ID:     types.NewNoticeID(),
		Status: types.NoticeStatusPending,
		DueAt:  dueAt,
	}

	t.Run("open record follows the clock", func(t *testing.T) {
		ctx := clock.Frozen(t.Context(), dueAt.AddDate(0, 0, -10))
		n := base
		got := gt.R1(deadline.ForNotice(ctx, &n)).NoError(t)
		gt.Value(t, got).Equal(types.DeadlineOnTrack)

		ctx = clock.Frozen(t.Context(), dueAt.AddDate(0, 0, 10))
		got = gt.R1(deadline.ForNotice(ctx, &n)).NoError(t)
		gt.Value(t, got).Equal(types.DeadlineOverdue)
	})

	t.Run("fulfilled overrides the time axis", func(t *testing.T) {
		ctx := clock.Frozen(t.Context(), dueAt.AddDate(0, 0, 10))
		n := base
		n.Status = types.NoticeStatusFulfilled
		got := gt.R1(deadline.ForNotice(ctx, &n)).NoError(t)
		gt.Value(t, got).Equal(types.DeadlineFulfilled)
	})

	t.Run("cancelled overrides the time axis", func(t *testing.T) {
		ctx := clock.Frozen(t.Context(), dueAt.AddDate(0, 0, 10))
		n := base
		n.Status = types.NoticeStatusCancelled
		got := gt.R1(deadline.ForNotice(ctx, &n)).NoError(t)
		gt.Value(t, got).Equal(types.DeadlineCancelled)
	})

	t.Run("open record without deadline fails", func(t *testing.T) {
		n := base
		n.DueAt = time.Time{}
		_, err := deadline.ForNotice(t.Context(), &n)
		gt.Error(t, err)
	})
}

func TestClassLabels(t *testing.T) {
	gt.Value(t, types.DeadlineOnTrack.Label()).Equal("Dentro do prazo")
	gt.Value(t, types.DeadlineDueSoon.Label()).Equal("Vencendo")
	gt.Value(t, types.DeadlineOverdue.Label()).Equal("Vencida")
	gt.Value(t, types.DeadlineOverdue.Severity()).Equal(types.SeverityDanger)
	gt.Value(t, types.DeadlineDueSoon.Severity()).Equal(types.SeverityWarn)
}
