package deadline

import (
	"context"
	"time"

	"github.com/fisclab/fiscaliza/pkg/domain/model/errs"
	"github.com/fisclab/fiscaliza/pkg/domain/model/notice"
	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/fisclab/fiscaliza/pkg/utils/clock"
	"github.com/m-mizutani/goerr/v2"
)

// AlertWindow is the period before the due date during which a record is
// flagged as "Vencendo". Fixed by municipal practice, not configurable.
const AlertWindow = 72 * time.Hour

// Classify maps a due date and a reference instant to a time-based deadline
// class. The boundary rule: a record is overdue only strictly after its due
// date, so now == dueAt still classifies as due-soon ("due at end of dueAt"
// semantics). The alert window lower bound is inclusive.
func Classify(dueAt, now time.Time) (types.DeadlineClass, error) {
	if dueAt.IsZero() {
		return "", goerr.New("record has no deadline",
			goerr.T(errs.TagValidation))
	}

	if now.After(dueAt) {
		return types.DeadlineOverdue, nil
	}
	if !now.Before(dueAt.Add(-AlertWindow)) {
		return types.DeadlineDueSoon, nil
	}
	return types.DeadlineOnTrack, nil
}

// ForNotice returns the badge class for a record. A fulfilled or cancelled
// record shows its lifecycle state; only open records are classified against
// the clock. The result is recomputed on every call: "now" moves, so this
// must never be cached.
func ForNotice(ctx context.Context, n *notice.Notice) (types.DeadlineClass, error) {
	switch n.Status {
	case types.NoticeStatusFulfilled:
		return types.DeadlineFulfilled, nil
	case types.NoticeStatusCancelled:
		return types.DeadlineCancelled, nil
	}

	cls, err := Classify(n.DueAt, clock.Now(ctx))
	if err != nil {
		return "", goerr.Wrap(err, "failed to classify notice deadline",
			goerr.V("notice_id", n.ID))
	}
	return cls, nil
}
