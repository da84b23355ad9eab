package notice

import (
	"context"
	"strings"
	"time"

	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/fisclab/fiscaliza/pkg/utils/clock"
	"github.com/fisclab/fiscaliza/pkg/utils/user"
	"github.com/m-mizutani/goerr/v2"
)

// Notice is an enforcement record (autuação): a notification, summons,
// embargo or fine issued against a taxpayer. Status is the lifecycle axis
// set by the workflow; the time-based deadline class is always derived on
// read and never stored here.
type Notice struct {
	ID     types.NoticeID     `json:"id"`
	Number string             `json:"number"`
	Kind   types.NoticeKind   `json:"kind"`
	Status types.NoticeStatus `json:"status"`

	TaxpayerName string `json:"taxpayer_name"`
	TaxpayerID   string `json:"taxpayer_id" masq:"sensitive"`
	Address      string `json:"address"`

	// Description is the free-text violation narrative. It is unbounded and
	// drives pagination in the document renderer.
	Description   string `json:"description"`
	InspectorName string `json:"inspector_name"`

	// Amount is set for fines only. Absence means the amount sections are
	// omitted from list display and from the document.
	Amount *float64 `json:"amount,omitempty"`
	Notes  string   `json:"notes,omitempty"`

	IssuedAt time.Time `json:"issued_at"`
	DueAt    time.Time `json:"due_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func New(ctx context.Context, kind types.NoticeKind) Notice {
	now := clock.Now(ctx)
	return Notice{
		ID:            types.NewNoticeID(),
		Kind:          kind,
		Status:        types.NoticeStatusPending,
		InspectorName: user.InspectorFromContext(ctx),
		IssuedAt:      now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (x *Notice) Validate() error {
	if err := x.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid notice ID")
	}
	if err := x.Kind.Validate(); err != nil {
		return goerr.Wrap(err, "invalid kind")
	}
	if err := x.Status.Validate(); err != nil {
		return goerr.Wrap(err, "invalid status")
	}
	if x.TaxpayerName == "" {
		return goerr.New("taxpayer name is required")
	}
	if x.TaxpayerID == "" {
		return goerr.New("taxpayer ID is required")
	}
	if x.DueAt.IsZero() {
		return goerr.New("due date is required", goerr.V("notice_id", x.ID))
	}
	if !x.IssuedAt.IsZero() && x.IssuedAt.After(x.DueAt) {
		return goerr.New("issue date is after due date",
			goerr.V("issued_at", x.IssuedAt), goerr.V("due_at", x.DueAt))
	}
	return nil
}

// HasAmount reports whether a fine amount was set. Presence is explicit;
// a zero amount is still an amount.
func (x *Notice) HasAmount() bool {
	return x.Amount != nil
}

type Notices []*Notice

// Query filters a notice list the way the table view does: a case-folded
// substring search over taxpayer, address and number, and an optional
// lifecycle status.
type Query struct {
	Search string
	Status types.NoticeStatus
	Kind   types.NoticeKind
}

func (x Notices) Filter(q Query) Notices {
	needle := strings.ToLower(q.Search)
	var out Notices
	for _, n := range x {
		if q.Status != "" && n.Status != q.Status {
			continue
		}
		if q.Kind != "" && n.Kind != q.Kind {
			continue
		}
		if needle != "" && !n.matches(needle) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (x *Notice) matches(needle string) bool {
	return strings.Contains(strings.ToLower(x.TaxpayerName), needle) ||
		strings.Contains(strings.ToLower(x.Address), needle) ||
		strings.Contains(strings.ToLower(x.Number), needle)
}

func (x Notices) CountByStatus(status types.NoticeStatus) int {
	var n int
	for _, v := range x {
		if v.Status == status {
			n++
		}
	}
	return n
}

func (x Notices) CountByKind(kind types.NoticeKind) int {
	var n int
	for _, v := range x {
		if v.Kind == kind {
			n++
		}
	}
	return n
}

// TotalAmount sums the fine amounts of all records that carry one.
func (x Notices) TotalAmount() float64 {
	var total float64
	for _, v := range x {
		if v.HasAmount() {
			total += *v.Amount
		}
	}
	return total
}
