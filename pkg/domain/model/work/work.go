package work

import (
	"context"
	"strings"
	"time"

	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/fisclab/fiscaliza/pkg/utils/clock"
	"github.com/fisclab/fiscaliza/pkg/utils/user"
	"github.com/m-mizutani/goerr/v2"
)

// Work is a tracked construction site (obra).
type Work struct {
	ID         types.WorkID     `json:"id"`
	Address    string           `json:"address"`
	Owner      string           `json:"owner"`
	OwnerTaxID string           `json:"owner_tax_id" masq:"sensitive"`
	Category   string           `json:"category"`
	Status     types.WorkStatus `json:"status"`

	StartedAt    time.Time `json:"started_at"`
	PermitNumber string    `json:"permit_number,omitempty"`
	Area         float64   `json:"area"`

	InspectorName string `json:"inspector_name"`
	Notes         string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func New(ctx context.Context) Work {
	now := clock.Now(ctx)
	return Work{
		ID:            types.NewWorkID(),
		Status:        types.WorkStatusUnderReview,
		InspectorName: user.InspectorFromContext(ctx),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (x *Work) Validate() error {
	if err := x.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid work ID")
	}
	if err := x.Status.Validate(); err != nil {
		return goerr.Wrap(err, "invalid status")
	}
	if x.Address == "" {
		return goerr.New("address is required")
	}
	if x.Owner == "" {
		return goerr.New("owner is required")
	}
	return nil
}

// HasPermit reports whether the site holds a building permit.
func (x *Work) HasPermit() bool {
	return x.PermitNumber != ""
}

type Works []*Work

type Query struct {
	Search string
	Status types.WorkStatus
}

func (x Works) Filter(q Query) Works {
	needle := strings.ToLower(q.Search)
	var out Works
	for _, w := range x {
		if q.Status != "" && w.Status != q.Status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(w.Address), needle) &&
			!strings.Contains(strings.ToLower(w.Owner), needle) &&
			!strings.Contains(strings.ToLower(w.Category), needle) {
			continue
		}
		out = append(out, w)
	}
	return out
}

func (x Works) CountByStatus(status types.WorkStatus) int {
	var n int
	for _, w := range x {
		if w.Status == status {
			n++
		}
	}
	return n
}
