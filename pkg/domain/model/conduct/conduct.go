package conduct

import (
	"context"
	"strings"
	"time"

	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/fisclab/fiscaliza/pkg/utils/clock"
	"github.com/fisclab/fiscaliza/pkg/utils/user"
	"github.com/m-mizutani/goerr/v2"
)

// Inspection is a business-conduct inspection (posturas municipais) of an
// establishment or event.
type Inspection struct {
	ID            types.ConductID     `json:"id"`
	Establishment string              `json:"establishment"`
	Address       string              `json:"address"`
	Owner         string              `json:"owner"`
	Business      types.BusinessKind  `json:"business"`
	Violation     string              `json:"violation"`
	Status        types.ConductStatus `json:"status"`

	InspectedAt   time.Time `json:"inspected_at"`
	Amount        *float64  `json:"amount,omitempty"`
	InspectorName string    `json:"inspector_name"`
	Notes         string    `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func New(ctx context.Context) Inspection {
	now := clock.Now(ctx)
	return Inspection{
		ID:            types.NewConductID(),
		Status:        types.ConductStatusRegular,
		InspectorName: user.InspectorFromContext(ctx),
		InspectedAt:   now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (x *Inspection) Validate() error {
	if err := x.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid conduct inspection ID")
	}
	if err := x.Status.Validate(); err != nil {
		return goerr.Wrap(err, "invalid status")
	}
	if err := x.Business.Validate(); err != nil {
		return goerr.Wrap(err, "invalid business kind")
	}
	if x.Establishment == "" {
		return goerr.New("establishment is required")
	}
	return nil
}

func (x *Inspection) HasAmount() bool {
	return x.Amount != nil
}

type Inspections []*Inspection

type Query struct {
	Search string
	Status types.ConductStatus
}

func (x Inspections) Filter(q Query) Inspections {
	needle := strings.ToLower(q.Search)
	var out Inspections
	for _, c := range x {
		if q.Status != "" && c.Status != q.Status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(c.Establishment), needle) &&
			!strings.Contains(strings.ToLower(c.Address), needle) &&
			!strings.Contains(strings.ToLower(c.Owner), needle) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (x Inspections) CountByStatus(status types.ConductStatus) int {
	var n int
	for _, c := range x {
		if c.Status == status {
			n++
		}
	}
	return n
}
