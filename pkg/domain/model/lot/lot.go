package lot

import (
	"context"
	"strings"
	"time"

	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/fisclab/fiscaliza/pkg/utils/clock"
	"github.com/fisclab/fiscaliza/pkg/utils/user"
	"github.com/m-mizutani/goerr/v2"
)

// Lot is a surveyed vacant lot (terreno).
type Lot struct {
	ID        types.LotID        `json:"id"`
	Address   string             `json:"address"`
	Owner     string             `json:"owner"`
	Area      float64            `json:"area"`
	Status    types.LotStatus    `json:"status"`
	Condition types.LotCondition `json:"condition"`

	SurveyedAt    time.Time `json:"surveyed_at"`
	InspectorName string    `json:"inspector_name"`
	Notes         string    `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func New(ctx context.Context) Lot {
	now := clock.Now(ctx)
	return Lot{
		ID:            types.NewLotID(),
		Status:        types.LotStatusRegular,
		Condition:     types.LotConditionClean,
		InspectorName: user.InspectorFromContext(ctx),
		SurveyedAt:    now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (x *Lot) Validate() error {
	if err := x.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid lot ID")
	}
	if err := x.Status.Validate(); err != nil {
		return goerr.Wrap(err, "invalid status")
	}
	if err := x.Condition.Validate(); err != nil {
		return goerr.Wrap(err, "invalid condition")
	}
	if x.Address == "" {
		return goerr.New("address is required")
	}
	return nil
}

type Lots []*Lot

type Query struct {
	Search string
	Status types.LotStatus
}

func (x Lots) Filter(q Query) Lots {
	needle := strings.ToLower(q.Search)
	var out Lots
	for _, l := range x {
		if q.Status != "" && l.Status != q.Status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(l.Address), needle) &&
			!strings.Contains(strings.ToLower(l.Owner), needle) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func (x Lots) CountByStatus(status types.LotStatus) int {
	var n int
	for _, l := range x {
		if l.Status == status {
			n++
		}
	}
	return n
}
