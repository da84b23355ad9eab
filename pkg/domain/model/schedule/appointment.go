package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/fisclab/fiscaliza/pkg/utils/clock"
	"github.com/fisclab/fiscaliza/pkg/utils/user"
	"github.com/m-mizutani/goerr/v2"
)

// Appointment is a scheduled field action: survey, enforcement visit,
// meeting or hearing.
type Appointment struct {
	ID      types.AppointmentID     `json:"id"`
	Title   string                  `json:"title"`
	Address string                  `json:"address"`
	At      time.Time               `json:"at"`
	Kind    types.AppointmentKind   `json:"kind"`
	Status  types.AppointmentStatus `json:"status"`

	InspectorName string `json:"inspector_name"`
	Notes         string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func New(ctx context.Context, kind types.AppointmentKind) Appointment {
	now := clock.Now(ctx)
	return Appointment{
		ID:            types.NewAppointmentID(),
		Kind:          kind,
		Status:        types.AppointmentStatusScheduled,
		InspectorName: user.InspectorFromContext(ctx),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (x *Appointment) Validate() error {
	if err := x.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid appointment ID")
	}
	if err := x.Kind.Validate(); err != nil {
		return goerr.Wrap(err, "invalid kind")
	}
	if err := x.Status.Validate(); err != nil {
		return goerr.Wrap(err, "invalid status")
	}
	if x.Title == "" {
		return goerr.New("title is required")
	}
	if x.At.IsZero() {
		return goerr.New("appointment time is required")
	}
	return nil
}

type Appointments []*Appointment

type Query struct {
	Search string
	Status types.AppointmentStatus
}

func (x Appointments) Filter(q Query) Appointments {
	needle := strings.ToLower(q.Search)
	var out Appointments
	for _, a := range x {
		if q.Status != "" && a.Status != q.Status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(a.Title), needle) &&
			!strings.Contains(strings.ToLower(a.Address), needle) &&
			!strings.Contains(strings.ToLower(a.InspectorName), needle) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// OnDay returns the appointments falling on the same calendar day as t.
func (x Appointments) OnDay(t time.Time) Appointments {
	var out Appointments
	for _, a := range x {
		y1, m1, d1 := a.At.Date()
		y2, m2, d2 := t.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			out = append(out, a)
		}
	}
	return out
}
