package memory

import (
	"context"
	"sort"

	"github.com/fisclab/fiscaliza/pkg/domain/model/schedule"
	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

func (r *Memory) PutAppointment(ctx context.Context, a schedule.Appointment) error {
	r.scheduleMu.Lock()
	defer r.scheduleMu.Unlock()

	if a.ID == types.EmptyAppointmentID {
		return r.eb.New("appointment ID is empty")
	}

	r.appointments[a.ID] = &a
	return nil
}

func (r *Memory) GetAppointment(ctx context.Context, id types.AppointmentID) (*schedule.Appointment, error) {
	r.scheduleMu.RLock()
	defer r.scheduleMu.RUnlock()

	a, ok := r.appointments[id]
	if !ok {
		return nil, r.eb.New("appointment not found", goerr.V("appointment_id", id))
	}

	appointmentCopy := *a
	return &appointmentCopy, nil
}

func (r *Memory) ListAppointments(ctx context.Context) (schedule.Appointments, error) {
	r.scheduleMu.RLock()
	defer r.scheduleMu.RUnlock()

	out := make(schedule.Appointments, 0, len(r.appointments))
	for _, a := range r.appointments {
		appointmentCopy := *a
		out = append(out, &appointmentCopy)
	}
	// Agenda order: soonest appointment first.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].At.Equal(out[j].At) {
			return out[i].At.Before(out[j].At)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
