package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

type AppointmentID string

func (x AppointmentID) String() string {
	return string(x)
}

func NewAppointmentID() AppointmentID {
	id, err := uuid.NewV7()
	if err != nil {
		panic(err)
	}
	return AppointmentID(id.String())
}

func (x AppointmentID) Validate() error {
	if x == EmptyAppointmentID {
		return goerr.New("empty appointment ID")
	}
	if _, err := uuid.Parse(string(x)); err != nil {
		return goerr.Wrap(err, "invalid appointment ID format", goerr.V("id", x))
	}
	return nil
}

const (
	EmptyAppointmentID AppointmentID = ""
)

type AppointmentKind string

const (
	AppointmentKindSurvey      AppointmentKind = "survey"
	AppointmentKindEnforcement AppointmentKind = "enforcement"
	AppointmentKindMeeting     AppointmentKind = "meeting"
	AppointmentKindHearing     AppointmentKind = "hearing"
)

var appointmentKindLabels = map[AppointmentKind]string{
	AppointmentKindSurvey:      "Vistoria",
	AppointmentKindEnforcement: "Fiscalização",
	AppointmentKindMeeting:     "Reunião",
	AppointmentKindHearing:     "Audiência",
}

func (x AppointmentKind) String() string {
	return string(x)
}

func (x AppointmentKind) Label() string {
	return appointmentKindLabels[x]
}

func (x AppointmentKind) Validate() error {
	switch x {
	case AppointmentKindSurvey, AppointmentKindEnforcement, AppointmentKindMeeting, AppointmentKindHearing:
		return nil
	}
	return goerr.New("invalid appointment kind", goerr.V("kind", x))
}

type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "scheduled"
	AppointmentStatusInProgress AppointmentStatus = "in_progress"
	AppointmentStatusDone       AppointmentStatus = "done"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
)

var appointmentStatusLabels = map[AppointmentStatus]string{
	AppointmentStatusScheduled:  "Agendado",
	AppointmentStatusInProgress: "Em andamento",
	AppointmentStatusDone:       "Concluído",
	AppointmentStatusCancelled:  "Cancelado",
}

func (x AppointmentStatus) String() string {
	return string(x)
}

func (x AppointmentStatus) Label() string {
	return appointmentStatusLabels[x]
}

func (x AppointmentStatus) Validate() error {
	switch x {
	case AppointmentStatusScheduled, AppointmentStatusInProgress, AppointmentStatusDone, AppointmentStatusCancelled:
		return nil
	}
	return goerr.New("invalid appointment status", goerr.V("status", x))
}
