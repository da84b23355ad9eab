package types

import "github.com/m-mizutani/goerr/v2"

// DeadlineClass is the badge shown for a record in list and detail views.
// The three time-based classes are mutually exclusive; the two lifecycle
// classes override them when a record is no longer open.
type DeadlineClass string

const (
	DeadlineOnTrack   DeadlineClass = "on_track"
	DeadlineDueSoon   DeadlineClass = "due_soon"
	DeadlineOverdue   DeadlineClass = "overdue"
	DeadlineFulfilled DeadlineClass = "fulfilled"
	DeadlineCancelled DeadlineClass = "cancelled"
)

var deadlineClassLabels = map[DeadlineClass]string{
	DeadlineOnTrack:   "Dentro do prazo",
	DeadlineDueSoon:   "Vencendo",
	DeadlineOverdue:   "Vencida",
	DeadlineFulfilled: "Cumprida",
	DeadlineCancelled: "Cancelada",
}

var deadlineClassSeverities = map[DeadlineClass]Severity{
	DeadlineOnTrack:   SeverityNeutral,
	DeadlineDueSoon:   SeverityWarn,
	DeadlineOverdue:   SeverityDanger,
	DeadlineFulfilled: SeverityOK,
	DeadlineCancelled: SeverityNeutral,
}

func (x DeadlineClass) String() string {
	return string(x)
}

func (x DeadlineClass) Label() string {
	return deadlineClassLabels[x]
}

func (x DeadlineClass) Severity() Severity {
	return deadlineClassSeverities[x]
}

func (x DeadlineClass) Validate() error {
	switch x {
	case DeadlineOnTrack, DeadlineDueSoon, DeadlineOverdue, DeadlineFulfilled, DeadlineCancelled:
		return nil
	}
	return goerr.New("invalid deadline class", goerr.V("class", x))
}

// Severity is the visual weight of a badge.
type Severity string

const (
	SeverityOK      Severity = "ok"
	SeverityWarn    Severity = "warn"
	SeverityDanger  Severity = "danger"
	SeverityNeutral Severity = "neutral"
)

func (x Severity) String() string {
	return string(x)
}
