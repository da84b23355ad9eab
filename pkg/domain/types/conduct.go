package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

type ConductID string

func (x ConductID) String() string {
	return string(x)
}

func NewConductID() ConductID {
	id, err := uuid.NewV7()
	if err != nil {
		panic(err)
	}
	return ConductID(id.String())
}

func (x ConductID) Validate() error {
	if x == EmptyConductID {
		return goerr.New("empty conduct inspection ID")
	}
	if _, err := uuid.Parse(string(x)); err != nil {
		return goerr.Wrap(err, "invalid conduct inspection ID format", goerr.V("id", x))
	}
	return nil
}

const (
	EmptyConductID ConductID = ""
)

// ConductStatus is the enforcement state of a business-conduct inspection
// (posturas municipais).
type ConductStatus string

const (
	ConductStatusRegular   ConductStatus = "regular"
	ConductStatusIrregular ConductStatus = "irregular"
	ConductStatusNotified  ConductStatus = "notified"
	ConductStatusFined     ConductStatus = "fined"
)

var conductStatusLabels = map[ConductStatus]string{
	ConductStatusRegular:   "Regular",
	ConductStatusIrregular: "Irregular",
	ConductStatusNotified:  "Notificado",
	ConductStatusFined:     "Multado",
}

func (x ConductStatus) String() string {
	return string(x)
}

func (x ConductStatus) Label() string {
	return conductStatusLabels[x]
}

func (x ConductStatus) Validate() error {
	switch x {
	case ConductStatusRegular, ConductStatusIrregular, ConductStatusNotified, ConductStatusFined:
		return nil
	}
	return goerr.New("invalid conduct status", goerr.V("status", x))
}

// BusinessKind classifies the inspected establishment.
type BusinessKind string

const (
	BusinessKindCommerce   BusinessKind = "commerce"
	BusinessKindService    BusinessKind = "service"
	BusinessKindIndustrial BusinessKind = "industrial"
	BusinessKindEvent      BusinessKind = "event"
)

var businessKindLabels = map[BusinessKind]string{
	BusinessKindCommerce:   "Comércio",
	BusinessKindService:    "Serviço",
	BusinessKindIndustrial: "Industrial",
	BusinessKindEvent:      "Evento",
}

func (x BusinessKind) String() string {
	return string(x)
}

func (x BusinessKind) Label() string {
	return businessKindLabels[x]
}

func (x BusinessKind) Validate() error {
	switch x {
	case BusinessKindCommerce, BusinessKindService, BusinessKindIndustrial, BusinessKindEvent:
		return nil
	}
	return goerr.New("invalid business kind", goerr.V("kind", x))
}
