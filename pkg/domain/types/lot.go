package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

type LotID string

func (x LotID) String() string {
	return string(x)
}

func NewLotID() LotID {
	id, err := uuid.NewV7()
	if err != nil {
		panic(err)
	}
	return LotID(id.String())
}

func (x LotID) Validate() error {
	if x == EmptyLotID {
		return goerr.New("empty lot ID")
	}
	if _, err := uuid.Parse(string(x)); err != nil {
		return goerr.Wrap(err, "invalid lot ID format", goerr.V("id", x))
	}
	return nil
}

const (
	EmptyLotID LotID = ""
)

// LotStatus is the enforcement state of a vacant lot.
type LotStatus string

const (
	LotStatusRegular   LotStatus = "regular"
	LotStatusIrregular LotStatus = "irregular"
	LotStatusNotified  LotStatus = "notified"
	LotStatusFined     LotStatus = "fined"
)

var lotStatusLabels = map[LotStatus]string{
	LotStatusRegular:   "Regular",
	LotStatusIrregular: "Irregular",
	LotStatusNotified:  "Notificado",
	LotStatusFined:     "Multado",
}

func (x LotStatus) String() string {
	return string(x)
}

func (x LotStatus) Label() string {
	return lotStatusLabels[x]
}

func (x LotStatus) Validate() error {
	switch x {
	case LotStatusRegular, LotStatusIrregular, LotStatusNotified, LotStatusFined:
		return nil
	}
	return goerr.New("invalid lot status", goerr.V("status", x))
}

// LotCondition is the physical condition found during a lot survey.
type LotCondition string

const (
	LotConditionClean        LotCondition = "clean"
	LotConditionOvergrown    LotCondition = "overgrown"
	LotConditionDebris       LotCondition = "debris"
	LotConditionConstruction LotCondition = "irregular_construction"
)

var lotConditionLabels = map[LotCondition]string{
	LotConditionClean:        "Limpo",
	LotConditionOvergrown:    "Mato alto",
	LotConditionDebris:       "Entulho",
	LotConditionConstruction: "Construção irregular",
}

func (x LotCondition) String() string {
	return string(x)
}

func (x LotCondition) Label() string {
	return lotConditionLabels[x]
}

func (x LotCondition) Validate() error {
	switch x {
	case LotConditionClean, LotConditionOvergrown, LotConditionDebris, LotConditionConstruction:
		return nil
	}
	return goerr.New("invalid lot condition", goerr.V("condition", x))
}
