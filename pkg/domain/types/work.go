package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

type WorkID string

func (x WorkID) String() string {
	return string(x)
}

func NewWorkID() WorkID {
	id, err := uuid.NewV7()
	if err != nil {
		panic(err)
	}
	return WorkID(id.String())
}

func (x WorkID) Validate() error {
	if x == EmptyWorkID {
		return goerr.New("empty work ID")
	}
	if _, err := uuid.Parse(string(x)); err != nil {
		return goerr.Wrap(err, "invalid work ID format", goerr.V("id", x))
	}
	return nil
}

const (
	EmptyWorkID WorkID = ""
)

// WorkStatus is the regularity state of a construction site.
type WorkStatus string

const (
	WorkStatusRegular     WorkStatus = "regular"
	WorkStatusIrregular   WorkStatus = "irregular"
	WorkStatusEmbargoed   WorkStatus = "embargoed"
	WorkStatusUnderReview WorkStatus = "under_review"
)

var workStatusLabels = map[WorkStatus]string{
	WorkStatusRegular:     "Regular",
	WorkStatusIrregular:   "Irregular",
	WorkStatusEmbargoed:   "Embargada",
	WorkStatusUnderReview: "Em análise",
}

func (x WorkStatus) String() string {
	return string(x)
}

func (x WorkStatus) Label() string {
	return workStatusLabels[x]
}

func (x WorkStatus) Validate() error {
	switch x {
	case WorkStatusRegular, WorkStatusIrregular, WorkStatusEmbargoed, WorkStatusUnderReview:
		return nil
	}
	return goerr.New("invalid work status", goerr.V("status", x))
}
