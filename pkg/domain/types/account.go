package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

type UserID string

func (x UserID) String() string {
	return string(x)
}

func NewUserID() UserID {
	id, err := uuid.NewV7()
	if err != nil {
		panic(err)
	}
	return UserID(id.String())
}

func (x UserID) Validate() error {
	if x == EmptyUserID {
		return goerr.New("empty user ID")
	}
	if _, err := uuid.Parse(string(x)); err != nil {
		return goerr.Wrap(err, "invalid user ID format", goerr.V("id", x))
	}
	return nil
}

const (
	EmptyUserID UserID = ""
)

type UserRole string

const (
	UserRoleInspector  UserRole = "inspector"
	UserRoleSupervisor UserRole = "supervisor"
	UserRoleAdmin      UserRole = "admin"
)

var userRoleLabels = map[UserRole]string{
	UserRoleInspector:  "Fiscal",
	UserRoleSupervisor: "Supervisor",
	UserRoleAdmin:      "Administrador",
}

func (x UserRole) String() string {
	return string(x)
}

func (x UserRole) Label() string {
	return userRoleLabels[x]
}

func (x UserRole) Validate() error {
	switch x {
	case UserRoleInspector, UserRoleSupervisor, UserRoleAdmin:
		return nil
	}
	return goerr.New("invalid user role", goerr.V("role", x))
}
