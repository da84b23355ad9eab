package account

import (
	"context"
	"strings"
	"time"

	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/fisclab/fiscaliza/pkg/utils/clock"
	"github.com/m-mizutani/goerr/v2"
)

// User is a system operator: inspector, supervisor or administrator.
type User struct {
	ID         types.UserID   `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Role       types.UserRole `json:"role"`
	Department string         `json:"department"`
	Active     bool           `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func New(ctx context.Context, role types.UserRole) User {
	now := clock.Now(ctx)
	return User{
		ID:        types.NewUserID(),
		Role:      role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (x *User) Validate() error {
	if err := x.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid user ID")
	}
	if err := x.Role.Validate(); err != nil {
		return goerr.Wrap(err, "invalid role")
	}
	if x.Name == "" {
		return goerr.New("name is required")
	}
	if x.Email == "" {
		return goerr.New("email is required")
	}
	return nil
}

type Users []*User

type Query struct {
	Search string
	Role   types.UserRole
}

func (x Users) Filter(q Query) Users {
	needle := strings.ToLower(q.Search)
	var out Users
	for _, u := range x {
		if q.Role != "" && u.Role != q.Role {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(u.Name), needle) &&
			!strings.Contains(strings.ToLower(u.Email), needle) &&
			!strings.Contains(strings.ToLower(u.Department), needle) {
			continue
		}
		out = append(out, u)
	}
	return out
}

func (x Users) CountActive() int {
	var n int
	for _, u := range x {
		if u.Active {
			n++
		}
	}
	return n
}
