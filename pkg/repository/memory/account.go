package memory

import (
	"context"
	"sort"

	"github.com/fisclab/fiscaliza/pkg/domain/model/account"
	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

func (r *Memory) PutUser(ctx context.Context, u account.User) error {
	r.userMu.Lock()
	defer r.userMu.Unlock()

	if u.ID == types.EmptyUserID {
		return r.eb.New("user ID is empty")
	}

	r.users[u.ID] = &u
	return nil
}

func (r *Memory) GetUser(ctx context.Context, id types.UserID) (*account.User, error) {
	r.userMu.RLock()
	defer r.userMu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, r.eb.New("user not found", goerr.V("user_id", id))
	}

	userCopy := *u
	return &userCopy, nil
}

func (r *Memory) ListUsers(ctx context.Context) (account.Users, error) {
	r.userMu.RLock()
	defer r.userMu.RUnlock()

	out := make(account.Users, 0, len(r.users))
	for _, u := range r.users {
		userCopy := *u
		out = append(out, &userCopy)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
