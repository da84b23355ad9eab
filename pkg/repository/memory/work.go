package memory

import (
	"context"
	"sort"

	"github.com/fisclab/fiscaliza/pkg/domain/model/work"
	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

func (r *Memory) PutWork(ctx context.Context, w work.Work) error {
	r.workMu.Lock()
	defer r.workMu.Unlock()

	if w.ID == types.EmptyWorkID {
		return r.eb.New("work ID is empty")
	}

	r.works[w.ID] = &w
	return nil
}

func (r *Memory) GetWork(ctx context.Context, id types.WorkID) (*work.Work, error) {
	r.workMu.RLock()
	defer r.workMu.RUnlock()

	w, ok := r.works[id]
	if !ok {
		return nil, r.eb.New("work not found", goerr.V("work_id", id))
	}

	workCopy := *w
	return &workCopy, nil
}

func (r *Memory) ListWorks(ctx context.Context) (work.Works, error) {
	r.workMu.RLock()
	defer r.workMu.RUnlock()

	out := make(work.Works, 0, len(r.works))
	for _, w := range r.works {
		workCopy := *w
		out = append(out, &workCopy)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
