package memory

import (
	"context"
	"sort"

	"github.com/fisclab/fiscaliza/pkg/domain/model/conduct"
	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

func (r *Memory) PutConduct(ctx context.Context, c conduct.Inspection) error {
	r.conductMu.Lock()
	defer r.conductMu.Unlock()

	if c.ID == types.EmptyConductID {
		return r.eb.New("conduct inspection ID is empty")
	}

	r.conducts[c.ID] = &c
	return nil
}

func (r *Memory) GetConduct(ctx context.Context, id types.ConductID) (*conduct.Inspection, error) {
	r.conductMu.RLock()
	defer r.conductMu.RUnlock()

	c, ok := r.conducts[id]
	if !ok {
		return nil, r.eb.New("conduct inspection not found", goerr.V("conduct_id", id))
	}

	inspectionCopy := *c
	return &inspectionCopy, nil
}

func (r *Memory) ListConducts(ctx context.Context) (conduct.Inspections, error) {
	r.conductMu.RLock()
	defer r.conductMu.RUnlock()

	out := make(conduct.Inspections, 0, len(r.conducts))
	for _, c := range r.conducts {
		inspectionCopy := *c
		out = append(out, &inspectionCopy)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
