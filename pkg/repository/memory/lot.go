package memory

import (
	"context"
	"sort"

	"github.com/fisclab/fiscaliza/pkg/domain/model/lot"
	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

func (r *Memory) PutLot(ctx context.Context, l lot.Lot) error {
	r.lotMu.Lock()
	defer r.lotMu.Unlock()

	if l.ID == types.EmptyLotID {
		return r.eb.New("lot ID is empty")
	}

	r.lots[l.ID] = &l
	return nil
}

func (r *Memory) GetLot(ctx context.Context, id types.LotID) (*lot.Lot, error) {
	r.lotMu.RLock()
	defer r.lotMu.RUnlock()

	l, ok := r.lots[id]
	if !ok {
		return nil, r.eb.New("lot not found", goerr.V("lot_id", id))
	}

	lotCopy := *l
	return &lotCopy, nil
}

func (r *Memory) ListLots(ctx context.Context) (lot.Lots, error) {
	r.lotMu.RLock()
	defer r.lotMu.RUnlock()

	out := make(lot.Lots, 0, len(r.lots))
	for _, l := range r.lots {
		lotCopy := *l
		out = append(out, &lotCopy)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
