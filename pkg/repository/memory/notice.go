package memory

import (
	"context"
	"sort"
	"time"

	"github.com/fisclab/fiscaliza/pkg/domain/model/notice"
	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

func (r *Memory) PutNotice(ctx context.Context, n notice.Notice) error {
	r.noticeMu.Lock()
	defer r.noticeMu.Unlock()

	if n.ID == types.EmptyNoticeID {
		return r.eb.New("notice ID is empty")
	}

	// Store a copy to prevent external modification
	r.notices[n.ID] = &n
	return nil
}

func (r *Memory) GetNotice(ctx context.Context, id types.NoticeID) (*notice.Notice, error) {
	r.noticeMu.RLock()
	defer r.noticeMu.RUnlock()

	n, ok := r.notices[id]
	if !ok {
		return nil, r.eb.New("notice not found", goerr.V("notice_id", id))
	}

	noticeCopy := *n
	return &noticeCopy, nil
}

func (r *Memory) DeleteNotice(ctx context.Context, id types.NoticeID) error {
	r.noticeMu.Lock()
	defer r.noticeMu.Unlock()

	if _, ok := r.notices[id]; !ok {
		return r.eb.New("notice not found", goerr.V("notice_id", id))
	}

	delete(r.notices, id)
	return nil
}

func (r *Memory) ListNotices(ctx context.Context) (notice.Notices, error) {
	r.noticeMu.RLock()
	defer r.noticeMu.RUnlock()

	out := make(notice.Notices, 0, len(r.notices))
	for _, n := range r.notices {
		noticeCopy := *n
		out = append(out, &noticeCopy)
	}
	sortNotices(out)
	return out, nil
}

func (r *Memory) GetNoticesByStatus(ctx context.Context, status types.NoticeStatus) (notice.Notices, error) {
	r.noticeMu.RLock()
	defer r.noticeMu.RUnlock()

	var out notice.Notices
	for _, n := range r.notices {
		if n.Status != status {
			continue
		}
		noticeCopy := *n
		out = append(out, &noticeCopy)
	}
	sortNotices(out)
	return out, nil
}

// GetNoticesDueWithin returns notices whose deadline falls inside
// [begin, end], regardless of lifecycle status.
func (r *Memory) GetNoticesDueWithin(ctx context.Context, begin, end time.Time) (notice.Notices, error) {
	r.noticeMu.RLock()
	defer r.noticeMu.RUnlock()

	var out notice.Notices
	for _, n := range r.notices {
		if n.DueAt.Before(begin) || n.DueAt.After(end) {
			continue
		}
		noticeCopy := *n
		out = append(out, &noticeCopy)
	}
	sortNotices(out)
	return out, nil
}

func (r *Memory) NextNoticeSequence(ctx context.Context, year int) (int, error) {
	r.noticeMu.Lock()
	defer r.noticeMu.Unlock()

	r.noticeSeq[year]++
	return r.noticeSeq[year], nil
}

// Lists come back in a stable order: oldest first, ID as tie-breaker.
func sortNotices(ns notice.Notices) {
	sort.Slice(ns, func(i, j int) bool {
		if !ns[i].CreatedAt.Equal(ns[j].CreatedAt) {
			return ns[i].CreatedAt.Before(ns[j].CreatedAt)
		}
		return ns[i].ID < ns[j].ID
	})
}
