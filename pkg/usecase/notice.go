package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fisclab/fiscaliza/pkg/domain/model/errs"
	"github.com/fisclab/fiscaliza/pkg/domain/model/notice"
	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/fisclab/fiscaliza/pkg/utils/clock"
	"github.com/fisclab/fiscaliza/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// CreateNoticeInput carries the operator-entered fields of a new record.
// Number, inspector and timestamps are filled by the use case.
type CreateNoticeInput struct {
	Kind         types.NoticeKind
	TaxpayerName string
	TaxpayerID   string
	Address      string
	Description  string
	Amount       *float64
	Notes        string
	DueAt        string // DD/MM/YYYY
}

const dueDateLayout = "02/01/2006"

// CreateNotice files a new enforcement record. The document number is
// generated as {prefix}-{year}-{seq} with a per-year sequence, so numbers
// stay unique within the issuing year even across kinds.
func (uc *UseCases) CreateNotice(ctx context.Context, input CreateNoticeInput) (*notice.Notice, error) {
	n := notice.New(ctx, input.Kind)
	n.TaxpayerName = input.TaxpayerName
	n.TaxpayerID = input.TaxpayerID
	n.Address = input.Address
	n.Description = input.Description
	n.Amount = input.Amount
	n.Notes = input.Notes

	dueAt, err := parseDueDate(input.DueAt)
	if err != nil {
		return nil, err
	}
	n.DueAt = dueAt

	year := clock.Now(ctx).Year()
	seq, err := uc.repo.NextNoticeSequence(ctx, year)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to allocate notice number")
	}
	n.Number = fmt.Sprintf("%s-%d-%06d", input.Kind.NumberPrefix(), year, seq)

	if err := n.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid notice", goerr.T(errs.TagValidation))
	}
	if err := uc.repo.PutNotice(ctx, n); err != nil {
		return nil, goerr.Wrap(err, "failed to store notice")
	}

	logging.From(ctx).Info("notice created",
		"notice_id", n.ID,
		"number", n.Number,
		"kind", n.Kind,
	)
	return &n, nil
}

func (uc *UseCases) GetNotice(ctx context.Context, id types.NoticeID) (*notice.Notice, error) {
	return uc.repo.GetNotice(ctx, id)
}

func (uc *UseCases) ListNotices(ctx context.Context, query notice.Query) (notice.Notices, error) {
	notices, err := uc.repo.ListNotices(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list notices")
	}
	return notices.Filter(query), nil
}

// UpdateNotice replaces the stored record after validation. UpdatedAt is
// refreshed here so callers only change domain fields.
func (uc *UseCases) UpdateNotice(ctx context.Context, n notice.Notice) error {
	if err := n.Validate(); err != nil {
		return goerr.Wrap(err, "invalid notice", goerr.T(errs.TagValidation))
	}
	if _, err := uc.repo.GetNotice(ctx, n.ID); err != nil {
		return err
	}
	n.UpdatedAt = clock.Now(ctx)
	if err := uc.repo.PutNotice(ctx, n); err != nil {
		return goerr.Wrap(err, "failed to update notice")
	}

	logging.From(ctx).Info("notice updated", "notice_id", n.ID, "number", n.Number)
	return nil
}

// MarkNoticeFulfilled closes a pending record as complied with. Only
// pending records can transition; a cancelled record stays cancelled.
func (uc *UseCases) MarkNoticeFulfilled(ctx context.Context, id types.NoticeID) error {
	return uc.transition(ctx, id, types.NoticeStatusFulfilled)
}

// CancelNotice voids a pending record.
func (uc *UseCases) CancelNotice(ctx context.Context, id types.NoticeID) error {
	return uc.transition(ctx, id, types.NoticeStatusCancelled)
}

func (uc *UseCases) transition(ctx context.Context, id types.NoticeID, to types.NoticeStatus) error {
	n, err := uc.repo.GetNotice(ctx, id)
	if err != nil {
		return err
	}
	if n.Status != types.NoticeStatusPending {
		return goerr.New("notice is not pending",
			goerr.T(errs.TagConflict),
			goerr.V("notice_id", id),
			goerr.V("status", n.Status))
	}

	n.Status = to
	n.UpdatedAt = clock.Now(ctx)
	if err := uc.repo.PutNotice(ctx, *n); err != nil {
		return goerr.Wrap(err, "failed to store notice transition")
	}

	logging.From(ctx).Info("notice status changed",
		"notice_id", id,
		"number", n.Number,
		"status", to,
	)
	return nil
}

func (uc *UseCases) DeleteNotice(ctx context.Context, id types.NoticeID) error {
	if err := uc.repo.DeleteNotice(ctx, id); err != nil {
		return err
	}
	logging.From(ctx).Info("notice deleted", "notice_id", id)
	return nil
}

// ExportNoticePDF renders the statutory document and writes it under dir,
// returning the written path.
func (uc *UseCases) ExportNoticePDF(ctx context.Context, id types.NoticeID, dir string) (string, error) {
	n, err := uc.repo.GetNotice(ctx, id)
	if err != nil {
		return "", err
	}

	doc, err := uc.renderer.Render(ctx, n)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, doc.Filename)
	if err := os.WriteFile(path, doc.Bytes, 0600); err != nil {
		return "", goerr.Wrap(err, "failed to write document file",
			goerr.T(errs.TagDocument), goerr.V("path", path))
	}

	logging.From(ctx).Info("notice document exported",
		"notice_id", id,
		"path", path,
		"size", len(doc.Bytes),
	)
	return path, nil
}

func parseDueDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, goerr.New("due date is required", goerr.T(errs.TagValidation))
	}
	t, err := time.Parse(dueDateLayout, s)
	if err != nil {
		return time.Time{}, goerr.Wrap(err, "invalid due date, expected DD/MM/YYYY",
			goerr.T(errs.TagValidation), goerr.V("due_at", s))
	}
	return t, nil
}
