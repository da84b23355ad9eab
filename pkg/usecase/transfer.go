package usecase

import (
	"context"
	"io"

	"github.com/fisclab/fiscaliza/pkg/domain/model/errs"
	"github.com/fisclab/fiscaliza/pkg/domain/model/notice"
	"github.com/fisclab/fiscaliza/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// noticeArchive is the YAML document exchanged by dump and import.
type noticeArchive struct {
	Notices notice.Notices `yaml:"notices"`
}

// DumpNotices writes every record to w as YAML, in repository list order.
func (uc *UseCases) DumpNotices(ctx context.Context, w io.Writer) error {
	notices, err := uc.repo.ListNotices(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list notices for dump")
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(noticeArchive{Notices: notices}); err != nil {
		return goerr.Wrap(err, "failed to encode notices")
	}
	return nil
}

// ImportNotices loads records from a YAML archive produced by DumpNotices.
// Every record is validated before any write, so a bad archive imports
// nothing. Existing records with the same ID are overwritten.
func (uc *UseCases) ImportNotices(ctx context.Context, r io.Reader) (int, error) {
	var archive noticeArchive
	if err := yaml.NewDecoder(r).Decode(&archive); err != nil {
		return 0, goerr.Wrap(err, "failed to decode notice archive",
			goerr.T(errs.TagValidation))
	}

	for i := range archive.Notices {
		if err := archive.Notices[i].Validate(); err != nil {
			return 0, goerr.Wrap(err, "invalid notice in archive",
				goerr.T(errs.TagValidation), goerr.V("index", i))
		}
	}

	for _, n := range archive.Notices {
		if err := uc.repo.PutNotice(ctx, *n); err != nil {
			return 0, goerr.Wrap(err, "failed to store imported notice",
				goerr.V("notice_id", n.ID))
		}
	}

	logging.From(ctx).Info("notices imported", "count", len(archive.Notices))
	return len(archive.Notices), nil
}
