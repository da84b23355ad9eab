package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/fisclab/fiscaliza/pkg/domain/model/errs"
	"github.com/fisclab/fiscaliza/pkg/domain/model/notice"
	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/fisclab/fiscaliza/pkg/repository/memory"
	"github.com/fisclab/fiscaliza/pkg/service/deadline"
	"github.com/fisclab/fiscaliza/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, flag := range flags {
		result = append(result, flag...)
	}
	return result
}

// newUseCases builds the use case layer over the demo dataset. State lives
// for one invocation; the import/dump commands move records across runs.
func newUseCases(ctx context.Context) (*usecase.UseCases, error) {
	repo, err := memory.NewSeeded(ctx)
	if err != nil {
		return nil, err
	}
	return usecase.New(usecase.WithRepository(repo)), nil
}

var severityColors = map[types.Severity]*color.Color{
	types.SeverityOK:      color.New(color.FgGreen),
	types.SeverityWarn:    color.New(color.FgYellow),
	types.SeverityDanger:  color.New(color.FgRed, color.Bold),
	types.SeverityNeutral: color.New(color.FgHiBlack),
}

// deadlineBadge renders the colored deadline label for a record.
func deadlineBadge(ctx context.Context, n *notice.Notice) (string, error) {
	cls, err := deadline.ForNotice(ctx, n)
	if err != nil {
		return "", err
	}
	c, ok := severityColors[cls.Severity()]
	if !ok {
		return cls.Label(), nil
	}
	return c.Sprint(cls.Label()), nil
}

// resolveNotice accepts either a record ID or a document number.
func resolveNotice(ctx context.Context, uc *usecase.UseCases, key string) (*notice.Notice, error) {
	if key == "" {
		return nil, goerr.New("notice ID or number is required", goerr.T(errs.TagValidation))
	}

	id := types.NoticeID(key)
	if err := id.Validate(); err == nil {
		return uc.GetNotice(ctx, id)
	}

	notices, err := uc.ListNotices(ctx, notice.Query{})
	if err != nil {
		return nil, err
	}
	for _, n := range notices {
		if n.Number == key {
			return n, nil
		}
	}
	return nil, goerr.New("notice not found", goerr.T(errs.TagNotFound), goerr.V("key", key))
}
