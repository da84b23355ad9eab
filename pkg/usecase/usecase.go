package usecase

import (
	"github.com/fisclab/fiscaliza/pkg/domain/interfaces"
	"github.com/fisclab/fiscaliza/pkg/repository/memory"
	"github.com/fisclab/fiscaliza/pkg/service/document"
	"github.com/fisclab/fiscaliza/pkg/service/report"
)

// UseCases wires the repository and services behind the CLI commands.
type UseCases struct {
	repo     interfaces.Repository
	renderer *document.Renderer
	reports  *report.Service
}

type Option func(*UseCases)

func WithRepository(repo interfaces.Repository) Option {
	return func(u *UseCases) {
		u.repo = repo
	}
}

func WithRenderer(renderer *document.Renderer) Option {
	return func(u *UseCases) {
		u.renderer = renderer
	}
}

func New(opts ...Option) *UseCases {
	uc := &UseCases{}
	for _, opt := range opts {
		opt(uc)
	}
	if uc.repo == nil {
		uc.repo = memory.New()
	}
	if uc.renderer == nil {
		uc.renderer = document.New()
	}
	uc.reports = report.New(uc.repo)
	return uc
}
