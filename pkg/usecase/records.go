package usecase

import (
	"context"

	"github.com/fisclab/fiscaliza/pkg/domain/model/account"
	"github.com/fisclab/fiscaliza/pkg/domain/model/conduct"
	"github.com/fisclab/fiscaliza/pkg/domain/model/lot"
	"github.com/fisclab/fiscaliza/pkg/domain/model/schedule"
	"github.com/fisclab/fiscaliza/pkg/domain/model/work"
	"github.com/m-mizutani/goerr/v2"
)

// Listings for the record pages other than notices. Each applies the
// page's search and tab filter in memory after the repository read.

func (uc *UseCases) ListWorks(ctx context.Context, q work.Query) (work.Works, error) {
	works, err := uc.repo.ListWorks(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list works")
	}
	return works.Filter(q), nil
}

func (uc *UseCases) ListLots(ctx context.Context, q lot.Query) (lot.Lots, error) {
	lots, err := uc.repo.ListLots(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list lots")
	}
	return lots.Filter(q), nil
}

func (uc *UseCases) ListConducts(ctx context.Context, q conduct.Query) (conduct.Inspections, error) {
	inspections, err := uc.repo.ListConducts(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list conduct inspections")
	}
	return inspections.Filter(q), nil
}

func (uc *UseCases) ListAppointments(ctx context.Context, q schedule.Query) (schedule.Appointments, error) {
	appointments, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list appointments")
	}
	return appointments.Filter(q), nil
}

func (uc *UseCases) ListUsers(ctx context.Context, q account.Query) (account.Users, error) {
	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list users")
	}
	return users.Filter(q), nil
}
