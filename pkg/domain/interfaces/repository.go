package interfaces

import (
	"context"
	"time"

	"github.com/fisclab/fiscaliza/pkg/domain/model/account"
	"github.com/fisclab/fiscaliza/pkg/domain/model/conduct"
	"github.com/fisclab/fiscaliza/pkg/domain/model/lot"
	"github.com/fisclab/fiscaliza/pkg/domain/model/notice"
	"github.com/fisclab/fiscaliza/pkg/domain/model/schedule"
	"github.com/fisclab/fiscaliza/pkg/domain/model/work"
	"github.com/fisclab/fiscaliza/pkg/domain/types"
)

type Repository interface {
	PutNotice(ctx context.Context, n notice.Notice) error
	GetNotice(ctx context.Context, id types.NoticeID) (*notice.Notice, error)
	DeleteNotice(ctx context.Context, id types.NoticeID) error
	ListNotices(ctx context.Context) (notice.Notices, error)
	GetNoticesByStatus(ctx context.Context, status types.NoticeStatus) (notice.Notices, error)
	GetNoticesDueWithin(ctx context.Context, begin, end time.Time) (notice.Notices, error)
	// NextNoticeSequence advances and returns the per-year counter backing
	// document number generation.
	NextNoticeSequence(ctx context.Context, year int) (int, error)

	PutWork(ctx context.Context, w work.Work) error
	GetWork(ctx context.Context, id types.WorkID) (*work.Work, error)
	ListWorks(ctx context.Context) (work.Works, error)

	PutLot(ctx context.Context, l lot.Lot) error
	GetLot(ctx context.Context, id types.LotID) (*lot.Lot, error)
	ListLots(ctx context.Context) (lot.Lots, error)

	PutConduct(ctx context.Context, c conduct.Inspection) error
	GetConduct(ctx context.Context, id types.ConductID) (*conduct.Inspection, error)
	ListConducts(ctx context.Context) (conduct.Inspections, error)

	PutAppointment(ctx context.Context, a schedule.Appointment) error
	GetAppointment(ctx context.Context, id types.AppointmentID) (*schedule.Appointment, error)
	ListAppointments(ctx context.Context) (schedule.Appointments, error)

	PutUser(ctx context.Context, u account.User) error
	GetUser(ctx context.Context, id types.UserID) (*account.User, error)
	ListUsers(ctx context.Context) (account.Users, error)
}
