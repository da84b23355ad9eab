package memory

import (
	"sync"

	"github.com/fisclab/fiscaliza/pkg/domain/interfaces"
	"github.com/fisclab/fiscaliza/pkg/domain/model/account"
	"github.com/fisclab/fiscaliza/pkg/domain/model/conduct"
	"github.com/fisclab/fiscaliza/pkg/domain/model/errs"
	"github.com/fisclab/fiscaliza/pkg/domain/model/lot"
	"github.com/fisclab/fiscaliza/pkg/domain/model/notice"
	"github.com/fisclab/fiscaliza/pkg/domain/model/schedule"
	"github.com/fisclab/fiscaliza/pkg/domain/model/work"
	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Memory holds the whole working set in process, mirroring the original
// system where all records were client-side state. There is no persistence
// behind it.
type Memory struct {
	noticeMu   sync.RWMutex
	workMu     sync.RWMutex
	lotMu      sync.RWMutex
	conductMu  sync.RWMutex
	scheduleMu sync.RWMutex
	userMu     sync.RWMutex

	notices      map[types.NoticeID]*notice.Notice
	works        map[types.WorkID]*work.Work
	lots         map[types.LotID]*lot.Lot
	conducts     map[types.ConductID]*conduct.Inspection
	appointments map[types.AppointmentID]*schedule.Appointment
	users        map[types.UserID]*account.User

	noticeSeq map[int]int

	eb *goerr.Builder
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		notices:      make(map[types.NoticeID]*notice.Notice),
		works:        make(map[types.WorkID]*work.Work),
		lots:         make(map[types.LotID]*lot.Lot),
		conducts:     make(map[types.ConductID]*conduct.Inspection),
		appointments: make(map[types.AppointmentID]*schedule.Appointment),
		users:        make(map[types.UserID]*account.User),
		noticeSeq:    make(map[int]int),
		eb:           goerr.NewBuilder(goerr.TV(errs.RepositoryKey, "memory")),
	}
}
