package memory

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
	"github.com/m-mizutani/goerr/v2"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func amount(v float64) *float64 { return &v }

// NewSeeded builds a repository loaded with the demo working set, so every
// command has data to show without a backend.
func NewSeeded(ctx context.Context) (*Memory, error) {
	r := New()

	notices := []notice.Notice{
		{
			ID:            types.NewNoticeID(),
			Number:        "NOT-2024-001234",
			Kind:          types.NoticeKindNotification,
			Status:        types.NoticeStatusPending,
			Address:       "Rua das Flores, 123 - Centro",
			TaxpayerName:  "João da Silva Santos",
			TaxpayerID:    "123.456.789-00",
			Description:   "Construção sem alvará de obras. Necessário regularização junto à Secretaria de Obras.",
			IssuedAt:      date(2024, 1, 15),
			DueAt:         date(2024, 2, 15),
			InspectorName: "Maria Oliveira",
			Notes:         "Proprietário foi notificado pessoalmente",
			CreatedAt:     date(2024, 1, 15),
			UpdatedAt:     date(2024, 1, 15),
		},
		{
			ID:            types.NewNoticeID(),
			Number:        "INT-2024-005678",
			Kind:          types.NoticeKindSummons,
			Status:        types.NoticeStatusPending,
			Address:       "Av. Principal, 456 - Jardim América",
			TaxpayerName:  "Comercial ABC Ltda",
			TaxpayerID:    "12.345.678/0001-90",
			Description:   "Estabelecimento funcionando fora do horário permitido pela postura municipal.",
			IssuedAt:      date(2024, 1, 10),
			DueAt:         date(2024, 1, 25),
			InspectorName: "Carlos Santos",
			Amount:        amount(850.00),
			CreatedAt:     date(2024, 1, 10),
			UpdatedAt:     date(2024, 1, 10),
		},
		{
			ID:            types.NewNoticeID(),
			Number:        "EMB-2024-009876",
			Kind:          types.NoticeKindEmbargo,
			Status:        types.NoticeStatusFulfilled,
			Address:       "Rua Nova, 789 - Vila Esperança",
			TaxpayerName:  "Construtora XYZ",
			TaxpayerID:    "98.765.432/0001-10",
			Description:   "Obra embargada por não atender às normas de segurança e estar sem projeto aprovado.",
			IssuedAt:      date(2024, 1, 5),
			DueAt:         date(2024, 1, 20),
			InspectorName: "Ana Costa",
			Amount:        amount(2500.00),
			CreatedAt:     date(2024, 1, 5),
			UpdatedAt:     date(2024, 1, 20),
		},
	}
	for _, n := range notices {
		if err := r.PutNotice(ctx, n); err != nil {
			return nil, goerr.Wrap(err, "failed to seed notices")
		}
	}
	// Keep generated numbers clear of the seeded ones.
	r.noticeSeq[2024] = 9876

	works := []work.Work{
		{
			ID: types.NewWorkID(), Address: "Rua das Flores, 123 - Centro",
			Owner: "João Silva Santos", Category: "Residencial",
			Status: types.WorkStatusRegular, StartedAt: date(2024, 1, 15),
			PermitNumber: "ALV-2024-001", Area: 120.5,
			InspectorName: "Maria Oliveira", Notes: "Obra dentro das normas",
			CreatedAt: date(2024, 1, 15), UpdatedAt: date(2024, 1, 15),
		},
		{
			ID: types.NewWorkID(), Address: "Av. Principal, 456 - Jardim América",
			Owner: "Construtora ABC Ltda", Category: "Comercial",
			Status: types.WorkStatusIrregular, StartedAt: date(2024, 1, 20),
			Area:          350.0,
			InspectorName: "Carlos Santos", Notes: "Construção sem alvará",
			CreatedAt: date(2024, 1, 20), UpdatedAt: date(2024, 1, 20),
		},
		{
			ID: types.NewWorkID(), Address: "Rua Nova, 789 - Vila Esperança",
			Owner: "Construtora XYZ", Category: "Residencial",
			Status: types.WorkStatusEmbargoed, StartedAt: date(2024, 1, 10),
			Area:          180.0,
			InspectorName: "Ana Costa", Notes: "Obra embargada por não conformidade",
			CreatedAt: date(2024, 1, 10), UpdatedAt: date(2024, 1, 10),
		},
		{
			ID: types.NewWorkID(), Address: "Rua Central, 321 - Bairro Novo",
			Owner: "Pedro Oliveira", Category: "Reforma",
			Status: types.WorkStatusUnderReview, StartedAt: date(2024, 1, 25),
			Area:          95.0,
			InspectorName: "Maria Oliveira", Notes: "Aguardando documentação",
			CreatedAt: date(2024, 1, 25), UpdatedAt: date(2024, 1, 25),
		},
	}
	for _, w := range works {
		if err := r.PutWork(ctx, w); err != nil {
			return nil, goerr.Wrap(err, "failed to seed works")
		}
	}

	lots := []lot.Lot{
		{
			ID: types.NewLotID(), Address: "Rua Verde, 100 - Centro",
			Owner: "Maria Santos", Area: 450.0,
			Status: types.LotStatusRegular, Condition: types.LotConditionClean,
			SurveyedAt:    date(2024, 1, 15),
			InspectorName: "João Silva", Notes: "Terreno bem conservado",
			CreatedAt: date(2024, 1, 15), UpdatedAt: date(2024, 1, 15),
		},
		{
			ID: types.NewLotID(), Address: "Av. das Palmeiras, 200 - Vila Nova",
			Owner: "José Oliveira", Area: 300.0,
			Status: types.LotStatusIrregular, Condition: types.LotConditionOvergrown,
			SurveyedAt:    date(2024, 1, 20),
			InspectorName: "Ana Costa", Notes: "Mato alto, presença de mosquitos",
			CreatedAt: date(2024, 1, 20), UpdatedAt: date(2024, 1, 20),
		},
		{
			ID: types.NewLotID(), Address: "Rua da Paz, 150 - Jardim América",
			Owner: "Carlos Pereira", Area: 600.0,
			Status: types.LotStatusNotified, Condition: types.LotConditionDebris,
			SurveyedAt:    date(2024, 1, 18),
			InspectorName: "Maria Oliveira", Notes: "Descarte irregular de entulho",
			CreatedAt: date(2024, 1, 18), UpdatedAt: date(2024, 1, 18),
		},
		{
			ID: types.NewLotID(), Address: "Rua dos Ipês, 75 - Bairro Novo",
			Owner: "Antônio Silva", Area: 250.0,
			Status: types.LotStatusFined, Condition: types.LotConditionConstruction,
			SurveyedAt:    date(2024, 1, 12),
			InspectorName: "Carlos Santos", Notes: "Construção irregular no terreno",
			CreatedAt: date(2024, 1, 12), UpdatedAt: date(2024, 1, 12),
		},
	}
	for _, l := range lots {
		if err := r.PutLot(ctx, l); err != nil {
			return nil, goerr.Wrap(err, "failed to seed lots")
		}
	}

	conducts := []conduct.Inspection{
		{
			ID: types.NewConductID(), Establishment: "Padaria do João",
			Address: "Rua das Flores, 123 - Centro", Owner: "João Silva Santos",
			Business: types.BusinessKindCommerce, Violation: "Funcionamento dentro do horário permitido",
			Status: types.ConductStatusRegular, InspectedAt: date(2024, 1, 15),
			InspectorName: "Maria Oliveira",
			CreatedAt:     date(2024, 1, 15), UpdatedAt: date(2024, 1, 15),
		},
		{
			ID: types.NewConductID(), Establishment: "Bar e Restaurante Central",
			Address: "Av. Principal, 456 - Centro", Owner: "Carlos Pereira",
			Business: types.BusinessKindCommerce, Violation: "Som alto após 22h",
			Status: types.ConductStatusFined, InspectedAt: date(2024, 1, 20),
			Amount:        amount(500.00),
			InspectorName: "Ana Costa", Notes: "Reincidência - multa aplicada",
			CreatedAt: date(2024, 1, 20), UpdatedAt: date(2024, 1, 20),
		},
		{
			ID: types.NewConductID(), Establishment: "Oficina Mecânica Silva",
			Address: "Rua Industrial, 789 - Vila Nova", Owner: "José Silva",
			Business: types.BusinessKindService, Violation: "Funcionamento fora do horário permitido",
			Status: types.ConductStatusNotified, InspectedAt: date(2024, 1, 18),
			InspectorName: "Carlos Santos", Notes: "Funcionando aos domingos",
			CreatedAt: date(2024, 1, 18), UpdatedAt: date(2024, 1, 18),
		},
		{
			ID: types.NewConductID(), Establishment: "Festa Junina - Associação de Moradores",
			Address: "Praça Central - Centro", Owner: "Associação Bairro Centro",
			Business: types.BusinessKindEvent, Violation: "Evento sem autorização",
			Status: types.ConductStatusIrregular, InspectedAt: date(2024, 1, 22),
			InspectorName: "Maria Oliveira", Notes: "Evento realizado sem alvará",
			CreatedAt: date(2024, 1, 22), UpdatedAt: date(2024, 1, 22),
		},
	}
	for _, c := range conducts {
		if err := r.PutConduct(ctx, c); err != nil {
			return nil, goerr.Wrap(err, "failed to seed conduct inspections")
		}
	}

	appointments := []schedule.Appointment{
		{
			ID: types.NewAppointmentID(), Title: "Vistoria - Terreno Baldio",
			Address: "Rua das Flores, 123 - Centro",
			At:      time.Date(2024, 1, 25, 9, 0, 0, 0, time.Local),
			Kind:    types.AppointmentKindSurvey, Status: types.AppointmentStatusScheduled,
			InspectorName: "João Silva", Notes: "Primeira vistoria do terreno",
			CreatedAt: date(2024, 1, 22), UpdatedAt: date(2024, 1, 22),
		},
		{
			ID: types.NewAppointmentID(), Title: "Fiscalização - Bar Central",
			Address: "Av. Principal, 456 - Centro",
			At:      time.Date(2024, 1, 25, 14, 0, 0, 0, time.Local),
			Kind:    types.AppointmentKindEnforcement, Status: types.AppointmentStatusScheduled,
			InspectorName: "Ana Costa", Notes: "Reclamação de ruído",
			CreatedAt: date(2024, 1, 22), UpdatedAt: date(2024, 1, 22),
		},
		{
			ID: types.NewAppointmentID(), Title: "Reunião - Equipe de Fiscalização",
			Address: "Prefeitura Municipal",
			At:      time.Date(2024, 1, 26, 8, 30, 0, 0, time.Local),
			Kind:    types.AppointmentKindMeeting, Status: types.AppointmentStatusScheduled,
			InspectorName: "Todos", Notes: "Reunião semanal de planejamento",
			CreatedAt: date(2024, 1, 22), UpdatedAt: date(2024, 1, 22),
		},
	}
	for _, a := range appointments {
		if err := r.PutAppointment(ctx, a); err != nil {
			return nil, goerr.Wrap(err, "failed to seed appointments")
		}
	}

	users := []account.User{
		{
			ID: types.NewUserID(), Name: "João Silva Santos",
			Email: "joao.silva@prefeitura.gov.br", Role: types.UserRoleInspector,
			Department: "Obras", Active: true,
			CreatedAt: date(2020, 3, 15), UpdatedAt: date(2024, 1, 25),
		},
		{
			ID: types.NewUserID(), Name: "Ana Costa Oliveira",
			Email: "ana.costa@prefeitura.gov.br", Role: types.UserRoleInspector,
			Department: "Posturas", Active: true,
			CreatedAt: date(2019, 8, 20), UpdatedAt: date(2024, 1, 25),
		},
		{
			ID: types.NewUserID(), Name: "Carlos Santos Pereira",
			Email: "carlos.santos@prefeitura.gov.br", Role: types.UserRoleSupervisor,
			Department: "Administração", Active: true,
			CreatedAt: date(2018, 1, 10), UpdatedAt: date(2024, 1, 25),
		},
		{
			ID: types.NewUserID(), Name: "Maria Oliveira Silva",
			Email: "maria.oliveira@prefeitura.gov.br", Role: types.UserRoleInspector,
			Department: "Terrenos", Active: false,
			CreatedAt: date(2021, 6, 1), UpdatedAt: date(2024, 1, 20),
		},
	}
	for _, u := range users {
		if err := r.PutUser(ctx, u); err != nil {
			return nil, goerr.Wrap(err, "failed to seed users")
		}
	}

	return r, nil
}
