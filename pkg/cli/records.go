package cli

import (
	"context"
	"fmt"

	"github.com/fisclab/fiscaliza/pkg/domain/model/account"
	"github.com/fisclab/fiscaliza/pkg/domain/model/conduct"
	"github.com/fisclab/fiscaliza/pkg/domain/model/lot"
	"github.com/fisclab/fiscaliza/pkg/domain/model/schedule"
	"github.com/fisclab/fiscaliza/pkg/domain/model/work"
	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/fisclab/fiscaliza/pkg/service/document"
	"github.com/urfave/cli/v3"
)

// Listing commands for the record pages other than notices. Each mirrors
// the page's search box and status tab.

func listFlags(search, status *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "search",
			Aliases:     []string{"s"},
			Usage:       "Filter by free text",
			Destination: search,
		},
		&cli.StringFlag{
			Name:        "status",
			Usage:       "Filter by status",
			Destination: status,
		},
	}
}

func cmdWorks() *cli.Command {
	var search, status string

	return &cli.Command{
		Name:  "works",
		Usage: "Construction site records (obras)",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List construction sites",
				Flags: listFlags(&search, &status),
				Action: func(ctx context.Context, c *cli.Command) error {
					uc, err := newUseCases(ctx)
					if err != nil {
						return err
					}
					works, err := uc.ListWorks(ctx, work.Query{
						Search: search,
						Status: types.WorkStatus(status),
					})
					if err != nil {
						return err
					}

					fmt.Printf("%-40s %-28s %-12s %s\n", "ENDEREÇO", "RESPONSÁVEL", "ALVARÁ", "SITUAÇÃO")
					for _, w := range works {
						permit := w.PermitNumber
						if permit == "" {
							permit = "-"
						}
						fmt.Printf("%-40s %-28s %-12s %s\n", w.Address, w.Owner, permit, w.Status.Label())
					}
					fmt.Printf("\n%d obra(s)\n", len(works))
					return nil
				},
			},
		},
	}
}

func cmdLots() *cli.Command {
	var search, status string

	return &cli.Command{
		Name:  "lots",
		Usage: "Vacant lot records (terrenos)",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List surveyed lots",
				Flags: listFlags(&search, &status),
				Action: func(ctx context.Context, c *cli.Command) error {
					uc, err := newUseCases(ctx)
					if err != nil {
						return err
					}
					lots, err := uc.ListLots(ctx, lot.Query{
						Search: search,
						Status: types.LotStatus(status),
					})
					if err != nil {
						return err
					}

					fmt.Printf("%-40s %-28s %-10s %-16s %s\n", "ENDEREÇO", "PROPRIETÁRIO", "ÁREA (m²)", "CONDIÇÃO", "SITUAÇÃO")
					for _, l := range lots {
						fmt.Printf("%-40s %-28s %-10.0f %-16s %s\n",
							l.Address, l.Owner, l.Area, l.Condition.Label(), l.Status.Label())
					}
					fmt.Printf("\n%d terreno(s)\n", len(lots))
					return nil
				},
			},
		},
	}
}

func cmdConduct() *cli.Command {
	var search, status string

	return &cli.Command{
		Name:  "conduct",
		Usage: "Conduct inspection records (posturas)",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List conduct inspections",
				Flags: listFlags(&search, &status),
				Action: func(ctx context.Context, c *cli.Command) error {
					uc, err := newUseCases(ctx)
					if err != nil {
						return err
					}
					inspections, err := uc.ListConducts(ctx, conduct.Query{
						Search: search,
						Status: types.ConductStatus(status),
					})
					if err != nil {
						return err
					}

					fmt.Printf("%-32s %-14s %-34s %-12s %s\n", "ESTABELECIMENTO", "RAMO", "INFRAÇÃO", "VALOR", "SITUAÇÃO")
					for _, i := range inspections {
						amount := "-"
						if i.HasAmount() {
							amount = "R$ " + document.FormatCurrency(*i.Amount)
						}
						fmt.Printf("%-32s %-14s %-34s %-12s %s\n",
							i.Establishment, i.Business.Label(), i.Violation, amount, i.Status.Label())
					}
					fmt.Printf("\n%d inspeção(ões)\n", len(inspections))
					return nil
				},
			},
		},
	}
}

func cmdAgenda() *cli.Command {
	var search, status string

	return &cli.Command{
		Name:  "agenda",
		Usage: "Field schedule (vistorias, fiscalizações, reuniões, audiências)",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List appointments in chronological order",
				Flags: listFlags(&search, &status),
				Action: func(ctx context.Context, c *cli.Command) error {
					uc, err := newUseCases(ctx)
					if err != nil {
						return err
					}
					appointments, err := uc.ListAppointments(ctx, schedule.Query{
						Search: search,
						Status: types.AppointmentStatus(status),
					})
					if err != nil {
						return err
					}

					fmt.Printf("%-17s %-14s %-32s %-24s %s\n", "DATA/HORA", "TIPO", "TÍTULO", "FISCAL", "SITUAÇÃO")
					for _, a := range appointments {
						fmt.Printf("%-17s %-14s %-32s %-24s %s\n",
							a.At.Format("02/01/2006 15:04"), a.Kind.Label(), a.Title, a.InspectorName, a.Status.Label())
					}
					fmt.Printf("\n%d compromisso(s)\n", len(appointments))
					return nil
				},
			},
		},
	}
}

func cmdUsers() *cli.Command {
	var search, role string

	return &cli.Command{
		Name:  "users",
		Usage: "System operators",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List users",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "search",
						Aliases:     []string{"s"},
						Usage:       "Filter by name, e-mail or department",
						Destination: &search,
					},
					&cli.StringFlag{
						Name:        "role",
						Usage:       "Filter by role [inspector|supervisor|admin]",
						Destination: &role,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					uc, err := newUseCases(ctx)
					if err != nil {
						return err
					}
					users, err := uc.ListUsers(ctx, account.Query{
						Search: search,
						Role:   types.UserRole(role),
					})
					if err != nil {
						return err
					}

					fmt.Printf("%-26s %-34s %-14s %-22s %s\n", "NOME", "E-MAIL", "PERFIL", "DEPARTAMENTO", "ATIVO")
					for _, u := range users {
						active := "sim"
						if !u.Active {
							active = "não"
						}
						fmt.Printf("%-26s %-34s %-14s %-22s %s\n",
							u.Name, u.Email, u.Role.Label(), u.Department, active)
					}
					fmt.Printf("\n%d usuário(s), %d ativo(s)\n", len(users), users.CountActive())
					return nil
				},
			},
		},
	}
}
