package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fisclab/fiscaliza/pkg/domain/model/notice"
	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/fisclab/fiscaliza/pkg/service/document"
	"github.com/fisclab/fiscaliza/pkg/usecase"
	"github.com/fisclab/fiscaliza/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdNotice() *cli.Command {
	return &cli.Command{
		Name:    "notice",
		Aliases: []string{"n"},
		Usage:   "Manage enforcement records (notificações, intimações, embargos, multas)",
		Commands: []*cli.Command{
			cmdNoticeList(),
			cmdNoticeShow(),
			cmdNoticeNew(),
			cmdNoticeFulfill(),
			cmdNoticeCancel(),
			cmdNoticeDelete(),
			cmdNoticePDF(),
			cmdNoticeImport(),
			cmdNoticeDump(),
		},
	}
}

func cmdNoticeList() *cli.Command {
	var search, status, kind string

	return &cli.Command{
		Name:  "list",
		Usage: "List enforcement records",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "search",
				Aliases:     []string{"s"},
				Usage:       "Filter by taxpayer, address or number",
				Destination: &search,
			},
			&cli.StringFlag{
				Name:        "status",
				Usage:       "Filter by status [pending|fulfilled|cancelled]",
				Destination: &status,
			},
			&cli.StringFlag{
				Name:        "kind",
				Usage:       "Filter by kind [notification|summons|embargo|fine]",
				Destination: &kind,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newUseCases(ctx)
			if err != nil {
				return err
			}

			query := notice.Query{
				Search: search,
				Status: types.NoticeStatus(status),
				Kind:   types.NoticeKind(kind),
			}
			notices, err := uc.ListNotices(ctx, query)
			if err != nil {
				return err
			}

			fmt.Printf("%-18s %-14s %-32s %-12s %s\n", "NÚMERO", "TIPO", "CONTRIBUINTE", "VENCIMENTO", "SITUAÇÃO")
			for _, n := range notices {
				badge, err := deadlineBadge(ctx, n)
				if err != nil {
					return err
				}
				fmt.Printf("%-18s %-14s %-32s %-12s %s\n",
					n.Number, n.Kind.Label(), n.TaxpayerName, n.DueAt.Format("02/01/2006"), badge)
			}
			fmt.Printf("\n%d registro(s)\n", len(notices))
			return nil
		},
	}
}

func cmdNoticeShow() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show one record by ID or number",
		ArgsUsage: "<id|number>",
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newUseCases(ctx)
			if err != nil {
				return err
			}
			n, err := resolveNotice(ctx, uc, c.Args().First())
			if err != nil {
				return err
			}

			badge, err := deadlineBadge(ctx, n)
			if err != nil {
				return err
			}

			fmt.Printf("Número:        %s\n", n.Number)
			fmt.Printf("Tipo:          %s\n", n.Kind.Label())
			fmt.Printf("Situação:      %s (%s)\n", n.Status.Label(), badge)
			fmt.Printf("Contribuinte:  %s\n", n.TaxpayerName)
			fmt.Printf("CPF/CNPJ:      %s\n", n.TaxpayerID)
			fmt.Printf("Endereço:      %s\n", n.Address)
			fmt.Printf("Emissão:       %s\n", n.IssuedAt.Format("02/01/2006"))
			fmt.Printf("Vencimento:    %s\n", n.DueAt.Format("02/01/2006"))
			fmt.Printf("Fiscal:        %s\n", n.InspectorName)
			if n.HasAmount() {
				fmt.Printf("Valor:         R$ %s\n", document.FormatCurrency(*n.Amount))
			}
			fmt.Printf("Descrição:     %s\n", n.Description)
			if n.Notes != "" {
				fmt.Printf("Observações:   %s\n", n.Notes)
			}
			return nil
		},
	}
}

func cmdNoticeNew() *cli.Command {
	var input usecase.CreateNoticeInput
	var kind string
	var amount float64

	return &cli.Command{
		Name:  "new",
		Usage: "File a new enforcement record",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "kind",
				Usage:       "Record kind [notification|summons|embargo|fine]",
				Value:       string(types.NoticeKindNotification),
				Destination: &kind,
			},
			&cli.StringFlag{
				Name:        "taxpayer",
				Usage:       "Taxpayer name",
				Required:    true,
				Destination: &input.TaxpayerName,
			},
			&cli.StringFlag{
				Name:        "taxpayer-id",
				Usage:       "Taxpayer CPF/CNPJ",
				Required:    true,
				Destination: &input.TaxpayerID,
			},
			&cli.StringFlag{
				Name:        "address",
				Usage:       "Address of the violation",
				Destination: &input.Address,
			},
			&cli.StringFlag{
				Name:        "description",
				Usage:       "Violation narrative",
				Destination: &input.Description,
			},
			&cli.FloatFlag{
				Name:        "amount",
				Usage:       "Fine amount in BRL (fines only)",
				Destination: &amount,
			},
			&cli.StringFlag{
				Name:        "notes",
				Usage:       "Internal observations",
				Destination: &input.Notes,
			},
			&cli.StringFlag{
				Name:        "due",
				Usage:       "Due date as DD/MM/YYYY",
				Required:    true,
				Destination: &input.DueAt,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newUseCases(ctx)
			if err != nil {
				return err
			}

			input.Kind = types.NoticeKind(kind)
			if err := input.Kind.Validate(); err != nil {
				return err
			}
			if c.IsSet("amount") {
				input.Amount = &amount
			}

			n, err := uc.CreateNotice(ctx, input)
			if err != nil {
				return err
			}
			fmt.Printf("Registro criado: %s (%s)\n", n.Number, n.ID)
			return nil
		},
	}
}

func cmdNoticeFulfill() *cli.Command {
	return noticeTransitionCommand("fulfill", "Mark a record as complied with", "Registro cumprido",
		func(ctx context.Context, uc *usecase.UseCases, id types.NoticeID) error {
			return uc.MarkNoticeFulfilled(ctx, id)
		})
}

func cmdNoticeCancel() *cli.Command {
	return noticeTransitionCommand("cancel", "Void a pending record", "Registro cancelado",
		func(ctx context.Context, uc *usecase.UseCases, id types.NoticeID) error {
			return uc.CancelNotice(ctx, id)
		})
}

func cmdNoticeDelete() *cli.Command {
	return noticeTransitionCommand("delete", "Delete a record", "Registro removido",
		func(ctx context.Context, uc *usecase.UseCases, id types.NoticeID) error {
			return uc.DeleteNotice(ctx, id)
		})
}

func noticeTransitionCommand(name, usage, doneMsg string, fn func(context.Context, *usecase.UseCases, types.NoticeID) error) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<id|number>",
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newUseCases(ctx)
			if err != nil {
				return err
			}
			n, err := resolveNotice(ctx, uc, c.Args().First())
			if err != nil {
				return err
			}
			if err := fn(ctx, uc, n.ID); err != nil {
				return err
			}
			fmt.Printf("%s: %s\n", doneMsg, n.Number)
			return nil
		},
	}
}

func cmdNoticePDF() *cli.Command {
	var outDir string

	return &cli.Command{
		Name:      "pdf",
		Usage:     "Render the statutory document as PDF",
		ArgsUsage: "<id|number>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"d"},
				Usage:       "Output directory",
				Value:       ".",
				Destination: &outDir,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newUseCases(ctx)
			if err != nil {
				return err
			}
			n, err := resolveNotice(ctx, uc, c.Args().First())
			if err != nil {
				return err
			}
			path, err := uc.ExportNoticePDF(ctx, n.ID, outDir)
			if err != nil {
				return err
			}
			fmt.Printf("Documento gerado: %s\n", path)
			return nil
		},
	}
}

func cmdNoticeImport() *cli.Command {
	var file string

	return &cli.Command{
		Name:  "import",
		Usage: "Import records from a YAML archive",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"i"},
				Usage:       "Archive path ('-' for stdin)",
				Value:       "-",
				Destination: &file,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newUseCases(ctx)
			if err != nil {
				return err
			}

			r := os.Stdin
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return goerr.Wrap(err, "failed to open archive", goerr.V("path", file))
				}
				defer safe.Close(ctx, f)
				r = f
			}

			count, err := uc.ImportNotices(ctx, r)
			if err != nil {
				return err
			}
			fmt.Printf("%d registro(s) importado(s)\n", count)
			return nil
		},
	}
}

func cmdNoticeDump() *cli.Command {
	var file string

	return &cli.Command{
		Name:  "dump",
		Usage: "Dump all records as a YAML archive",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"w"},
				Usage:       "Archive path ('-' for stdout)",
				Value:       "-",
				Destination: &file,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newUseCases(ctx)
			if err != nil {
				return err
			}

			w := os.Stdout
			if file != "-" {
				f, err := os.Create(file)
				if err != nil {
					return goerr.Wrap(err, "failed to create archive", goerr.V("path", file))
				}
				defer safe.Close(ctx, f)
				w = f
			}

			return uc.DumpNotices(ctx, w)
		},
	}
}
