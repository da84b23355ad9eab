package cli

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/fisclab/fiscaliza/pkg/service/document"
	"github.com/urfave/cli/v3"
)

func cmdDashboard() *cli.Command {
	return &cli.Command{
		Name:    "dashboard",
		Aliases: []string{"d"},
		Usage:   "Show the enforcement overview",
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newUseCases(ctx)
			if err != nil {
				return err
			}
			stats, err := uc.Dashboard(ctx)
			if err != nil {
				return err
			}

			bold := color.New(color.Bold)
			bold.Println("PAINEL DE FISCALIZAÇÃO")
			fmt.Println()
			fmt.Printf("  Autuações:            %s\n", humanize.Comma(int64(stats.TotalNotices)))
			fmt.Printf("  Pendentes:            %s\n", humanize.Comma(int64(stats.PendingNotices)))
			fmt.Printf("  Vencendo:             %s\n", severityColors[types.SeverityWarn].Sprint(humanize.Comma(int64(stats.DueSoon))))
			fmt.Printf("  Vencidas:             %s\n", severityColors[types.SeverityDanger].Sprint(humanize.Comma(int64(stats.Overdue))))
			fmt.Printf("  Obras irregulares:    %s\n", humanize.Comma(int64(stats.IrregularWorks)))
			fmt.Printf("  Obras embargadas:     %s\n", humanize.Comma(int64(stats.EmbargoedWorks)))
			fmt.Printf("  Multas aplicadas:     %s\n", humanize.Comma(int64(stats.FinesIssued)))
			fmt.Printf("  Valor em multas:      R$ %s\n", document.FormatCurrency(stats.FineTotal))
			fmt.Printf("  Compromissos hoje:    %s\n", humanize.Comma(int64(stats.AppointmentsToday)))
			return nil
		},
	}
}

func cmdReport() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "Show the monthly summary",
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newUseCases(ctx)
			if err != nil {
				return err
			}
			s, err := uc.MonthlySummary(ctx)
			if err != nil {
				return err
			}

			bold := color.New(color.Bold)
			bold.Println("RESUMO DO MÊS")
			fmt.Println()

			fmt.Println("Por situação de prazo:")
			for _, cls := range []types.DeadlineClass{
				types.DeadlineOnTrack,
				types.DeadlineDueSoon,
				types.DeadlineOverdue,
				types.DeadlineFulfilled,
				types.DeadlineCancelled,
			} {
				if s.ByClass[cls] == 0 {
					continue
				}
				fmt.Printf("  %-18s %d\n", cls.Label(), s.ByClass[cls])
			}

			fmt.Println("\nPor tipo de documento:")
			for _, kind := range []types.NoticeKind{
				types.NoticeKindNotification,
				types.NoticeKindSummons,
				types.NoticeKindEmbargo,
				types.NoticeKindFine,
			} {
				if s.ByKind[kind] == 0 {
					continue
				}
				fmt.Printf("  %-18s %d\n", kind.Label(), s.ByKind[kind])
			}

			fmt.Printf("\nValor em multas:       R$ %s\n", document.FormatCurrency(s.FineTotal))
			fmt.Printf("Taxa de cumprimento:   %.0f%%\n", s.FulfillmentRate*100)
			return nil
		},
	}
}
