package cli_test

import (
	"path/filepath"
	"testing"

	"github.com/fisclab/fiscaliza/pkg/cli"
	"github.com/m-mizutani/gt"
)

func TestRunNoticeList(t *testing.T) {
	err := cli.Run(t.Context(), []string{"fiscaliza", "--log-quiet", "notice", "list"})
	gt.NoError(t, err)
}

func TestRunNoticeShowByNumber(t *testing.T) {
	err := cli.Run(t.Context(), []string{"fiscaliza", "--log-quiet", "notice", "show", "NOT-2024-001234"})
	gt.NoError(t, err)
}

func TestRunNoticeShowUnknown(t *testing.T) {
	err := cli.Run(t.Context(), []string{"fiscaliza", "--log-quiet", "notice", "show", "NOT-1999-999999"})
	gt.Error(t, err)
}

func TestRunNoticePDF(t *testing.T) {
	dir := t.TempDir()
	err := cli.Run(t.Context(), []string{"fiscaliza", "--log-quiet", "notice", "pdf", "NOT-2024-001234", "--output", dir})
	gt.NoError(t, err)

	matches := gt.R1(filepath.Glob(filepath.Join(dir, "*.pdf"))).NoError(t)
	gt.Array(t, matches).Length(1)
}

func TestRunDashboard(t *testing.T) {
	err := cli.Run(t.Context(), []string{"fiscaliza", "--log-quiet", "dashboard"})
	gt.NoError(t, err)
}

func TestRunReport(t *testing.T) {
	err := cli.Run(t.Context(), []string{"fiscaliza", "--log-quiet", "report"})
	gt.NoError(t, err)
}

func TestRunRecordListings(t *testing.T) {
	for _, args := range [][]string{
		{"fiscaliza", "--log-quiet", "works", "list"},
		{"fiscaliza", "--log-quiet", "lots", "list"},
		{"fiscaliza", "--log-quiet", "conduct", "list"},
		{"fiscaliza", "--log-quiet", "agenda", "list"},
		{"fiscaliza", "--log-quiet", "users", "list"},
	} {
		gt.NoError(t, cli.Run(t.Context(), args))
	}
}
