package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fisclab/fiscaliza/pkg/domain/model/notice"
	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/fisclab/fiscaliza/pkg/usecase"
	"github.com/fisclab/fiscaliza/pkg/utils/clock"
	"github.com/fisclab/fiscaliza/pkg/utils/user"
	"github.com/m-mizutani/gt"
)

func testContext(t *testing.T) context.Context {
	ctx := clock.Frozen(t.Context(), time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC))
	return user.WithInspector(ctx, "Maria Santos")
}

func TestCreateNotice(t *testing.T) {
	ctx := testContext(t)
	uc := usecase.New()

	amount := 1500.5
	created := gt.R1(uc.CreateNotice(ctx, usecase.CreateNoticeInput{
		Kind:         types.NoticeKindFine,
		TaxpayerName: "Construtora Horizonte Ltda",
		TaxpayerID:   "12.345.678/0001-90",
		Address:      "Rua das Palmeiras, 123",
		Description:  "Obra em desacordo com o projeto aprovado.",
		Amount:       &amount,
		DueAt:        "10/07/2024",
	})).NoError(t)

	gt.Value(t, created.Number).Equal("MUL-2024-000001")
	gt.Value(t, created.Status).Equal(types.NoticeStatusPending)
	gt.Value(t, created.InspectorName).Equal("Maria Santos")
	gt.Value(t, created.DueAt).Equal(time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC))

	second := gt.R1(uc.CreateNotice(ctx, usecase.CreateNoticeInput{
		Kind:         types.NoticeKindNotification,
		TaxpayerName: "Jose Pereira",
		TaxpayerID:   "123.456.789-00",
		DueAt:        "01/08/2024",
	})).NoError(t)
	gt.Value(t, second.Number).Equal("NOT-2024-000002")

	t.Run("missing due date fails", func(t *testing.T) {
		_, err := uc.CreateNotice(ctx, usecase.CreateNoticeInput{
			Kind:         types.NoticeKindNotification,
			TaxpayerName: "Jose Pereira",
			TaxpayerID:   "123.456.789-00",
		})
		gt.Error(t, err)
	})

	t.Run("malformed due date fails", func(t *testing.T) {
		_, err := uc.CreateNotice(ctx, usecase.CreateNoticeInput{
			Kind:         types.NoticeKindNotification,
			TaxpayerName: "Jose Pereira",
			TaxpayerID:   "123.456.789-00",
			DueAt:        "2024-07-10",
		})
		gt.Error(t, err)
	})
}

func TestNoticeTransitions(t *testing.T) {
	ctx := testContext(t)
	uc := usecase.New()

	created := gt.R1(uc.CreateNotice(ctx, usecase.CreateNoticeInput{
		Kind:         types.NoticeKindEmbargo,
		TaxpayerName: "Condominio Vista Verde",
		TaxpayerID:   "98.765.432/0001-10",
		DueAt:        "10/07/2024",
	})).NoError(t)

	gt.NoError(t, uc.MarkNoticeFulfilled(ctx, created.ID)).Required()

	got := gt.R1(uc.GetNotice(ctx, created.ID)).NoError(t)
	gt.Value(t, got.Status).Equal(types.NoticeStatusFulfilled)

	t.Run("fulfilled record cannot be cancelled", func(t *testing.T) {
		gt.Error(t, uc.CancelNotice(ctx, created.ID))
	})

	t.Run("delete removes the record", func(t *testing.T) {
		gt.NoError(t, uc.DeleteNotice(ctx, created.ID))
		_, err := uc.GetNotice(ctx, created.ID)
		gt.Error(t, err)
	})
}

func TestUpdateNotice(t *testing.T) {
	ctx := testContext(t)
	uc := usecase.New()

	created := gt.R1(uc.CreateNotice(ctx, usecase.CreateNoticeInput{
		Kind:         types.NoticeKindNotification,
		TaxpayerName: "Jose Pereira",
		TaxpayerID:   "123.456.789-00",
		DueAt:        "10/07/2024",
	})).NoError(t)

	updated := *created
	updated.Address = "Rua Atualizada, 99"
	gt.NoError(t, uc.UpdateNotice(ctx, updated)).Required()

	got := gt.R1(uc.GetNotice(ctx, created.ID)).NoError(t)
	gt.Value(t, got.Address).Equal("Rua Atualizada, 99")

	t.Run("unknown record fails", func(t *testing.T) {
		missing := updated
		missing.ID = types.NewNoticeID()
		gt.Error(t, uc.UpdateNotice(ctx, missing))
	})

	t.Run("invalid record fails", func(t *testing.T) {
		bad := updated
		bad.TaxpayerName = ""
		gt.Error(t, uc.UpdateNotice(ctx, bad))
	})
}

func TestListNoticesFilter(t *testing.T) {
	ctx := testContext(t)
	uc := usecase.New()

	for _, name := range []string{"Construtora Horizonte Ltda", "Jose Pereira"} {
		_ = gt.R1(uc.CreateNotice(ctx, usecase.CreateNoticeInput{
			Kind:         types.NoticeKindNotification,
			TaxpayerName: name,
			TaxpayerID:   "000.000.000-00",
			DueAt:        "10/07/2024",
		})).NoError(t)
	}

	got := gt.R1(uc.ListNotices(ctx, notice.Query{Search: "horizonte"})).NoError(t)
	gt.Array(t, got).Length(1).Required()
	gt.Value(t, got[0].TaxpayerName).Equal("Construtora Horizonte Ltda")

	all := gt.R1(uc.ListNotices(ctx, notice.Query{})).NoError(t)
	gt.Array(t, all).Length(2)
}

func TestExportNoticePDF(t *testing.T) {
	ctx := testContext(t)
	uc := usecase.New()

	created := gt.R1(uc.CreateNotice(ctx, usecase.CreateNoticeInput{
		Kind:         types.NoticeKindNotification,
		TaxpayerName: "Jose Pereira",
		TaxpayerID:   "123.456.789-00",
		DueAt:        "10/07/2024",
	})).NoError(t)

	dir := t.TempDir()
	path := gt.R1(uc.ExportNoticePDF(ctx, created.ID, dir)).NoError(t)
	gt.Value(t, filepath.Base(path)).Equal("NOT_2024_000001.pdf")

	data := gt.R1(os.ReadFile(path)).NoError(t)
	gt.Number(t, len(data)).Greater(0)
}
