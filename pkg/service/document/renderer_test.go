package document_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fisclab/fiscaliza/pkg/domain/model/notice"
	"github.com/fisclab/fiscaliza/pkg/domain/types"
	"github.com/fisclab/fiscaliza/pkg/service/document"
	"github.com/fisclab/fiscaliza/pkg/utils/clock"
	"github.com/m-mizutani/gt"
)

func testNotice() notice.Notice {
	amount := 1500.5
	return notice.Notice{
		ID:            types.NewNoticeID(),
		Number:        "MUL-2024-000042",
		Kind:          types.NoticeKindFine,
		Status:        types.NoticeStatusPending,
		TaxpayerName:  "Construtora Horizonte Ltda",
		TaxpayerID:    "12.345.678/0001-90",
		Address:       "Rua das Palmeiras, 123 - Centro",
		Description:   "Obra em desacordo com o projeto aprovado.",
		InspectorName: "Joao Silva",
		Amount:        &amount,
		Notes:         "Reincidencia registrada em vistoria anterior",
		IssuedAt:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		DueAt:         time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestRenderDeterministic(t *testing.T) {
	ctx := clock.Frozen(t.Context(), time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC))
	r := document.New()
	n := testNotice()

	first := gt.R1(r.Render(ctx, &n)).NoError(t)
	second := gt.R1(r.Render(ctx, &n)).NoError(t)
	gt.True(t, bytes.Equal(first.Bytes, second.Bytes))
}

func TestRenderFilename(t *testing.T) {
	r := document.New()
	n := testNotice()
	n.Number = "NOT-2024-001234"

	doc := gt.R1(r.Render(t.Context(), &n)).NoError(t)
	gt.Value(t, doc.Filename).Equal("NOT_2024_001234.pdf")
}

func TestRenderSections(t *testing.T) {
	r := document.New(document.WithCompression(false))

	t.Run("fine amount section present", func(t *testing.T) {
		n := testNotice()
		doc := gt.R1(r.Render(t.Context(), &n)).NoError(t)
		gt.True(t, bytes.Contains(doc.Bytes, []byte("VALOR DA MULTA")))
		gt.True(t, bytes.Contains(doc.Bytes, []byte("R$ 1.500,50")))
		gt.True(t, bytes.Contains(doc.Bytes, []byte("Reincidencia registrada")))
		gt.True(t, bytes.Contains(doc.Bytes, []byte("JS001")))
		gt.True(t, bytes.Contains(doc.Bytes, []byte("15/01/2024")))
	})

	t.Run("amount and notes omitted when absent", func(t *testing.T) {
		n := testNotice()
		n.Amount = nil
		n.Notes = ""
		doc := gt.R1(r.Render(t.Context(), &n)).NoError(t)
		gt.False(t, bytes.Contains(doc.Bytes, []byte("VALOR DA MULTA")))
	})

	t.Run("record is not mutated", func(t *testing.T) {
		n := testNotice()
		before := n
		_ = gt.R1(r.Render(t.Context(), &n)).NoError(t)
		gt.Value(t, n).Equal(before)
	})
}

func TestRenderLongText(t *testing.T) {
	r := document.New()

	t.Run("long description wraps without error", func(t *testing.T) {
		n := testNotice()
		n.Description = strings.Repeat("Construcao irregular em area de preservacao permanente. ", 10)
		doc := gt.R1(r.Render(t.Context(), &n)).NoError(t)
		gt.Number(t, len(doc.Bytes)).Greater(0)
	})

	t.Run("overflow spills onto a new page", func(t *testing.T) {
		n := testNotice()
		n.Notes = strings.Repeat("Observacao adicional registrada durante a vistoria no local. ", 120)
		doc := gt.R1(r.Render(t.Context(), &n)).NoError(t)
		gt.Number(t, len(doc.Bytes)).Greater(0)
	})
}
