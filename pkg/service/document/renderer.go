package document

import (
	"bytes"
	"context"
	"time"

	"github.com/fisclab/fiscaliza/pkg/domain/model/errs"
	"github.com/fisclab/fiscaliza/pkg/domain/model/notice"
	"github.com/fisclab/fiscaliza/pkg/utils/clock"
	"github.com/go-pdf/fpdf"
	"github.com/m-mizutani/goerr/v2"
)

// Page geometry in millimeters (A4 portrait).
const (
	pageWidth      = 210.0
	pageHeight     = 297.0
	pageMargin     = 20.0
	printableWidth = pageWidth - 2*pageMargin

	lineHeight   = 6.0
	sectionGap   = 4.0
	footerHeight = 24.0
	// contentBottom is where body text stops so the footer area stays clear.
	contentBottom = pageHeight - pageMargin - footerHeight
)

var legalBasis = []string{
	"Fundamentação legal: Art. 142 da Lei Complementar Municipal nº 123/2006 (Código de Obras e Edificações).",
	"Art. 58 da Lei Municipal nº 456/2008 (Código de Posturas do Município).",
}

// Renderer produces the statutory printable document (auto de notificação,
// intimação, embargo ou multa) for an enforcement record. It is a pure
// reader: the record is never mutated, and with a frozen context clock the
// output is byte-for-byte reproducible.
type Renderer struct {
	authority    string
	department   string
	municipality string
	compress     bool
}

type Option func(*Renderer)

func WithAuthority(name string) Option {
	return func(r *Renderer) {
		r.authority = name
	}
}

func WithDepartment(name string) Option {
	return func(r *Renderer) {
		r.department = name
	}
}

func WithMunicipality(name string) Option {
	return func(r *Renderer) {
		r.municipality = name
	}
}

// WithCompression toggles PDF stream compression. Tests disable it to
// inspect the rendered text.
func WithCompression(enabled bool) Option {
	return func(r *Renderer) {
		r.compress = enabled
	}
}

func New(opts ...Option) *Renderer {
	r := &Renderer{
		authority:    "PREFEITURA MUNICIPAL",
		department:   "Secretaria de Fiscalização e Posturas",
		municipality: "Prefeitura Municipal - Departamento de Fiscalização",
		compress:     true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Document is the rendered artifact: the PDF bytes and the download
// filename derived from the record number.
type Document struct {
	Bytes    []byte
	Filename string
}

// Render lays the record out into a single PDF document. Sections follow
// the statutory order; free-text blocks are word-wrapped to the printable
// width and overflow continues on a new page rather than clipping. Blank
// field values render blank: upstream validation is not this component's
// job, and it never raises for them.
func (x *Renderer) Render(ctx context.Context, n *notice.Notice) (*Document, error) {
	now := clock.Now(ctx)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)
	// Sort catalog entries so output is byte-for-byte reproducible; fpdf
	// otherwise emits font resources in map-iteration order.
	pdf.SetCatalogSort(true)
	pdf.SetCompression(x.compress)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	j := &job{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), y: pageMargin}

	// 1. Issuing authority header
	j.centered(x.authority, "B", 16, 8)
	j.centered(x.department, "", 11, 6)
	j.y += sectionGap

	// 2. Document title
	j.centered(n.Kind.DocumentTitle(), "B", 14, 8)
	j.y += sectionGap

	// 3. Separator rule
	pdf.SetLineWidth(0.4)
	pdf.Line(pageMargin, j.y, pageWidth-pageMargin, j.y)
	j.y += sectionGap

	// 4. Filing data
	j.section("DADOS DA AUTUAÇÃO")
	j.field("Número", n.Number)
	j.field("Data de Emissão", formatDate(n.IssuedAt))
	j.field("Prazo de Vencimento", formatDate(n.DueAt))
	j.field("Tipo", n.Kind.Label())
	j.y += sectionGap

	// 5. Subject data
	j.section("DADOS DO INFRATOR")
	j.field("Contribuinte", n.TaxpayerName)
	j.field("CPF/CNPJ", n.TaxpayerID)
	j.field("Endereço", n.Address)
	j.y += sectionGap

	// 6. Violation narrative
	j.section("DESCRIÇÃO DA IRREGULARIDADE")
	j.paragraph(n.Description)
	j.y += sectionGap

	// 7. Legal basis boilerplate
	j.section("FUNDAMENTAÇÃO LEGAL")
	for _, cite := range legalBasis {
		j.paragraph(cite)
	}
	j.y += sectionGap

	// 8. Responsible inspector
	j.section("FISCAL RESPONSÁVEL")
	j.field("Nome", n.InspectorName)
	j.field("Matrícula", BadgeCode(n.InspectorName))
	j.y += sectionGap

	// 9. Fine amount, only when present
	if n.HasAmount() {
		j.section("VALOR DA MULTA")
		j.field("Valor", "R$ "+FormatCurrency(*n.Amount))
		j.y += sectionGap
	}

	// 10. Observations, only when present
	if n.Notes != "" {
		j.section("OBSERVAÇÕES")
		j.paragraph(n.Notes)
		j.y += sectionGap
	}

	// 11. Footer, anchored to the bottom of the last page
	footerY := pageHeight - pageMargin - footerHeight + sectionGap
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetXY(pageMargin, footerY)
	pdf.CellFormat(printableWidth, 4, j.tr("Documento gerado eletronicamente pelo sistema de fiscalização municipal."), "", 0, "C", false, 0, "")
	pdf.SetXY(pageMargin, footerY+5)
	pdf.CellFormat(printableWidth, 4, j.tr("Gerado em "+formatTimestamp(now)), "", 0, "C", false, 0, "")
	pdf.SetXY(pageMargin, footerY+10)
	pdf.CellFormat(printableWidth, 4, j.tr(x.municipality), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, goerr.Wrap(err, "failed to render notice document",
			goerr.T(errs.TagDocument), goerr.V("notice_id", n.ID), goerr.V("number", n.Number))
	}

	return &Document{
		Bytes:    buf.Bytes(),
		Filename: SanitizeFilename(n.Number) + ".pdf",
	}, nil
}

// job tracks the vertical cursor while sections are laid out top to bottom.
type job struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	y   float64
}

// ensure starts a new page when h millimeters no longer fit above the
// footer area.
func (j *job) ensure(h float64) {
	if j.y+h > contentBottom {
		j.pdf.AddPage()
		j.y = pageMargin
	}
}

func (j *job) centered(text, style string, size, h float64) {
	j.ensure(h)
	j.pdf.SetFont("Helvetica", style, size)
	j.pdf.SetXY(pageMargin, j.y)
	j.pdf.CellFormat(printableWidth, h, j.tr(text), "", 0, "C", false, 0, "")
	j.y += h
}

func (j *job) section(label string) {
	j.ensure(lineHeight)
	j.pdf.SetFont("Helvetica", "B", 11)
	j.pdf.SetXY(pageMargin, j.y)
	j.pdf.CellFormat(printableWidth, lineHeight, j.tr(label), "", 0, "L", false, 0, "")
	j.y += lineHeight
}

func (j *job) field(label, value string) {
	j.ensure(lineHeight)
	j.pdf.SetFont("Helvetica", "", 10)
	j.pdf.SetXY(pageMargin, j.y)
	j.pdf.CellFormat(printableWidth, lineHeight, j.tr(label+": "+value), "", 0, "L", false, 0, "")
	j.y += lineHeight
}

// paragraph word-wraps free text to the printable width. The cursor
// advances by one line height per wrapped line.
func (j *job) paragraph(text string) {
	if text == "" {
		return
	}
	j.pdf.SetFont("Helvetica", "", 10)
	// SplitText expects UTF-8 input, so translate to cp1252 per line
	// after wrapping rather than before.
	lines := j.pdf.SplitText(text, printableWidth)
	for _, line := range lines {
		j.ensure(lineHeight)
		j.pdf.SetXY(pageMargin, j.y)
		j.pdf.CellFormat(printableWidth, lineHeight, j.tr(line), "", 0, "L", false, 0, "")
		j.y += lineHeight
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

func formatTimestamp(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}
