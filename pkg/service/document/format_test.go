package document_test

import (
	"testing"

	"github.com/fisclab/fiscaliza/pkg/service/document"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "1.500,50", document.FormatCurrency(1500.5))
	assert.Equal(t, "850,00", document.FormatCurrency(850))
	assert.Equal(t, "2.500,00", document.FormatCurrency(2500))
	assert.Equal(t, "0,00", document.FormatCurrency(0))
	assert.Equal(t, "1.234.567,89", document.FormatCurrency(1234567.89))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "NOT_2024_001234", document.SanitizeFilename("NOT-2024-001234"))
	assert.Equal(t, "EMB_2024_009876", document.SanitizeFilename("EMB-2024-009876"))
	assert.Equal(t, "abc123", document.SanitizeFilename("abc123"))
	assert.Equal(t, "a_b_c", document.SanitizeFilename("a b/c"))
}

func TestBadgeCode(t *testing.T) {
	assert.Equal(t, "JS001", document.BadgeCode("João Silva"))
	assert.Equal(t, "MS001", document.BadgeCode("Maria Santos"))
	assert.Equal(t, "CO001", document.BadgeCode("Carlos Oliveira"))
	assert.Equal(t, "001", document.BadgeCode(""))
}
