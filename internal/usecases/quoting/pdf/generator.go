// Package pdf gera a versão em PDF de um orçamento para envio ao cliente
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/orcafacil/orcafacil-api/internal/domain"
)

const maxServiceNameLen = 60

type Generator struct {
	companyName string
}

func NewGenerator(companyName string) *Generator {
	return &Generator{companyName: companyName}
}

func (g *Generator) Generate(quote *domain.Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Orçamento %s", quote.Number), true)
	pdf.AddPage()

	// As fontes core do gofpdf são cp1252; o tradutor cobre os acentos do
	// português sem precisar embutir fonte UTF-8
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr("Orçamento"))
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Nº %s de %s", quote.Number, quote.CreatedAt.Format("02/01/2006"))))
	pdf.Ln(6)

	if quote.ClientName != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Cliente: %s", quote.ClientName)))
		pdf.Ln(6)
	}

	if quote.Description != "" {
		pdf.MultiCell(0, 6, tr(quote.Description), "", "L", false)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(100, 7, tr("Serviço"))
	pdf.Cell(20, 7, tr("Qtd"))
	pdf.Cell(35, 7, tr("Preço unit."))
	pdf.Cell(35, 7, tr("Subtotal"))
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	for _, item := range quote.Items {
		pdf.Cell(100, 6, tr(trim(item.ServiceName, maxServiceNameLen)))
		pdf.Cell(20, 6, fmt.Sprintf("%d", item.Quantity))
		pdf.Cell(35, 6, tr(formatBRL(item.UnitPrice)))
		pdf.Cell(35, 6, tr(formatBRL(item.Subtotal())))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Total: %s", formatBRL(quote.TotalValue))))
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 9)
	if g.companyName != "" {
		pdf.Cell(0, 5, tr(g.companyName))
		pdf.Ln(5)
	}
	pdf.Cell(0, 5, tr(fmt.Sprintf("Gerado em: %s", time.Now().Format("02/01/2006 15:04"))))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatBRL formata o valor com vírgula decimal e ponto de milhar
func formatBRL(value float64) string {
	s := fmt.Sprintf("%.2f", value)

	intPart := s[:len(s)-3]
	decPart := s[len(s)-2:]

	negative := false
	if len(intPart) > 0 && intPart[0] == '-' {
		negative = true
		intPart = intPart[1:]
	}

	var out []byte
	for i, d := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}

	result := "R$ " + string(out) + "," + decPart
	if negative {
		result = "R$ -" + string(out) + "," + decPart
	}
	return result
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
