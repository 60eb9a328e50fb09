package pdfrender

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/andrenany/api-felmart/internal/core/domain"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
)

// QuoteRenderer builds the printable quote document and converts it to PDF
// through Gotenberg.
type QuoteRenderer struct {
	client *Client
	tmpl   *template.Template
}

var _ portssvc.QuoteRenderer = (*QuoteRenderer)(nil)

// NewQuoteRenderer constructs the renderer.
func NewQuoteRenderer(client *Client) *QuoteRenderer {
	return &QuoteRenderer{
		client: client,
		tmpl:   template.Must(template.New("quote").Parse(quoteTemplate)),
	}
}

type quoteLineView struct {
	Description  string
	Quantity     string
	Unit         string
	UnitPrice    string
	Currency     string
	UnitPriceCLP string
	SubtotalCLP  string
}

type quoteView struct {
	Number       string
	Date         string
	ClientName   string
	ClientTaxID  string
	Address      string
	Region       string
	Commune      string
	UFValue      string
	Lines        []quoteLineView
	TotalCLP     string
	Observations string
}

// RenderQuotePDF returns the rendered PDF bytes for a quote.
func (r *QuoteRenderer) RenderQuotePDF(ctx context.Context, quote *domain.Quote) ([]byte, error) {
	view := quoteView{
		Number:       quote.Number,
		Date:         quote.QuoteDate.Format("02-01-2006"),
		ClientName:   quote.UserName,
		Address:      quote.CompanyAddress,
		Region:       quote.Region,
		Commune:      quote.Commune,
		UFValue:      FormatCLP(quote.UFValue),
		TotalCLP:     FormatCLP(quote.TotalCLP),
		Observations: quote.Observations,
	}
	if quote.Kind == domain.QuoteForCompany && quote.CompanyName != nil {
		view.ClientName = *quote.CompanyName
	}
	if quote.CompanyTaxID != nil {
		view.ClientTaxID = *quote.CompanyTaxID
	}

	for _, l := range quote.Lines {
		view.Lines = append(view.Lines, quoteLineView{
			Description:  l.Description,
			Quantity:     l.Quantity.String(),
			Unit:         l.Unit,
			UnitPrice:    l.UnitPrice.String(),
			Currency:     l.Currency,
			UnitPriceCLP: FormatCLP(l.UnitPriceCLP),
			SubtotalCLP:  FormatCLP(l.SubtotalCLP),
		})
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render quote template: %w", err)
	}

	pdf, err := r.client.RenderHTML(ctx, buf.String())
	if err != nil {
		return nil, fmt.Errorf("failed to convert quote %s to pdf: %w", quote.Number, err)
	}
	return pdf, nil
}

// FormatCLP formats an amount in Chilean peso style: $1.234.567.
func FormatCLP(amount decimal.Decimal) string {
	s := amount.Round(0).String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-$" + b.String()
	}
	return "$" + b.String()
}

const quoteTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
	body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; color: #222; margin: 40px; }
	h1 { color: #1a6b3c; font-size: 20px; margin-bottom: 0; }
	.meta { margin: 16px 0; }
	.meta td { padding: 2px 12px 2px 0; }
	table.lines { width: 100%; border-collapse: collapse; margin-top: 16px; }
	table.lines th { background: #1a6b3c; color: #fff; padding: 6px; text-align: left; }
	table.lines td { border-bottom: 1px solid #ddd; padding: 6px; }
	.total { text-align: right; font-size: 14px; font-weight: bold; margin-top: 12px; }
	.obs { margin-top: 24px; font-size: 11px; color: #555; }
</style>
</head>
<body>
	<h1>FELMART Gesti&oacute;n de Residuos</h1>
	<p>Cotizaci&oacute;n {{.Number}} &mdash; {{.Date}}</p>

	<table class="meta">
		<tr><td>Cliente</td><td>{{.ClientName}}</td></tr>
		{{if .ClientTaxID}}<tr><td>RUT</td><td>{{.ClientTaxID}}</td></tr>{{end}}
		<tr><td>Direcci&oacute;n</td><td>{{.Address}}, {{.Commune}}, {{.Region}}</td></tr>
		<tr><td>Valor UF</td><td>{{.UFValue}}</td></tr>
	</table>

	<table class="lines">
		<tr>
			<th>Descripci&oacute;n</th>
			<th>Cantidad</th>
			<th>Unidad</th>
			<th>Precio unitario</th>
			<th>Precio CLP</th>
			<th>Subtotal CLP</th>
		</tr>
		{{range .Lines}}
		<tr>
			<td>{{.Description}}</td>
			<td>{{.Quantity}}</td>
			<td>{{.Unit}}</td>
			<td>{{.UnitPrice}} {{.Currency}}</td>
			<td>{{.UnitPriceCLP}}</td>
			<td>{{.SubtotalCLP}}</td>
		</tr>
		{{end}}
	</table>

	<p class="total">Total: {{.TotalCLP}}</p>

	{{if .Observations}}<p class="obs">{{.Observations}}</p>{{end}}
</body>
</html>`
