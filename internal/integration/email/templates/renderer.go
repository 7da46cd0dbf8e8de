// Package templates provides email template rendering functionality.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed *.html *.txt
var templateFS embed.FS

// TemplateMonthlyReview is the monthly review digest template.
const TemplateMonthlyReview = "monthly_review"

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

var brazilian = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formats an amount as Brazilian reais, e.g. "R$ 1.234,50".
func FormatBRL(amount decimal.Decimal) string {
	value, _ := amount.Round(2).Float64()
	if value < 0 {
		return brazilian.Sprintf("-R$ %.2f", -value)
	}
	return brazilian.Sprintf("R$ %.2f", value)
}

// MonthName returns the Portuguese month name.
func MonthName(month time.Month) string {
	if month < time.January || month > time.December {
		return ""
	}
	return monthNames[month-1]
}

var funcs = map[string]any{
	"brl":       FormatBRL,
	"monthName": MonthName,
}

// Renderer handles email template rendering.
type Renderer struct {
	htmlTemplates *htmltemplate.Template
	textTemplates *texttemplate.Template
}

// NewRenderer creates a new template renderer.
func NewRenderer() (*Renderer, error) {
	htmlTmpl, err := htmltemplate.New("").Funcs(funcs).ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML templates: %w", err)
	}

	textTmpl, err := texttemplate.New("").Funcs(funcs).ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}

	return &Renderer{
		htmlTemplates: htmlTmpl,
		textTemplates: textTmpl,
	}, nil
}

// Render renders both HTML and text versions of a template.
func (r *Renderer) Render(templateName string, data interface{}) (html string, text string, err error) {
	var htmlBuf bytes.Buffer
	if err := r.htmlTemplates.ExecuteTemplate(&htmlBuf, templateName+".html", data); err != nil {
		return "", "", fmt.Errorf("failed to render HTML template %s: %w", templateName, err)
	}

	var textBuf bytes.Buffer
	if err := r.textTemplates.ExecuteTemplate(&textBuf, templateName+".txt", data); err != nil {
		// Fall back to empty text if no text template exists
		return htmlBuf.String(), "", nil
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// ReviewInsightData is one line of the digest.
type ReviewInsightData struct {
	Success bool
	Message string
}

// MonthlyReviewData contains data for the monthly review email template.
type MonthlyReviewData struct {
	UserName string
	Year     int
	Month    time.Month
	Score    int
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
	Insights []ReviewInsightData
	// ReviewURL links to the review page in the web app; omitted when empty.
	ReviewURL string
}
