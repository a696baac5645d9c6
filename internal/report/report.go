// Package report renders a one-page PDF profile summary.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/jpoz/gitdash/internal/aggregate"
	"github.com/jpoz/gitdash/internal/unified"
)

const (
	pageMargin   = 15.0
	contentWidth = 210.0 - 2*pageMargin
	headerHeight = 38.0
	rowHeight    = 7.0
	barMaxWidth  = 90.0
)

type rgb struct{ r, g, b int }

var (
	colorHeader    = rgb{0x1A, 0x23, 0x7E}
	colorAccent    = rgb{0x15, 0x65, 0xC0}
	colorHeaderSub = rgb{0x90, 0xCA, 0xF9}
	colorText      = rgb{0x21, 0x21, 0x21}
	colorGray      = rgb{0x75, 0x75, 0x75}
	colorDivider   = rgb{0xBD, 0xBD, 0xBD}
)

// FileName is the report file name for username.
func FileName(username string) string {
	return fmt.Sprintf("gitdash_report_%s.pdf", username)
}

// Save writes the report for s into dir and returns the file path.
func Save(dir string, s aggregate.Summary) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(dir, FileName(s.User.Username))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	if err := Write(f, s); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report file: %w", err)
	}
	return path, nil
}

// Write renders the report for s to w.
func Write(w io.Writer, s aggregate.Summary) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.SetTitle("gitdash report: "+s.User.Username, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	drawHeader(pdf, tr, s.User)

	y := headerHeight + 10
	y = drawSection(pdf, "Overview", y)
	y = drawKeyValue(pdf, tr, y, "Repositories", fmt.Sprint(s.RepoCount))
	y = drawKeyValue(pdf, tr, y, "Total stars", fmt.Sprint(s.TotalStars))
	y = drawKeyValue(pdf, tr, y, "Commit events (recent)", fmt.Sprint(s.CommitEvents))
	y = drawKeyValue(pdf, tr, y, "Followers", fmt.Sprint(s.User.Followers))
	y = drawKeyValue(pdf, tr, y, "Following", fmt.Sprint(s.User.Following))

	y = drawSection(pdf, "Highlights", y+4)
	y = drawKeyValue(pdf, tr, y, "Most active", orDash(s.MostActive))
	y = drawKeyValue(pdf, tr, y, "Last worked on", orDash(s.LastWorkedOn))
	y = drawKeyValue(pdf, tr, y, "Top languages", orDash(strings.Join(s.TopLanguages, ", ")))

	y = drawSection(pdf, "Activity", y+4)
	drawCategoryBars(pdf, s.Contributions.ByCategory, y)

	drawFooter(pdf)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func setText(pdf *fpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }

func drawHeader(pdf *fpdf.Fpdf, tr func(string) string, u unified.User) {
	pdf.SetFillColor(colorHeader.r, colorHeader.g, colorHeader.b)
	pdf.Rect(0, 0, 210, headerHeight, "F")

	pdf.SetFont("Helvetica", "B", 22)
	setText(pdf, rgb{255, 255, 255})
	pdf.Text(pageMargin, 17, tr(u.DisplayName()))

	pdf.SetFont("Helvetica", "", 11)
	setText(pdf, colorHeaderSub)
	pdf.Text(pageMargin, 26, tr(fmt.Sprintf("@%s  ·  %s", u.Username, u.Platform)))

	var extra []string
	if loc := unified.StringValue(u.Location); loc != "" {
		extra = append(extra, loc)
	}
	if company := unified.StringValue(u.Company); company != "" {
		extra = append(extra, company)
	}
	if len(extra) > 0 {
		pdf.Text(pageMargin, 33, tr(strings.Join(extra, "  ·  ")))
	}
}

func drawSection(pdf *fpdf.Fpdf, title string, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 13)
	setText(pdf, colorAccent)
	pdf.Text(pageMargin, y, title)

	pdf.SetDrawColor(colorDivider.r, colorDivider.g, colorDivider.b)
	pdf.Line(pageMargin, y+2, pageMargin+contentWidth, y+2)
	return y + 9
}

func drawKeyValue(pdf *fpdf.Fpdf, tr func(string) string, y float64, key, value string) float64 {
	pdf.SetFont("Helvetica", "", 11)
	setText(pdf, colorGray)
	pdf.Text(pageMargin, y, key+":")

	pdf.SetFont("Helvetica", "B", 11)
	setText(pdf, colorText)
	pdf.Text(pageMargin+60, y, tr(value))
	return y + rowHeight
}

func drawCategoryBars(pdf *fpdf.Fpdf, counts map[unified.Category]int, y float64) {
	maxVal := 0
	for _, c := range unified.Categories() {
		maxVal = max(maxVal, counts[c])
	}

	pdf.SetFillColor(colorAccent.r, colorAccent.g, colorAccent.b)
	for _, c := range unified.Categories() {
		n := counts[c]
		pdf.SetFont("Helvetica", "", 11)
		setText(pdf, colorGray)
		pdf.Text(pageMargin, y, string(c))

		if maxVal > 0 && n > 0 {
			w := barMaxWidth * float64(n) / float64(maxVal)
			pdf.Rect(pageMargin+30, y-4, w, 5, "F")
		}
		setText(pdf, colorText)
		pdf.Text(pageMargin+30+barMaxWidth+4, y, fmt.Sprint(n))
		y += rowHeight
	}
}

func drawFooter(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "I", 8)
	setText(pdf, colorGray)
	pdf.Text(pageMargin, 297-pageMargin, "Generated by gitdash. Activity covers the most recent public events only.")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
