package report

import (
	"fmt"

	"github.com/signintech/gopdf"

	"github.com/jordanvega/sentinel/internal/database"
)

const (
	pageLeft   = 40.0
	pageTop    = 40.0
	pageBottom = 790.0
	textWidth  = 515.0
)

// PDFRenderer renders incident reports with a TTF font loaded from disk.
// PDF output requires a configured font; the zero path renders nothing.
type PDFRenderer struct {
	fontPath string
}

func NewPDFRenderer(fontPath string) *PDFRenderer {
	return &PDFRenderer{fontPath: fontPath}
}

// Enabled reports whether PDF rendering is configured.
func (p *PDFRenderer) Enabled() bool {
	return p.fontPath != ""
}

// Render produces a PDF document for one report.
func (p *PDFRenderer) Render(r *database.Report) ([]byte, error) {
	if !p.Enabled() {
		return nil, fmt.Errorf("pdf rendering disabled: reports.font_path is not configured")
	}

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	if err := pdf.AddTTFFont("report", p.fontPath); err != nil {
		return nil, fmt.Errorf("loading font %s: %w", p.fontPath, err)
	}
	pdf.AddPage()

	y := pageTop
	write := func(size float64, text string) error {
		if err := pdf.SetFont("report", "", size); err != nil {
			return fmt.Errorf("setting font: %w", err)
		}
		lines, err := pdf.SplitText(text, textWidth)
		if err != nil {
			return fmt.Errorf("wrapping text: %w", err)
		}
		for _, line := range lines {
			if y > pageBottom {
				pdf.AddPage()
				y = pageTop
			}
			pdf.SetXY(pageLeft, y)
			if err := pdf.Cell(nil, line); err != nil {
				return fmt.Errorf("writing text: %w", err)
			}
			y += size * 1.4
		}
		y += size * 0.6
		return nil
	}

	if err := write(18, r.Title); err != nil {
		return nil, err
	}
	if err := write(11, fmt.Sprintf("Severity: %s    Date: %s", r.Severity, r.Date)); err != nil {
		return nil, err
	}

	sections := []struct {
		heading string
		body    string
	}{
		{"Description", r.Description},
		{"Analysis", r.Analysis},
		{"Root Cause", r.RootCause},
		{"Mitigation", r.Mitigation},
		{"Lessons Learned", r.LessonsLearned},
	}
	for _, s := range sections {
		if s.body == "" {
			continue
		}
		if err := write(14, s.heading); err != nil {
			return nil, err
		}
		if err := write(11, s.body); err != nil {
			return nil, err
		}
	}

	data, err := pdf.GetBytesPdfReturnErr()
	if err != nil {
		return nil, fmt.Errorf("building pdf: %w", err)
	}
	return data, nil
}
