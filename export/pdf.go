package export

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/undeconstructed/sugoroku/game"
)

const (
	pageW     = 595
	pageH     = 842
	margin    = 40
	cardGap   = 14
	cardPad   = 8
	barH      = 18
	lineH     = 13
	fontSize  = 10
	titleSize = 16
)

// PDF returns the board as PDF bytes, one boxed card per area in
// board order. The built-in fonts only cover cp1252, so boards in
// other scripts render fully through the TeX export instead.
func PDF(b *game.Board, m game.Messages) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(margin, margin)
	pdf.CellFormat(pageW-2*margin, 20, tr(b.Title), "", 0, "C", false, 0, "")

	cardW := float64(pageW - 2*margin)
	textW := cardW - 2*cardPad
	y := float64(margin) + 20 + cardGap

	for i, a := range b.Areas {
		// wrap the card text first, to know the card's height
		pdf.SetFont("Helvetica", "", fontSize)
		var lines []string
		for _, line := range strings.Split(a.Describe(m), "\n") {
			if line == "" {
				lines = append(lines, "")
				continue
			}
			for _, seg := range pdf.SplitLines([]byte(tr(line)), textW) {
				lines = append(lines, string(seg))
			}
		}

		cardH := barH + float64(len(lines))*lineH + 2*cardPad
		if y+cardH > pageH-margin {
			pdf.AddPage()
			y = margin
		}

		label := m.T("area.label", i)
		switch i {
		case 0:
			label += " - " + m.T("area.start")
		case b.Goal():
			label += " - " + m.T("area.goal")
		}

		// black title bar with white text, like the TeX boxes
		pdf.SetFillColor(0, 0, 0)
		pdf.Rect(margin, y, cardW, barH, "F")
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", fontSize)
		pdf.SetXY(margin+cardPad, y)
		pdf.CellFormat(textW, barH, tr(label), "", 0, "L", false, 0, "")

		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", fontSize)
		ty := y + barH + cardPad
		for _, line := range lines {
			pdf.SetXY(margin+cardPad, ty)
			pdf.CellFormat(textW, lineH, line, "", 0, "L", false, 0, "")
			ty += lineH
		}

		pdf.SetDrawColor(0, 0, 0)
		pdf.Rect(margin, y, cardW, cardH, "D")

		y += cardH + cardGap
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
