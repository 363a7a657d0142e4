package utils

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"tours-backend/models"
)

// Currency codes with a known symbol render as a bare prefix; anything else
// falls back to "<CODE> ".
var currencySymbols = map[string]string{
	"ZAR": "R",
}

var difficultyLabels = map[string]string{
	"easy":        "Easy - All fitness levels",
	"moderate":    "Moderate - Regular exercise helpful",
	"challenging": "Challenging - Good fitness required",
	"strenuous":   "Strenuous - Excellent fitness required",
}

// ZapfDingbats code points for the list markers: 0x33 is a check mark,
// 0x37 a ballot X.
const (
	dingbatCheck = "3"
	dingbatCross = "7"
)

func currencyPrefix(code string) string {
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	return code + " "
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func formatPrice(p models.Pricing) string {
	text := currencyPrefix(p.Currency) + formatAmount(p.Amount)
	if p.PerPerson {
		text += " per person"
	}
	return text
}

func formatGroupSize(g models.GroupSize) string {
	return fmt.Sprintf("%d-%d people", g.Min, g.Max)
}

// difficultyLabel maps a recognized difficulty level through the fixed
// label table, falling back to the raw stored value.
func difficultyLabel(level string) string {
	if label, ok := difficultyLabels[level]; ok {
		return label
	}
	return level
}

// mealsSummary joins only the meals flagged true; empty means the line is
// omitted entirely.
func mealsSummary(m *models.Meals) string {
	if m == nil {
		return ""
	}
	var parts []string
	if m.Breakfast {
		parts = append(parts, "Breakfast")
	}
	if m.Lunch {
		parts = append(parts, "Lunch")
	}
	if m.Dinner {
		parts = append(parts, "Dinner")
	}
	return strings.Join(parts, ", ")
}

type tourDoc struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func (d *tourDoc) heading(text string) {
	d.pdf.SetFont("Helvetica", "B", 16)
	d.pdf.SetTextColor(0x2D, 0x50, 0x16)
	d.pdf.MultiCell(0, 20, d.tr(text), "", "L", false)
	d.pdf.Ln(3)
}

func (d *tourDoc) subheading(text string) {
	d.pdf.SetFont("Helvetica", "B", 13)
	d.pdf.SetTextColor(0x2D, 0x50, 0x16)
	d.pdf.MultiCell(0, 17, d.tr(text), "", "L", false)
	d.pdf.Ln(2)
}

func (d *tourDoc) dayHeading(text string) {
	d.pdf.SetFont("Helvetica", "B", 13)
	d.pdf.SetTextColor(0xD4, 0xA8, 0x43)
	d.pdf.MultiCell(0, 17, d.tr(text), "", "L", false)
	d.pdf.Ln(2)
}

func (d *tourDoc) bodyText(text string) {
	d.pdf.SetFont("Helvetica", "", 11)
	d.pdf.SetTextColor(0x1A, 0x1A, 0x1A)
	d.pdf.MultiCell(0, 15, d.tr(text), "", "L", false)
}

func (d *tourDoc) boldText(text string) {
	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.SetTextColor(0x1A, 0x1A, 0x1A)
	d.pdf.MultiCell(0, 16, d.tr(text), "", "L", false)
}

func (d *tourDoc) note(text string) {
	d.pdf.SetFont("Helvetica", "I", 10)
	d.pdf.SetTextColor(0x55, 0x55, 0x55)
	d.pdf.MultiCell(0, 14, d.tr(text), "", "L", false)
}

func (d *tourDoc) bullet(text string) {
	d.bodyText("  •  " + text)
}

// markedItem draws a Dingbats marker followed by the item text.
func (d *tourDoc) markedItem(mark, text string) {
	d.pdf.SetFont("ZapfDingbats", "", 11)
	d.pdf.SetTextColor(0x1A, 0x1A, 0x1A)
	d.pdf.CellFormat(20, 15, mark, "", 0, "C", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 11)
	d.pdf.MultiCell(0, 15, d.tr(text), "", "L", false)
}

// RenderTourPDF projects one tour aggregate into a paginated PDF. Sections
// appear in a fixed order and are emitted only when their data is present —
// absence means omission, never a placeholder. Page breaks are the layout
// engine's business.
func RenderTourPDF(tour models.Tour) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(50, 50, 50)
	pdf.SetAutoPageBreak(true, 50)
	pdf.AddPage()

	d := &tourDoc{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	// Title and meta line
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(0x1A, 0x1A, 0x1A)
	pdf.MultiCell(0, 28, d.tr(tour.Title), "", "C", false)
	pdf.Ln(4)

	var meta []string
	if tour.Category != "" {
		meta = append(meta, tour.Category)
	}
	if tour.Duration != "" {
		meta = append(meta, tour.Duration)
	}
	if tour.GroupSize != nil {
		meta = append(meta, formatGroupSize(*tour.GroupSize))
	}
	if len(meta) > 0 {
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(0x55, 0x55, 0x55)
		pdf.MultiCell(0, 14, d.tr(strings.Join(meta, " | ")), "", "C", false)
	}
	pdf.Ln(12)

	if tour.Excerpt != "" {
		d.bodyText(tour.Excerpt)
		pdf.Ln(12)
	}

	if tour.Pricing != nil {
		d.heading("Pricing")
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(0x1A, 0x1A, 0x1A)
		pdf.MultiCell(0, 18, d.tr(formatPrice(*tour.Pricing)), "", "L", false)
		pdf.Ln(6)
	}

	if len(tour.Inclusions) > 0 {
		d.subheading("What's Included")
		for _, item := range tour.Inclusions {
			d.markedItem(dingbatCheck, item)
		}
		pdf.Ln(6)
	}

	if len(tour.Exclusions) > 0 {
		d.subheading("What's Not Included")
		for _, item := range tour.Exclusions {
			d.markedItem(dingbatCross, item)
		}
		pdf.Ln(6)
	}

	// Days are emitted in the order given — the generator never re-sorts
	// or deduplicates day numbers.
	if len(tour.Itinerary) > 0 {
		pdf.Ln(6)
		d.heading("Day-by-Day Itinerary")
		for _, day := range tour.Itinerary {
			d.dayHeading(fmt.Sprintf("Day %d: %s", day.DayNumber, day.Title))
			if day.Description != "" {
				d.bodyText(day.Description)
				pdf.Ln(2)
			}
			for _, activity := range day.Activities {
				d.bullet(activity)
			}
			if meals := mealsSummary(day.Meals); meals != "" {
				d.note("Meals: " + meals)
			}
			if day.Accommodation != "" {
				d.note("Accommodation: " + day.Accommodation)
			}
			pdf.Ln(6)
		}
	}

	if tour.SafetyInfo != nil {
		info := tour.SafetyInfo
		d.heading("Safety & Requirements")
		if info.DifficultyLevel != "" {
			d.boldText("Difficulty: " + difficultyLabel(info.DifficultyLevel))
			pdf.Ln(2)
		}
		if info.FitnessRequirements != "" {
			d.bodyText(info.FitnessRequirements)
			pdf.Ln(4)
		}
		if len(info.WhatToBring) > 0 {
			d.boldText("What to Bring")
			for _, item := range info.WhatToBring {
				d.bullet(item)
			}
			pdf.Ln(4)
		}
		if info.GuideCertifications != "" {
			d.boldText("Guide Certifications")
			d.bodyText(info.GuideCertifications)
		}
	}

	pdf.Ln(24)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0x55, 0x55, 0x55)
	pdf.MultiCell(0, 12, "JaJa Tours - South African Adventures", "", "C", false)
	pdf.MultiCell(0, 12, "www.jajatours.co.za", "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render tour pdf: %w", err)
	}
	return buf.Bytes(), nil
}
