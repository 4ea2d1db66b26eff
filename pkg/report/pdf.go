// Package report renders an assessment to a PDF document.
package report

import (
	"fmt"

	"github.com/KatyGHub/finhealth-app/pkg/assessment"
	"github.com/KatyGHub/finhealth-app/pkg/constants"
	"github.com/KatyGHub/finhealth-app/pkg/format"
	"github.com/KatyGHub/finhealth-app/pkg/swot"
	"github.com/go-pdf/fpdf"
)

// rupee formats an amount for PDF output. Standard PDF fonts are Latin-1 and
// have no rupee glyph, so the symbol becomes "Rs".
func rupee(amount float64) string {
	return "Rs " + format.Numeric(amount)
}

// WritePDF renders the assessment and writes it to the given path.
func WritePDF(a assessment.Assessment, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("FinHealth Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "FinHealth Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, fmt.Sprintf("Score: %d/100 (%s)", a.Health.Score, a.Health.Band), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// Pillar table
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(70, 7, "Pillar", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Points", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pillarRows := []struct {
		name   string
		points float64
		max    float64
	}{
		{"Savings", a.Health.Pillars.Savings, constants.SavingsPillarMax},
		{"EMI burden", a.Health.Pillars.EMI, constants.EMIPillarMax},
		{"Emergency fund", a.Health.Pillars.EmergencyFund, constants.EmergencyFundPillarMax},
		{"Protection", a.Health.Pillars.Protection, constants.ProtectionPillarMax},
		{"Investments", a.Health.Pillars.Investments, constants.InvestmentPillarMax},
	}
	for _, row := range pillarRows {
		pdf.CellFormat(70, 7, row.name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%.1f / %.0f", row.points, row.max), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Cash flow
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Monthly cash flow", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Income %s | Expenses %s | Savings %s (%s)",
		rupee(a.Totals.TotalIncome), rupee(a.Totals.TotalExpenses),
		rupee(a.Totals.MonthlySavings), format.Percent(a.Totals.SavingsRate)), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// FIRE plan
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "FIRE plan", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Target corpus %s in %d years", rupee(a.Fire.TargetCorpus), a.Fire.YearsToTarget), "", 1, "L", false, 0, "")
	if a.Fire.AlreadyFunded {
		pdf.CellFormat(0, 6, "Existing investments already fund the target.", "", 1, "L", false, 0, "")
	} else {
		pdf.CellFormat(0, 6, fmt.Sprintf("Required SIP %s per month, or %s as a lump sum today",
			rupee(a.Fire.RequiredMonthlySIP), rupee(a.Fire.RequiredLumpSumToday)), "", 1, "L", false, 0, "")
	}
	for _, w := range a.WhatIfs {
		pdf.CellFormat(0, 6, fmt.Sprintf("What-if (%s): corpus %s, shortfall %s",
			w.Label, rupee(w.ProjectedCorpus), rupee(w.Shortfall)), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	// SWOT
	writeFindings(pdf, "Strengths", a.Swot.Strengths)
	writeFindings(pdf, "Weaknesses", a.Swot.Weaknesses)
	writeFindings(pdf, "Opportunities", a.Swot.Opportunities)
	writeFindings(pdf, "Threats", a.Swot.Threats)

	// Actions
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Suggested actions", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, action := range a.Health.Actions {
		pdf.MultiCell(0, 6, "- "+action, "", "L", false)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF report to %s: %w", path, err)
	}
	return nil
}

func writeFindings(pdf *fpdf.Fpdf, heading string, findings []swot.Finding) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, heading, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, f := range findings {
		pdf.MultiCell(0, 6, "- "+f.Label, "", "L", false)
	}
	pdf.Ln(2)
}
