package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	domain "github.com/yanqian/travel-planner/internal/domain/export"
	"github.com/yanqian/travel-planner/internal/domain/planner"
	"github.com/yanqian/travel-planner/pkg/util"
)

// PDFRenderer draws plans on A4 pages with gofpdf.
type PDFRenderer struct {
	currency string
	qr       *QREncoder
}

// NewPDFRenderer constructs a renderer. Core PDF fonts only cover Latin-1,
// so currency symbols outside it are spelled out.
func NewPDFRenderer(currencySymbol string, qr *QREncoder) *PDFRenderer {
	return &PDFRenderer{currency: pdfCurrency(currencySymbol), qr: qr}
}

// Render lays out the plan summary, itinerary and nearby places. A QR code of
// shareURL is placed in the header when provided.
func (r *PDFRenderer) Render(plan planner.TripPlan, shareURL string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(fmt.Sprintf("Travel plan: %s", plan.Destination), true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, tr(fmt.Sprintf("Your Trip to %s", plan.Destination)))
	pdf.Ln(12)

	if shareURL != "" && r.qr != nil {
		png, err := r.qr.Encode(shareURL)
		if err != nil {
			return nil, fmt.Errorf("encode share qr: %w", err)
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("share", opts, bytes.NewReader(png))
		pdf.ImageOptions("share", 160, 10, 35, 35, false, opts, 0, "")
	}

	pdf.SetFont("Arial", "", 12)
	for _, line := range r.summaryLines(plan) {
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(7)
	}
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 9, "Daily Itinerary")
	pdf.Ln(10)
	if len(plan.Itinerary) == 0 {
		pdf.SetFont("Arial", "I", 11)
		pdf.Cell(0, 7, "Pick travel dates to get a day-by-day itinerary.")
		pdf.Ln(8)
	}
	for _, day := range plan.Itinerary {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 7, fmt.Sprintf("Day %d", day.Day))
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 11)
		for _, activity := range day.Activities {
			pdf.Cell(6, 6, "")
			pdf.Cell(0, 6, tr("- "+activity))
			pdf.Ln(6)
		}
		pdf.Ln(2)
	}

	if len(plan.NearbyPlaces) > 0 {
		pdf.Ln(3)
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 9, "Nearby Places")
		pdf.Ln(10)
		for _, place := range plan.NearbyPlaces {
			pdf.SetFont("Arial", "B", 11)
			pdf.Cell(0, 6, tr(fmt.Sprintf("%s (%s, %s)", place.Name, place.Distance, place.Rate)))
			pdf.Ln(6)
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 5, tr(place.Description), "", "L", false)
			pdf.Ln(2)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) summaryLines(plan planner.TripPlan) []string {
	dates := "Flexible dates"
	if plan.StartDate != "" && plan.EndDate != "" {
		dates = fmt.Sprintf("%s to %s", plan.StartDate, plan.EndDate)
	}
	interests := make([]string, 0, len(plan.Interests))
	for _, interest := range plan.Interests {
		interests = append(interests, string(interest))
	}
	lines := []string{
		fmt.Sprintf("Dates: %s (%d days)", dates, plan.Days),
		fmt.Sprintf("Travelers: %d", plan.Travelers),
		fmt.Sprintf("Budget: %s", plan.Budget),
		fmt.Sprintf("Estimated total: %s", util.FormatMoney(r.currency, plan.TotalCost)),
	}
	if len(interests) > 0 {
		lines = append(lines, "Interests: "+strings.Join(interests, ", "))
	}
	return lines
}

var _ domain.PDFRenderer = (*PDFRenderer)(nil)

func pdfCurrency(symbol string) string {
	switch symbol {
	case "₹":
		return "Rs. "
	case "€":
		return "EUR "
	}
	for _, r := range symbol {
		if r > 0xFF {
			return ""
		}
	}
	return symbol
}
