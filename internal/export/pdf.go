package export

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/Pooji-A/travelitineraryproject/internal/models"
	"github.com/jung-kurt/gofpdf"
)

// ErrNothingToExport is returned when the owner has no itineraries. It is a
// soft notice for the caller, not a server fault.
var ErrNothingToExport = errors.New("no itineraries to export")

// Fixed page layout: US Letter in points, text starts 50pt from the top at a
// 30pt left margin, 15pt between lines inside a block and an extra 20pt
// between blocks.
const (
	leftMargin   = 30.0
	topOffset    = 50.0
	bottomMargin = 50.0
	lineStep     = 15.0
	blockGap     = 20.0
	fontSize     = 12.0

	linesPerBlock = 5
	// Vertical span from the first to the last baseline of a block.
	blockSpan = (linesPerBlock - 1) * lineStep
)

const dateLayout = "2006-01-02"

// Document is a fully generated export artifact.
type Document struct {
	Filename string
	Bytes    []byte
	Pages    int
	Blocks   int
}

// Filename derives the deterministic artifact name from the export time.
func Filename(now time.Time) string {
	return fmt.Sprintf("itineraries_%s.pdf", now.Format("20060102_150405"))
}

// BuildDocument renders one fixed-format block per itinerary, in the order
// given, starting a new page before any block that would cross the bottom
// margin. The document is built entirely in memory so a failure never leaves
// a truncated artifact behind.
func BuildDocument(itineraries []models.Itinerary, now time.Time) (*Document, error) {
	if len(itineraries) == 0 {
		return nil, ErrNothingToExport
	}

	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", fontSize)

	_, pageHeight := pdf.GetPageSize()
	y := topOffset

	for _, itinerary := range itineraries {
		if y+blockSpan > pageHeight-bottomMargin {
			pdf.AddPage()
			y = topOffset
		}

		for i, line := range blockLines(itinerary) {
			pdf.Text(leftMargin, y+float64(i)*lineStep, line)
		}
		y += blockSpan + blockGap
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return &Document{
		Filename: Filename(now),
		Bytes:    buf.Bytes(),
		Pages:    pdf.PageCount(),
		Blocks:   len(itineraries),
	}, nil
}

func blockLines(itinerary models.Itinerary) []string {
	return []string{
		fmt.Sprintf("Destination: %s", itinerary.Destination),
		fmt.Sprintf("Start Date: %s", itinerary.StartDate.Format(dateLayout)),
		fmt.Sprintf("End Date: %s", itinerary.EndDate.Format(dateLayout)),
		fmt.Sprintf("Number of Days: %d", itinerary.NumDays),
		fmt.Sprintf("Description: %s", itinerary.Description),
	}
}
