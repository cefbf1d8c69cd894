package app

import (
    "fmt"
    "strings"

    "github.com/jung-kurt/gofpdf"

    "github.com/hyperifyio/goshopsearch/internal/search"
)

// writeResultsPDF renders a minimal product report: query heading, summary
// paragraph, then one block per result with its specs and a clickable link.
// This is intentionally simple and does not attempt full layout. Prices are
// already normalized to ASCII, so the core Helvetica font suffices.
func writeResultsPDF(query string, resp *search.SearchResponse, outPath string) error {
    pdf := gofpdf.New("P", "mm", "A4", "")
    pdf.SetFont("Helvetica", "B", 14)
    pdf.AddPage()
    pdf.CellFormat(0, 8, "Search results: "+query, "", 1, "L", false, 0, "")
    pdf.SetFont("Helvetica", "", 11)

    if s := strings.TrimSpace(resp.Summary); s != "" {
        pdf.MultiCell(0, 5, s, "", "L", false)
        pdf.Ln(3)
    }

    for i, p := range resp.Results {
        pdf.SetFont("Helvetica", "B", 12)
        pdf.CellFormat(0, 7, fmt.Sprintf("%d. %s", i+1, p.Name), "", 1, "L", false, 0, "")
        pdf.SetFont("Helvetica", "", 11)
        if p.Price != "" {
            pdf.MultiCell(0, 5, "Price: "+p.Price, "", "L", false)
        }
        if p.Rating != nil {
            pdf.MultiCell(0, 5, fmt.Sprintf("Rating: %.1f", *p.Rating), "", "L", false)
        }
        for _, s := range p.Specifications {
            pdf.MultiCell(0, 5, "- "+s, "", "L", false)
        }
        if p.Source != "" {
            pdf.MultiCell(0, 5, "Source: "+p.Source, "", "L", false)
        }
        if p.Link != "" {
            pdf.WriteLinkString(5, p.Link, p.Link)
            pdf.Ln(6)
        }
        pdf.Ln(2)
    }
    if len(resp.Results) == 0 {
        pdf.MultiCell(0, 5, "No results.", "", "L", false)
    }

    return pdf.OutputFileAndClose(outPath)
}
