package reports

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// renderPDF produces the printable variant of the settlement report.
func renderPDF(query SettlementQuery, rows []ReportRow) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1250")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Rozliczenie materiałów %s", query.CarPlate)), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Pracownik: %s", query.UserName)), "", 1, "C", false, 0, "")
	period := fmt.Sprintf("Okres: %s - %s", query.From.Format(dateLayout), query.To.Format(dateLayout))
	pdf.CellFormat(0, 8, tr(period), "", 1, "C", false, 0, "")
	if query.Place != "" {
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("Miejsce: %s", query.Place)), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(12, 8, "Lp", "1", 0, "C", false, 0, "")
	pdf.CellFormat(88, 8, tr("Nazwa"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 8, tr("Indeks"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 8, tr("Jednostka"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, tr("Ilość"), "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for i, row := range rows {
		pdf.CellFormat(12, 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(88, 7, tr(row.ProductName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, tr(row.ProductIndex), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 7, tr(row.Unit), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%g", row.Quantity), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
