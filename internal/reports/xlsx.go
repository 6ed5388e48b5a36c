package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Rozliczenie"

// renderXLSX produces the spreadsheet variant of the settlement report.
func renderXLSX(query SettlementQuery, rows []ReportRow) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	index, err := file.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	header := []string{
		fmt.Sprintf("Rozliczenie materiałów %s", query.CarPlate),
		fmt.Sprintf("Pracownik: %s", query.UserName),
		fmt.Sprintf("Okres: %s - %s", query.From.Format(dateLayout), query.To.Format(dateLayout)),
	}
	if query.Place != "" {
		header = append(header, fmt.Sprintf("Miejsce: %s", query.Place))
	}
	for i, line := range header {
		cell := fmt.Sprintf("A%d", i+1)
		if err := file.SetCellValue(sheetName, cell, line); err != nil {
			return nil, err
		}
	}
	tableStart := len(header) + 2

	columns := []string{"Lp", "Nazwa", "Indeks", "Jednostka", "Ilość"}
	for col, title := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, tableStart)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheetName, cell, title); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []any{i + 1, row.ProductName, row.ProductIndex, row.Unit, row.Quantity}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, tableStart+1+i)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	if err := file.SetColWidth(sheetName, "B", "B", 40); err != nil {
		return nil, err
	}
	if err := file.SetColWidth(sheetName, "C", "E", 14); err != nil {
		return nil, err
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
