// Package export writes ranked fails-to-deliver records to CSV and XLSX.
// All display formatting (grouped quantities, currency values) lives here;
// the underlying records stay numeric.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/quantitativesqueezing/ftdfetcher/internal/ftd"
)

// Columns defines the ordered output columns.
var Columns = []string{
	"SettlementDate",
	"Symbol",
	"Company",
	"CUSIP",
	"Price",
	"QuantityFails",
	"FTD_Value",
}

var printer = message.NewPrinter(language.English)

// FormatQuantity renders a fail quantity with grouping separators.
func FormatQuantity(q float64) string {
	return printer.Sprintf("%d", int64(q))
}

// FormatValue renders an FTD value as currency with two decimals.
func FormatValue(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

// FormatRow renders one record in column order.
func FormatRow(r ftd.FailRecord) []string {
	return []string{
		r.SettlementDate,
		r.Symbol,
		r.Company,
		r.CUSIP,
		strconv.FormatFloat(r.Price, 'f', -1, 64),
		FormatQuantity(r.QuantityFails),
		FormatValue(r.FTDValue),
	}
}

// BaseName returns the export file name stem, e.g. FTD_Top200_20240112.
func BaseName(n int, latestDate string) string {
	return fmt.Sprintf("FTD_Top%d_%s", n, latestDate)
}

// WriteCSV writes the records as a CSV file at path.
func WriteCSV(records []ftd.FailRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "export: create %s", path)
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(Columns); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}
	for _, r := range records {
		if err := w.Write(FormatRow(r)); err != nil {
			return eris.Wrap(err, "export: write csv row")
		}
	}

	w.Flush()
	return eris.Wrap(w.Error(), "export: flush csv")
}

// WriteXLSX writes the records as a single-sheet XLSX file at path.
func WriteXLSX(records []ftd.FailRecord, path string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("FTD")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, col := range Columns {
		header.AddCell().SetString(col)
	}

	for _, r := range records {
		row := sheet.AddRow()
		for _, cell := range FormatRow(r) {
			row.AddCell().SetString(cell)
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "export: save %s", path)
	}
	return nil
}

// WriteAll writes both CSV and XLSX files into dir and returns their paths.
func WriteAll(records []ftd.FailRecord, dir string, n int, latestDate string) (string, string, error) {
	base := filepath.Join(dir, BaseName(n, latestDate))

	csvPath := base + ".csv"
	if err := WriteCSV(records, csvPath); err != nil {
		return "", "", err
	}

	xlsxPath := base + ".xlsx"
	if err := WriteXLSX(records, xlsxPath); err != nil {
		return "", "", err
	}

	return csvPath, xlsxPath, nil
}
