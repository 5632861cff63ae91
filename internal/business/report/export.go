package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/trashtocash/admin-api/pkg/model"
	"github.com/xuri/excelize/v2"
)

// ExportHeader is the fixed column order of report exports.
var ExportHeader = []string{"ID", "Employee ID", "User ID", "Glass", "Plastic", "Cans", "Points", "Date", "Time", "Status"}

const xlsxSheet = "Report"

// ExportFilename names an export file after the day it was produced.
func ExportFilename(now time.Time, ext string) string {
	return fmt.Sprintf("report-%s.%s", now.UTC().Format("2006-01-02"), ext)
}

func exportRecord(r model.TransactionRow) []string {
	return []string{
		r.ID,
		r.EmployeeID,
		r.UserID,
		strconv.FormatInt(r.AmountGlass, 10),
		strconv.FormatInt(r.AmountPlastic, 10),
		strconv.FormatInt(r.AmountCans, 10),
		strconv.FormatInt(r.Points, 10),
		r.Date,
		r.Time,
		r.Status.Label(),
	}
}

// WriteCSV writes the header and one record per row.
func WriteCSV(w io.Writer, rows []model.TransactionRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ExportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		if err := writer.Write(exportRecord(r)); err != nil {
			return fmt.Errorf("write row %s: %w", r.ID, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ReadCSV parses a file produced by WriteCSV.
func ReadCSV(r io.Reader) ([]model.TransactionRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(ExportHeader)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty export")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, name := range ExportHeader {
		if header[i] != name {
			return nil, fmt.Errorf("unexpected column %d: %q", i, header[i])
		}
	}

	var rows []model.TransactionRow
	for line := 2; ; line++ {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		row, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRecord(rec []string) (model.TransactionRow, error) {
	var nums [4]int64
	for i := range nums {
		n, err := strconv.ParseInt(rec[3+i], 10, 64)
		if err != nil {
			return model.TransactionRow{}, fmt.Errorf("column %s: %w", ExportHeader[3+i], err)
		}
		nums[i] = n
	}
	status, ok := statusByLabel(rec[9])
	if !ok {
		return model.TransactionRow{}, fmt.Errorf("unknown status %q", rec[9])
	}
	return model.TransactionRow{
		ID:            rec[0],
		EmployeeID:    rec[1],
		UserID:        rec[2],
		AmountGlass:   nums[0],
		AmountPlastic: nums[1],
		AmountCans:    nums[2],
		Points:        nums[3],
		Date:          rec[7],
		Time:          rec[8],
		Status:        status,
		StatusLabel:   status.Label(),
	}, nil
}

func statusByLabel(label string) (model.RecyclingStatus, bool) {
	for _, s := range []model.RecyclingStatus{model.StatusDone, model.StatusPending, model.StatusError} {
		if s.Label() == label {
			return s, true
		}
	}
	return 0, false
}

// WriteXLSX writes the same table as WriteCSV into a single-sheet workbook.
func WriteXLSX(w io.Writer, rows []model.TransactionRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(ExportHeader))
	for i, h := range ExportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
	})
	if err == nil {
		_ = f.SetRowStyle(xlsxSheet, 1, 1, headerStyle)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			r.ID, r.EmployeeID, r.UserID,
			r.AmountGlass, r.AmountPlastic, r.AmountCans, r.Points,
			r.Date, r.Time, r.Status.Label(),
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &values); err != nil {
			return fmt.Errorf("write row %s: %w", r.ID, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
