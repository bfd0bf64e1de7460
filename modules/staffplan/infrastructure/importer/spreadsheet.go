package importer

import (
	"bytes"

	"github.com/extrame/xls"
	gerrors "github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"
)

// maxLegacyRows bounds how many rows are read from an .xls sheet.
const maxLegacyRows = 100000

// readWorkbook returns the cell text of the first sheet of an .xlsx workbook.
func readWorkbook(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, gerrors.Wrap(err, "open workbook")
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoWorksheet
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, gerrors.Wrapf(err, "read sheet %q", sheet)
	}
	if len(rows) == 0 {
		return nil, ErrMissingHeader
	}
	return rows, nil
}

func readLegacyWorkbook(data []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, gerrors.Wrap(err, "open xls workbook")
	}
	if wb.NumSheets() == 0 {
		return nil, ErrNoWorksheet
	}
	rows := wb.ReadAllCells(maxLegacyRows)
	if len(rows) == 0 {
		return nil, ErrMissingHeader
	}
	return rows, nil
}
