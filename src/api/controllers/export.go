package controllers

import (
	"context"
	"fmt"

	"backoffice/src/models"
	"backoffice/src/schemas"

	"github.com/xuri/excelize/v2"
)

const driversSheet = "Drivers"

// ExportDrivers builds the driver roster workbook for the drivers matching
// query.
func (c *Controller) ExportDrivers(ctx context.Context, query schemas.ListQuery) (*excelize.File, error) {
	drivers, err := c.ListDrivers(ctx, query)
	if err != nil {
		return nil, err
	}
	rows := make([]schemas.Row, 0, len(drivers))
	for _, driver := range drivers {
		rows = append(rows, driver)
	}
	return buildWorkbook(driversSheet, models.DriverColumns, rows)
}

func buildWorkbook(sheetName string, columns []string, rows []schemas.Row) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, column := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, column); err != nil {
			return nil, err
		}
	}
	for r, row := range rows {
		for i, value := range row.Cells() {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	if err := applyHeaderStyle(f, sheetName, len(columns)); err != nil {
		return nil, err
	}
	return f, nil
}

func applyHeaderStyle(f *excelize.File, sheetName string, columns int) error {
	if columns == 0 {
		return nil
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6E6"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(columns)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", lastCol), headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "A", lastCol, 18); err != nil {
		return err
	}
	return f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
