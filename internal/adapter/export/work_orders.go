package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"dental_lab/internal/domain/entities"
	"dental_lab/internal/usecase"

	"github.com/xuri/excelize/v2"
)

const workOrdersSheet = "Órdenes"

var workOrderHeaders = []string{
	"ID",
	"Paciente",
	"Documento",
	"Clínica",
	"Odontólogo",
	"Técnico",
	"Recibido",
	"Entrega estimada",
	"Estado",
	"Total",
	"Observaciones",
}

func workOrderRecord(o entities.WorkOrder, names usecase.DirectoryNames) []any {
	return []any{
		o.ID,
		o.PatientName,
		o.PatientTaxID,
		names.Clinic(o.ClinicID),
		names.Dentist(o.DentistID),
		names.Technician(o.TechnicianID),
		o.ReceivedDate.Format(dateLayout),
		o.EstimatedDelivery.Format(dateLayout),
		statusLabel(o.Status),
		o.TotalPrice,
		o.Observations,
	}
}

// WriteWorkOrdersXLSX writes one row per order below a title and a styled header.
func WriteWorkOrdersXLSX(w io.Writer, orders []entities.WorkOrder, names usecase.DirectoryNames, generatedAt time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(workOrdersSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	f.SetCellValue(workOrdersSheet, "A1", "Órdenes de trabajo")
	f.SetCellStyle(workOrdersSheet, "A1", "A1", titleStyle)
	f.SetRowHeight(workOrdersSheet, 1, 30)
	f.SetCellValue(workOrdersSheet, "A2", fmt.Sprintf("Generado: %s", generatedAt.Format("2006-01-02 15:04:05")))

	headerStyle, _ := f.NewStyle(headerStyleDef())
	for col, h := range workOrderHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 4)
		f.SetCellValue(workOrdersSheet, cell, h)
		f.SetCellStyle(workOrdersSheet, cell, cell, headerStyle)
		name, _ := excelize.ColumnNumberToName(col + 1)
		f.SetColWidth(workOrdersSheet, name, name, 20)
	}

	moneyStyle, _ := f.NewStyle(&excelize.Style{NumFmt: 3})
	// 1-based column of "Total".
	totalCol := len(workOrderHeaders) - 1
	var total int64
	for i, o := range orders {
		cell, _ := excelize.CoordinatesToCellName(1, i+5)
		row := workOrderRecord(o, names)
		if err := f.SetSheetRow(workOrdersSheet, cell, &row); err != nil {
			return err
		}
		money, _ := excelize.CoordinatesToCellName(totalCol, i+5)
		f.SetCellStyle(workOrdersSheet, money, money, moneyStyle)
		total += o.TotalPrice
	}

	summaryRow := len(orders) + 6
	labelCell, _ := excelize.CoordinatesToCellName(totalCol-1, summaryRow)
	valueCell, _ := excelize.CoordinatesToCellName(totalCol, summaryRow)
	f.SetCellValue(workOrdersSheet, labelCell, "Total")
	f.SetCellValue(workOrdersSheet, valueCell, total)
	f.SetCellStyle(workOrdersSheet, valueCell, valueCell, moneyStyle)

	f.DeleteSheet("Sheet1")
	return f.Write(w)
}

// WriteWorkOrdersCSV writes the same columns as the spreadsheet without the
// title and summary rows.
func WriteWorkOrdersCSV(w io.Writer, orders []entities.WorkOrder, names usecase.DirectoryNames) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(workOrderHeaders); err != nil {
		return err
	}
	for _, o := range orders {
		rec := workOrderRecord(o, names)
		out := make([]string, len(rec))
		for i, v := range rec {
			switch v := v.(type) {
			case string:
				out[i] = v
			case int64:
				out[i] = strconv.FormatInt(v, 10)
			default:
				out[i] = fmt.Sprintf("%v", v)
			}
		}
		if err := writer.Write(out); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func headerStyleDef() *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	}
}
