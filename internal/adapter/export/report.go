package export

import (
	"html/template"
	"io"
	"math"
	"strconv"
	"time"

	"dental_lab/internal/domain/entities"
	"dental_lab/internal/usecase"
)

// Report is the printable work-order listing. Amounts are whole currency units.
type Report struct {
	Title       string
	GeneratedAt time.Time
	Rows        []ReportRow
	Subtotal    int64
	TaxRate     float64
	Tax         int64
	Total       int64
}

type ReportRow struct {
	ID                string
	PatientName       string
	Clinic            string
	Dentist           string
	Technician        string
	ReceivedDate      time.Time
	EstimatedDelivery time.Time
	Status            string
	TotalPrice        int64
}

// BuildReport resolves names and computes subtotal, tax (rounded to the unit)
// and tax-adjusted total.
func BuildReport(orders []entities.WorkOrder, names usecase.DirectoryNames, taxRate float64, now time.Time) Report {
	r := Report{
		Title:       "Reporte de órdenes de trabajo",
		GeneratedAt: now,
		Rows:        make([]ReportRow, 0, len(orders)),
		TaxRate:     taxRate,
	}
	for _, o := range orders {
		r.Rows = append(r.Rows, ReportRow{
			ID:                o.ID,
			PatientName:       o.PatientName,
			Clinic:            names.Clinic(o.ClinicID),
			Dentist:           names.Dentist(o.DentistID),
			Technician:        names.Technician(o.TechnicianID),
			ReceivedDate:      o.ReceivedDate,
			EstimatedDelivery: o.EstimatedDelivery,
			Status:            statusLabel(o.Status),
			TotalPrice:        o.TotalPrice,
		})
		r.Subtotal += o.TotalPrice
	}
	r.Tax = int64(math.Round(float64(r.Subtotal) * taxRate))
	r.Total = r.Subtotal + r.Tax
	return r
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"money":   FormatMoney,
	"date":    func(t time.Time) string { return t.Format(dateLayout) },
	"percent": formatPercent,
}).Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; font-size: 12px; margin: 24px; }
h1 { font-size: 18px; margin-bottom: 4px; }
table { width: 100%; border-collapse: collapse; margin-top: 16px; }
th { background: #4472C4; color: #fff; text-align: left; }
th, td { border: 1px solid #ccc; padding: 4px 6px; }
td.num, th.num { text-align: right; }
tfoot td { font-weight: bold; }
@media print { button { display: none; } }
</style>
</head>
<body>
<button onclick="window.print()">Imprimir</button>
<h1>{{.Title}}</h1>
<div>Generado: {{.GeneratedAt.Format "2006-01-02 15:04"}}</div>
<table>
<thead>
<tr><th>Orden</th><th>Paciente</th><th>Clínica</th><th>Odontólogo</th><th>Técnico</th><th>Recibido</th><th>Entrega</th><th>Estado</th><th class="num">Total</th></tr>
</thead>
<tbody>
{{- range .Rows}}
<tr><td>{{.ID}}</td><td>{{.PatientName}}</td><td>{{.Clinic}}</td><td>{{.Dentist}}</td><td>{{.Technician}}</td><td>{{date .ReceivedDate}}</td><td>{{date .EstimatedDelivery}}</td><td>{{.Status}}</td><td class="num">{{money .TotalPrice}}</td></tr>
{{- else}}
<tr><td colspan="9">Sin órdenes para los filtros seleccionados.</td></tr>
{{- end}}
</tbody>
<tfoot>
<tr><td colspan="8">Subtotal</td><td class="num">{{money .Subtotal}}</td></tr>
<tr><td colspan="8">IVA ({{percent .TaxRate}})</td><td class="num">{{money .Tax}}</td></tr>
<tr><td colspan="8">Total</td><td class="num">{{money .Total}}</td></tr>
</tfoot>
</table>
</body>
</html>
`))

func RenderReport(w io.Writer, r Report) error {
	return reportTemplate.Execute(w, r)
}

// formatPercent renders a rate as a percentage, 0.19 -> "19%".
func formatPercent(rate float64) string {
	return strconv.FormatFloat(math.Round(rate*10000)/100, 'f', -1, 64) + "%"
}
