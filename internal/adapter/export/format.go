package export

import (
	"strconv"
	"strings"

	"dental_lab/internal/domain/entities"
)

const dateLayout = "2006-01-02"

var statusLabels = map[entities.WorkOrderStatus]string{
	entities.WorkOrderStatusPendiente:  "Pendiente",
	entities.WorkOrderStatusProduccion: "En producción",
	entities.WorkOrderStatusTerminado:  "Terminado",
	entities.WorkOrderStatusEntregado:  "Entregado",
}

func statusLabel(s entities.WorkOrderStatus) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// FormatMoney renders whole currency units with dot thousands separators,
// e.g. 1250000 -> "$ 1.250.000".
func FormatMoney(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	digits := strconv.FormatInt(v, 10)

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return sign + "$ " + b.String()
}
