package handlers

import (
	"bytes"
	"net/http"
	"time"

	"dental_lab/internal/adapter/export"
	response "dental_lab/internal/adapter/http/dto/response"
	"dental_lab/internal/domain/entities"
	"dental_lab/internal/usecase"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type WorkOrderHandler struct {
	usecase   usecase.IWorkOrderUseCase
	directory usecase.IDirectoryUseCase
	taxRate   float64
	now       func() time.Time
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase, directory usecase.IDirectoryUseCase, taxRate float64) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc, directory: directory, taxRate: taxRate, now: time.Now}
}

// filterFromQuery reads clinic_id, status, from and to. Dates are whole days;
// to is inclusive.
func filterFromQuery(c *gin.Context) (usecase.WorkOrderFilter, bool) {
	f := usecase.WorkOrderFilter{
		ClinicID: c.Query("clinic_id"),
		Status:   entities.WorkOrderStatus(c.Query("status")),
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return f, false
		}
		f.From = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return f, false
		}
		f.To = t.Add(24*time.Hour - time.Nanosecond)
	}
	return f, true
}

// ListWorkOrders godoc
// @Summary  List work orders, newest first
// @Tags     work-orders
// @Produce  json
// @Param    X-Owner-ID header string true  "Owner id"
// @Param    clinic_id  query  string false "Clinic filter"
// @Param    status     query  string false "pendiente, produccion, terminado or entregado"
// @Param    from       query  string false "First received day (YYYY-MM-DD)"
// @Param    to         query  string false "Last received day (YYYY-MM-DD)"
// @Success  200 {array} response.WorkOrderResponse
// @Router   /work-orders [get]
func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	f, ok := filterFromQuery(c)
	if !ok {
		writeError(c, errInvalidRequest)
		return
	}
	orders, err := h.usecase.ListWorkOrders(c.Request.Context(), ownerID(c), f)
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrders(orders))
}

func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	detail, err := h.usecase.GetWorkOrder(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrderDetail(detail))
}

// AdvanceStatus godoc
// @Summary  Move a work order to its next status
// @Tags     work-orders
// @Produce  json
// @Param    X-Owner-ID header string true "Owner id"
// @Param    id         path   string true "Work order id"
// @Success  200 {object} response.WorkOrderResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /work-orders/{id}/advance [patch]
func (h *WorkOrderHandler) AdvanceStatus(c *gin.Context) {
	order, err := h.usecase.AdvanceStatus(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

// ListOrphans reports work orders saved without service rows.
func (h *WorkOrderHandler) ListOrphans(c *gin.Context) {
	orders, err := h.usecase.FindOrphans(c.Request.Context(), ownerID(c))
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrders(orders))
}

// listWithNames loads the filtered orders and the names needed to print them.
func (h *WorkOrderHandler) listWithNames(c *gin.Context) ([]entities.WorkOrder, usecase.DirectoryNames, bool) {
	f, ok := filterFromQuery(c)
	if !ok {
		writeError(c, errInvalidRequest)
		return nil, usecase.DirectoryNames{}, false
	}
	ctx := c.Request.Context()
	owner := ownerID(c)

	orders, err := h.usecase.ListWorkOrders(ctx, owner, f)
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return nil, usecase.DirectoryNames{}, false
	}
	names, err := h.directory.Names(ctx, owner)
	if err != nil {
		writeError(c, mapDirectoryError(err))
		return nil, usecase.DirectoryNames{}, false
	}
	return orders, names, true
}

// ExportWorkOrders godoc
// @Summary  Download the filtered work orders as a spreadsheet
// @Tags     work-orders
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce  text/csv
// @Param    X-Owner-ID header string true  "Owner id"
// @Param    format     query  string false "xlsx (default) or csv"
// @Success  200 {file} file
// @Router   /work-orders/export [get]
func (h *WorkOrderHandler) ExportWorkOrders(c *gin.Context) {
	format := c.DefaultQuery("format", "xlsx")
	if format != "xlsx" && format != "csv" {
		writeError(c, errInvalidExportFormat)
		return
	}
	orders, names, ok := h.listWithNames(c)
	if !ok {
		return
	}

	now := h.now()
	var buf bytes.Buffer
	var err error
	contentType := xlsxContentType
	if format == "csv" {
		contentType = "text/csv; charset=utf-8"
		err = export.WriteWorkOrdersCSV(&buf, orders, names)
	} else {
		err = export.WriteWorkOrdersXLSX(&buf, orders, names, now)
	}
	if err != nil {
		writeError(c, internalError(err))
		return
	}

	filename := "ordenes_" + now.Format(dateLayout) + "." + format
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// Report renders a printable HTML summary of the filtered work orders.
func (h *WorkOrderHandler) Report(c *gin.Context) {
	orders, names, ok := h.listWithNames(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := export.RenderReport(&buf, export.BuildReport(orders, names, h.taxRate, h.now())); err != nil {
		writeError(c, internalError(err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
