package handlers

import (
	"bytes"
	"net/http"

	"dental_lab/internal/adapter/export"
	request "dental_lab/internal/adapter/http/dto/request"
	response "dental_lab/internal/adapter/http/dto/response"
	"dental_lab/internal/domain/entities"
	"dental_lab/internal/usecase"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// CatalogHandler serves the priced service catalog and its spreadsheet
// template/import.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListServices godoc
// @Summary  List active services
// @Tags     catalog
// @Produce  json
// @Param    X-Owner-ID header string true  "Owner id"
// @Param    category   query  string false "Category code"
// @Param    q          query  string false "Search text"
// @Success  200 {array} response.ServiceResponse
// @Router   /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	filter := usecase.ServiceFilter{
		Category: entities.Category(c.Query("category")),
		Search:   c.Query("q"),
	}
	services, err := h.usecase.ListActiveServices(c.Request.Context(), ownerID(c), filter)
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var payload request.CreateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	created, err := h.usecase.CreateService(c.Request.Context(), ownerID(c), payload.Name, entities.Category(payload.Category), payload.Price)
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromService(created))
}

func (h *CatalogHandler) UpdateServicePrice(c *gin.Context) {
	var payload request.UpdateServicePriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	updated, err := h.usecase.UpdateServicePrice(c.Request.Context(), ownerID(c), c.Param("id"), payload.Price)
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromService(updated))
}

// DeactivateService soft-deletes; the row stays for historical work orders.
func (h *CatalogHandler) DeactivateService(c *gin.Context) {
	updated, err := h.usecase.DeactivateService(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromService(updated))
}

func (h *CatalogHandler) DownloadTemplate(c *gin.Context) {
	var buf bytes.Buffer
	if err := export.WriteCatalogTemplate(&buf); err != nil {
		writeError(c, internalError(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="plantilla_catalogo.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ImportCatalog godoc
// @Summary  Import services from a spreadsheet
// @Tags     catalog
// @Accept   multipart/form-data
// @Produce  json
// @Param    X-Owner-ID header   string true "Owner id"
// @Param    file       formData file   true "xlsx workbook"
// @Success  200 {object} response.CatalogImportResponse
// @Router   /catalog/import [post]
func (h *CatalogHandler) ImportCatalog(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, errInvalidRequest.WithField("file"))
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	defer f.Close()

	rows, rejected, err := export.ParseCatalog(f)
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	res, err := h.usecase.ImportServices(c.Request.Context(), ownerID(c), rows)
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogImport(res, rejected))
}
