package routes

import (
	"dental_lab/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices      = "/services"
	PathCatalog       = "/catalog"
	PathClinics       = "/clinics"
	PathTechnicians   = "/technicians"
	PathDraftSession  = "/drafts/session"
	PathWorkOrders    = "/work-orders"
	PathDashboard     = "/dashboard"
	PathSubscriptions = "/subscriptions"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	services := rg.Group(PathServices)
	{
		services.GET("", h.ListServices)
		services.POST("", h.CreateService)
		services.PATCH("/:id/price", h.UpdateServicePrice)
		services.DELETE("/:id", h.DeactivateService)
	}

	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/template", h.DownloadTemplate)
		catalog.POST("/import", h.ImportCatalog)
	}
}

func addDirectoryRoutes(rg *gin.RouterGroup, h *handlers.DirectoryHandler) {
	rg.GET(PathClinics, h.ListClinics)
	rg.GET(PathClinics+"/:id/dentists", h.ListDentists)
	rg.GET(PathTechnicians, h.ListTechnicians)
}

func addDraftRoutes(rg *gin.RouterGroup, h *handlers.DraftHandler) {
	session := rg.Group(PathDraftSession)
	{
		session.POST("", h.StartSession)
		session.GET("", h.GetSession)
		session.DELETE("", h.ClearSession)
		session.PUT("/selection", h.UpdateSelection)
		session.PUT("/patient", h.UpdatePatient)
		session.PUT("/mode", h.UpdateMode)
		session.PUT("/filters", h.UpdateFilters)
		session.PUT("/material", h.UpdateMaterial)
		session.PUT("/cards/:service_id", h.UpdateCardInput)
		session.POST("/items", h.AddItem)
		session.POST("/items/detailed", h.AddDetailedItem)
		session.DELETE("/items/:item_id", h.RemoveItem)
		session.POST("/finalize", h.Finalize)
		session.POST("/unload", h.Unload)
	}
}

func addWorkOrderRoutes(rg *gin.RouterGroup, h *handlers.WorkOrderHandler) {
	orders := rg.Group(PathWorkOrders)
	{
		orders.GET("", h.ListWorkOrders)
		orders.GET("/orphans", h.ListOrphans)
		orders.GET("/export", h.ExportWorkOrders)
		orders.GET("/report", h.Report)
		orders.GET("/:id", h.GetWorkOrder)
		orders.PATCH("/:id/advance", h.AdvanceStatus)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	rg.GET(PathDashboard+"/stats", h.Stats)
}

func addSubscriptionRoutes(rg *gin.RouterGroup, h *handlers.SubscriptionPaymentHandler) {
	payments := rg.Group(PathSubscriptions + "/payments")
	{
		payments.POST("", h.CreatePayment)
		payments.GET("", h.ListPayments)
		payments.GET("/:id", h.GetPayment)
	}
}
