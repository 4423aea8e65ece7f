package handlers

import (
	"encoding/json"
	"net/http"

	request "dental_lab/internal/adapter/http/dto/request"
	response "dental_lab/internal/adapter/http/dto/response"
	"dental_lab/internal/domain/entities"
	"dental_lab/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SubscriptionPaymentHandler handles the laboratory's subscription charges.
type SubscriptionPaymentHandler struct {
	usecase  usecase.ISubscriptionPaymentUseCase
	mockMode bool
	log      *logrus.Entry
}

func NewSubscriptionPaymentHandler(uc usecase.ISubscriptionPaymentUseCase, mockMode bool, log *logrus.Logger) *SubscriptionPaymentHandler {
	return &SubscriptionPaymentHandler{usecase: uc, mockMode: mockMode, log: log.WithField("component", "payment_handler")}
}

// CreatePayment godoc
// @Summary      Charge a subscription plan
// @Description  In mock mode a missing or broken mp_payload falls back to an empty object.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-Owner-ID header string                             true "Owner id"
// @Param        body       body   request.SubscriptionPaymentRequest true "Plan and Mercado Pago payload"
// @Success      200 {object} response.SubscriptionPaymentResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /subscriptions/payments [post]
func (h *SubscriptionPaymentHandler) CreatePayment(c *gin.Context) {
	owner := ownerID(c)
	log := h.log.WithField("owner_id", owner)

	var payload request.SubscriptionPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.WithError(err).Warn("invalid payment request")
		writeError(c, errInvalidRequest)
		return
	}
	if len(payload.MPPayload) == 0 || string(payload.MPPayload) == "null" {
		if !h.mockMode {
			writeError(c, errInvalidRequest.WithField("mp_payload"))
			return
		}
		log.Debug("empty mp_payload in mock mode; using {}")
		payload.MPPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), owner, entities.SubscriptionPlan(payload.Plan), payload.MPPayload)
	if err != nil {
		log.WithError(err).Warn("payment create failed")
		writeError(c, mapSubscriptionPaymentError(err))
		return
	}
	log.WithFields(logrus.Fields{"payment_id": created.ID, "status": created.Status}).Info("payment created")

	c.JSON(http.StatusOK, response.FromSubscriptionPayment(created))
}

func (h *SubscriptionPaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByOwner(c.Request.Context(), ownerID(c))
	if err != nil {
		writeError(c, mapSubscriptionPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSubscriptionPayments(payments))
}

func (h *SubscriptionPaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.usecase.GetByID(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		writeError(c, mapSubscriptionPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSubscriptionPayment(payment))
}
