package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "nct_portal/internal/adapter/http/dto/request"
	response "nct_portal/internal/adapter/http/dto/response"
	"nct_portal/internal/adapter/http/middleware"
	"nct_portal/internal/domain/lifecycle"
	"nct_portal/internal/domain/pricing"
	"nct_portal/internal/usecase"
	"nct_portal/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("VALIDATION_INVALID_PAYLOAD", "Invalid order payload", http.StatusBadRequest).
	WithArabic("بيانات الطلب غير صالحة")

// OrderHandler serves the customer-facing order endpoints plus the public
// pricing ones.

type OrderHandler struct {
	orders usecase.IOrderUseCase
}

func NewOrderHandler(orders usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// CreateOrder godoc
// @Summary      Create a translation order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      request.CreateOrderRequest  true  "Order"
// @Success      201    {object}  response.CreateOrderResponse
// @Failure      400    {object}  pkg.ErrorBody
// @Security     Bearer
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, quote, err := h.orders.Create(c.Request.Context(), middleware.Actor(c), payload.ResolveCommand())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.CreateOrderResponse{
		Order: response.FromOrder(order),
		Quote: response.FromQuote(quote),
	})
}

// ListMyOrders godoc
// @Summary      List the caller's orders
// @Tags         orders
// @Produce      json
// @Param        status  query     string  false  "Filter by status"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  response.OrderListResponse
// @Security     Bearer
// @Router       /orders [get]
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	orders, total, err := h.orders.ListByActor(c.Request.Context(), middleware.Actor(c), c.Query("status"), page, limit)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OrderListResponse{
		Orders: response.FromOrders(orders),
		Total:  total,
		Page:   page,
		Limit:  limit,
	})
}

// GetOrder godoc
// @Summary      Get one order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.ErrorBody
// @Security     Bearer
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orders.GetByID(c.Request.Context(), middleware.Actor(c), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// GetTimeline godoc
// @Summary      Get the order's progress timeline
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  response.TimelineResponse
// @Security     Bearer
// @Router       /orders/{id}/timeline [get]
func (h *OrderHandler) GetTimeline(c *gin.Context) {
	view, err := h.orders.Timeline(c.Request.Context(), middleware.Actor(c), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTimeline(view))
}

// UpdateOrder godoc
// @Summary      Update an order
// @Description  Customers may change notes and payment method; other fields are ignored for them.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id     path      string                      true  "Order id"
// @Param        order  body      request.UpdateOrderRequest  true  "Fields to update"
// @Success      200    {object}  response.OrderResponse
// @Security     Bearer
// @Router       /orders/{id} [patch]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var payload request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.orders.Update(c.Request.Context(), middleware.Actor(c), c.Param("id"), payload.ToCommand())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// CancelOrder godoc
// @Summary      Cancel an order
// @Description  Customers may cancel only while the order is still a New Ticket.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id      path      string                      true   "Order id"
// @Param        cancel  body      request.CancelOrderRequest  false  "Cancellation reason"
// @Success      200     {object}  response.OrderResponse
// @Security     Bearer
// @Router       /orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	var payload request.CancelOrderRequest
	// An empty body is a valid "no reason" cancellation.
	_ = c.ShouldBindJSON(&payload)

	order, err := h.orders.Cancel(c.Request.Context(), middleware.Actor(c), c.Param("id"), payload.Reason)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// PriceCheck godoc
// @Summary      Dry-run quotation
// @Description  Computes an itemized quote without persisting anything.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        input  body      request.PricingFields  true  "Pricing attributes"
// @Success      200    {object}  response.QuoteResponse
// @Router       /pricing/quote [post]
func (h *OrderHandler) PriceCheck(c *gin.Context) {
	var payload request.PricingFields
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	in := payload.ResolvePricingInput()
	if in.ServiceType == "" {
		in.ServiceType = pricing.FullService
	}

	quote, err := h.orders.PriceCheck(in)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrServiceTypeRequired):
		return pkg.NewDomainErrorSimple("VALIDATION_SERVICE_TYPE_REQUIRED", "Service type is required", http.StatusBadRequest).
			WithArabic("نوع الخدمة مطلوب")
	case errors.Is(err, usecase.ErrInvalidPricingInput):
		return pkg.NewDomainErrorSimple("VALIDATION_INVALID_PRICING", "Unknown service type or insurance tier", http.StatusBadRequest).
			WithArabic("نوع الخدمة أو فئة الضمان غير معروفة")
	case errors.Is(err, usecase.ErrInvalidStatusValue), errors.Is(err, lifecycle.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("VALIDATION_INVALID_STATUS", "Unknown order status", http.StatusBadRequest).
			WithArabic("حالة الطلب غير معروفة")
	case errors.Is(err, usecase.ErrInvalidPaymentStatus):
		return pkg.NewDomainErrorSimple("VALIDATION_INVALID_PAYMENT_STATUS", "Unknown payment status", http.StatusBadRequest).
			WithArabic("حالة الدفع غير معروفة")
	case errors.Is(err, usecase.ErrNothingToUpdate):
		return pkg.NewDomainErrorSimple("VALIDATION_NOTHING_TO_UPDATE", "No fields to update", http.StatusBadRequest).
			WithArabic("لا توجد حقول للتحديث")
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Order not found", http.StatusNotFound).
			WithArabic("الطلب غير موجود")
	case errors.Is(err, usecase.ErrAccessDenied):
		return pkg.NewDomainErrorSimple("ACCESS_DENIED", "You do not have access to this order", http.StatusForbidden).
			WithArabic("ليس لديك صلاحية الوصول لهذا الطلب")
	case errors.Is(err, lifecycle.ErrNotCancellable):
		return pkg.NewDomainErrorSimple("LIFECYCLE_NOT_CANCELLABLE", "Order can no longer be cancelled", http.StatusConflict).
			WithArabic("لا يمكن إلغاء الطلب في هذه المرحلة")
	case errors.Is(err, lifecycle.ErrTerminalStatus):
		return pkg.NewDomainErrorSimple("LIFECYCLE_TERMINAL", "Order is in a terminal status", http.StatusConflict).
			WithArabic("الطلب في حالة نهائية")
	case errors.Is(err, lifecycle.ErrAdminOnlyChange):
		return pkg.NewDomainErrorSimple("LIFECYCLE_ADMIN_ONLY", "Only staff can change the order status", http.StatusForbidden).
			WithArabic("تغيير حالة الطلب متاح للموظفين فقط")
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError).
			WithArabic("حدث خطأ داخلي")
	}
}
