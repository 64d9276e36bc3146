package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	request "nct_portal/internal/adapter/http/dto/request"
	response "nct_portal/internal/adapter/http/dto/response"
	"nct_portal/internal/adapter/http/middleware"
	"nct_portal/internal/domain/entities"
	"nct_portal/internal/usecase"
	"nct_portal/pkg"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the staff console: order management across all
// customers, the dashboard and the reporting endpoints. Every route behind it
// requires an admin session.

type AdminHandler struct {
	orders usecase.IOrderUseCase
	stats  usecase.IStatsUseCase
}

func NewAdminHandler(orders usecase.IOrderUseCase, stats usecase.IStatsUseCase) *AdminHandler {
	return &AdminHandler{orders: orders, stats: stats}
}

// ListOrders godoc
// @Summary      List orders across all customers
// @Tags         admin
// @Produce      json
// @Param        status         query     string  false  "Filter by status"
// @Param        paymentStatus  query     string  false  "Filter by payment status"
// @Param        dateFrom       query     string  false  "Created on or after (RFC3339 or YYYY-MM-DD)"
// @Param        dateTo         query     string  false  "Created on or before"
// @Param        pageSize       query     int     false  "Page size"
// @Param        cursor         query     string  false  "Opaque paging cursor"
// @Success      200            {object}  response.OrderPageResponse
// @Security     Bearer
// @Router       /admin/orders [get]
func (h *AdminHandler) ListOrders(c *gin.Context) {
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "50"))
	filter := entities.OrderFilter{
		Status:        entities.OrderStatus(c.Query("status")),
		PaymentStatus: entities.PaymentStatus(c.Query("paymentStatus")),
		DateFrom:      parseDateQuery(c.Query("dateFrom"), false),
		DateTo:        parseDateQuery(c.Query("dateTo"), true),
	}

	page, err := h.orders.AdminList(c.Request.Context(), middleware.Actor(c), filter, pageSize, c.Query("cursor"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderPage(page))
}

// SetStatus godoc
// @Summary      Set an order's workflow status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id      path      string                    true  "Order id"
// @Param        status  body      request.SetStatusRequest  true  "Target status"
// @Success      200     {object}  response.OrderResponse
// @Security     Bearer
// @Router       /admin/orders/{id}/status [put]
func (h *AdminHandler) SetStatus(c *gin.Context) {
	var payload request.SetStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.orders.SetStatus(c.Request.Context(), middleware.Actor(c), c.Param("id"), payload.Status)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// SetPayment godoc
// @Summary      Set an order's payment status and/or method
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Order id"
// @Param        payment  body      request.SetPaymentRequest  true  "Payment fields"
// @Success      200      {object}  response.OrderResponse
// @Security     Bearer
// @Router       /admin/orders/{id}/payment [put]
func (h *AdminHandler) SetPayment(c *gin.Context) {
	var payload request.SetPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.orders.SetPayment(c.Request.Context(), middleware.Actor(c), c.Param("id"), payload.PaymentStatus, payload.PaymentMethod)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// Requote godoc
// @Summary      Recompute an order's quotation
// @Description  Recalculates from the stored pricing attributes and overwrites finalQuotation.
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  response.CreateOrderResponse
// @Security     Bearer
// @Router       /admin/orders/{id}/requote [post]
func (h *AdminHandler) Requote(c *gin.Context) {
	order, quote, err := h.orders.Requote(c.Request.Context(), middleware.Actor(c), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.CreateOrderResponse{
		Order: response.FromOrder(order),
		Quote: response.FromQuote(quote),
	})
}

// Dashboard godoc
// @Summary      Staff dashboard summary
// @Tags         admin
// @Produce      json
// @Success      200  {object}  usecase.DashboardView
// @Security     Bearer
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	view, err := h.stats.Dashboard(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, view)
}

// Statistics godoc
// @Summary      Order statistics over a date range
// @Tags         admin
// @Produce      json
// @Param        from  query     string  false  "Range start (RFC3339 or YYYY-MM-DD)"
// @Param        to    query     string  false  "Range end"
// @Success      200   {object}  usecase.StatisticsView
// @Security     Bearer
// @Router       /admin/statistics [get]
func (h *AdminHandler) Statistics(c *gin.Context) {
	from := parseDateQuery(c.Query("from"), false)
	to := parseDateQuery(c.Query("to"), true)
	if to.IsZero() {
		to = time.Now().UTC()
	}
	if from.IsZero() {
		from = to.AddDate(0, -1, 0)
	}

	view, err := h.stats.Statistics(c.Request.Context(), middleware.Actor(c), from, to)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, view)
}

// Customers godoc
// @Summary      List customers grouped by phone
// @Tags         admin
// @Produce      json
// @Success      200  {array}  usecase.CustomerSummary
// @Security     Bearer
// @Router       /admin/customers [get]
func (h *AdminHandler) Customers(c *gin.Context) {
	customers, err := h.stats.Customers(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, customers)
}

// CustomerDetail godoc
// @Summary      One customer with full order history
// @Tags         admin
// @Produce      json
// @Param        phone  path      string  true  "Customer phone"
// @Success      200    {object}  usecase.CustomerDetailView
// @Failure      404    {object}  pkg.ErrorBody
// @Security     Bearer
// @Router       /admin/customers/{phone} [get]
func (h *AdminHandler) CustomerDetail(c *gin.Context) {
	detail, err := h.stats.CustomerDetail(c.Request.Context(), middleware.Actor(c), c.Param("phone"))
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, detail)
}

func mapCustomerError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrOrderNotFound) {
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Customer not found", http.StatusNotFound).
			WithArabic("العميل غير موجود")
	}
	return mapOrderError(err)
}

// parseDateQuery accepts RFC3339 timestamps or plain dates. Plain dates used
// as a range end are pushed to the end of that day.
func parseDateQuery(s string, endOfDay bool) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t
}
