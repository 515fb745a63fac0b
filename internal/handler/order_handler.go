package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/ordersのHTTP（帳簿ログ）
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// キー名はクライアントの送信フォーマットに合わせる（camelCase）
type OrderCreateRequest struct {
	Name          string                   `json:"name"`
	Class         string                   `json:"class"`
	WhatsApp      string                   `json:"whatsapp"`
	PaymentMethod string                   `json:"paymentMethod"`
	Total         int64                    `json:"total"`
	Items         []usecase.OrderItemInput `json:"items"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/orders")

	g.POST("", h.create)
	g.GET("", h.list)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateOrder(c.Request().Context(), usecase.CreateOrderInput{
		Name:          req.Name,
		Class:         req.Class,
		WhatsApp:      req.WhatsApp,
		PaymentMethod: req.PaymentMethod,
		Total:         req.Total,
		Items:         req.Items,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) list(c echo.Context) error {
	out, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
