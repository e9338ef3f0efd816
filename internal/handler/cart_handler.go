package handler

import (
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP
type CartHandler struct {
	uc           *usecase.CartUsecase
	cookieSecure bool
}

// DI
func NewCartHandler(uc *usecase.CartUsecase, cookieSecure bool) *CartHandler {
	return &CartHandler{uc: uc, cookieSecure: cookieSecure}
}

type AddCartRequest struct {
	ProductID string            `json:"product_id"`
	Quantity  int               `json:"quantity"`
	Variants  map[string]string `json:"variants"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity"`
}

type SetCartOpenRequest struct {
	Open *bool `json:"open"`
}

// /cart, /session を登録（Sessionミドルウェア必須）
func (h *CartHandler) RegisterRoutes(e *echo.Echo, session echo.MiddlewareFunc) {
	g := e.Group("/cart", session)

	g.GET("", h.getCart)
	g.POST("/items", h.addItem)
	g.PATCH("/items/:product_id", h.patchItem)
	g.DELETE("/items/:product_id", h.deleteItem)
	g.PUT("/open", h.setOpen)

	e.DELETE("/session", h.endSession, session)
}

func (h *CartHandler) getCart(c echo.Context) error {
	out, err := h.uc.GetCart(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) addItem(c echo.Context) error {
	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddItem(c.Request().Context(), middleware.SessionID(c), usecase.AddCartInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Variants:  req.Variants,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) patchItem(c echo.Context) error {
	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Quantity == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "quantity is required"})
	}

	out, err := h.uc.UpdateQuantity(c.Request().Context(), middleware.SessionID(c), c.Param("product_id"), *req.Quantity)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	out, err := h.uc.RemoveItem(c.Request().Context(), middleware.SessionID(c), c.Param("product_id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) setOpen(c echo.Context) error {
	var req SetCartOpenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Open == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "open is required"})
	}

	out, err := h.uc.SetOpen(c.Request().Context(), middleware.SessionID(c), *req.Open)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// カートを破棄してcookieも消す
func (h *CartHandler) endSession(c echo.Context) error {
	if err := h.uc.EndSession(c.Request().Context(), middleware.SessionID(c)); err != nil {
		return writeError(c, err)
	}

	c.SetCookie(middleware.ExpiredSessionCookie(h.cookieSecure))
	return c.NoContent(http.StatusNoContent)
}
