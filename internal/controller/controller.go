package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"miniattic-api/internal/dto"
	"miniattic-api/internal/middleware"
	"miniattic-api/internal/model"
	"miniattic-api/internal/response"
	"miniattic-api/internal/service"
)

type OrderController struct {
	Service *service.OrderService
	logger  *zap.Logger
}

func NewOrderController(s *service.OrderService, logger *zap.Logger) *OrderController {
	return &OrderController{Service: s, logger: logger}
}

// bindJSON exige Content-Type JSON y valida el body; si falla ya respondió.
func bindJSON(c *gin.Context, req any) bool {
	if c.ContentType() != gin.MIMEJSON {
		response.Fail(c, http.StatusBadRequest, response.MsgBadFormat)
		return false
	}
	if err := c.ShouldBindJSON(req); err != nil {
		response.BindError(c, err)
		return false
	}
	return true
}

// POST /orders
func (ctl *OrderController) PlaceOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	items := make([]model.LineItem, 0, len(req.Products))
	for _, p := range req.Products {
		items = append(items, model.LineItem{Item: p.Item, Amount: p.Amount})
	}

	_, err := ctl.Service.PlaceOrder(c.Request.Context(), middleware.ViewerFrom(c), service.PlaceOrderInput{
		Products: items,
		Payment:  *req.Payment,
		Remark:   req.Remark,
	})
	if err != nil {
		response.Error(c, ctl.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{Success: true, Message: response.MsgOrderPlaced})
}

// GET /orders - el admin recibe todas, con cuenta y total
func (ctl *OrderController) ListOrders(c *gin.Context) {
	views, err := ctl.Service.ListOrders(c.Request.Context(), middleware.ViewerFrom(c))
	if err != nil {
		response.Error(c, ctl.logger, err)
		return
	}
	response.OK(c, response.MsgQueryOK, views)
}

// GET /orders/:item - sólo órdenes propias; si no es suya, lista vacía
func (ctl *OrderController) GetOrder(c *gin.Context) {
	views, err := ctl.Service.GetOrder(c.Request.Context(), middleware.ViewerFrom(c), c.Param("item"))
	if err != nil {
		response.Error(c, ctl.logger, err)
		return
	}
	response.OK(c, response.MsgQueryOK, views)
}

// PATCH /orders/:item - admin
func (ctl *OrderController) UpdateOrder(c *gin.Context) {
	var req dto.UpdateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	o, err := ctl.Service.UpdateOrder(c.Request.Context(), c.Param("item"), model.OrderPatch{
		Status: req.Status,
		Remark: req.Remark,
	})
	if err != nil {
		response.Error(c, ctl.logger, err)
		return
	}
	response.OK(c, response.MsgUpdated, o)
}

// DELETE /orders/:item - admin
func (ctl *OrderController) DeleteOrder(c *gin.Context) {
	o, err := ctl.Service.DeleteOrder(c.Request.Context(), c.Param("item"))
	if err != nil {
		response.Error(c, ctl.logger, err)
		return
	}
	response.OK(c, response.MsgDeleted, o)
}
