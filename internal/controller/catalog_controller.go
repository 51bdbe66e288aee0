package controller

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"miniattic-api/internal/dto"
	"miniattic-api/internal/model"
	"miniattic-api/internal/response"
	"miniattic-api/internal/service"
)

// CatalogController: productos, categorías y medios de pago.
type CatalogController struct {
	Service *service.CatalogService
	logger  *zap.Logger
}

func NewCatalogController(s *service.CatalogService, logger *zap.Logger) *CatalogController {
	return &CatalogController{Service: s, logger: logger}
}

func productFrom(req dto.ProductRequest) model.Product {
	return model.Product{
		Class:       req.Class,
		Name:        req.Name,
		Subheading:  req.Subheading,
		Intro:       req.Intro,
		Price:       req.Price,
		Description: req.Description,
		Show:        req.Show,
	}
}

func (ctl *CatalogController) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := ctl.Service.CreateProduct(c.Request.Context(), productFrom(req))
	if err != nil {
		response.Error(c, ctl.logger, err)
		return
	}
	response.OK(c, response.MsgCreated, p)
}

func (ctl *CatalogController) ListProducts(c *gin.Context) {
	products, err := ctl.Service.ListProducts(c.Request.Context())
	if err != nil {
		response.Error(c, ctl.logger, err)
		return
	}
	response.OK(c, response.MsgQueryOK, products)
}

func (ctl *CatalogController) UpdateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := ctl.Service.UpdateProduct(c.Request.Context(), c.Param("item"), productFrom(req))
	if err != nil {
		response.Error(c, ctl.logger, err)
		return
	}
	response.OK(c, response.MsgProductUpdated, p)
}

func (ctl *CatalogController) DeleteProduct(c *gin.Context) {
	p, err := ctl.Service.DeleteProduct(c.Request.Context(), c.Param("item"))
	if err != nil {
		response.Error(c, ctl.logger, err)
		return
	}
	response.OK(c, response.MsgDeleted, p)
}

func (ctl *CatalogController) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	cat, err := ctl.Service.CreateCategory(c.Request.Context(), model.Category{Item: req.Item, Name: req.Name, Show: req.Show})
	if err != nil {
		response.Error(c, ctl.logger, err)
		return
	}
	response.OK(c, response.MsgCreated, cat)
}

func (ctl *CatalogController) ListCategories(c *gin.Context) {
	cats, err := ctl.Service.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, ctl.logger, err)
		return
	}
	response.OK(c, response.MsgQueryOK, cats)
}

func (ctl *CatalogController) UpdateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := ctl.Service.UpdateCategory(c.Request.Context(), c.Param("item"), model.Category{Name: req.Name, Show: req.Show}); err != nil {
		response.Error(c, ctl.logger, err)
		return
	}
	response.OK(c, response.MsgUpdated, nil)
}

func (ctl *CatalogController) DeleteCategory(c *gin.Context) {
	cat, err := ctl.Service.DeleteCategory(c.Request.Context(), c.Param("item"))
	if err != nil {
		response.Error(c, ctl.logger, err)
		return
	}
	response.OK(c, response.MsgDeleted, cat)
}

func paymentFrom(req dto.PaymentRequest) model.Payment {
	return model.Payment{
		Item:        req.Item,
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Show:        req.Show,
	}
}

func (ctl *CatalogController) CreatePayment(c *gin.Context) {
	var req dto.PaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := ctl.Service.CreatePayment(c.Request.Context(), paymentFrom(req))
	if err != nil {
		response.Error(c, ctl.logger, err)
		return
	}
	response.OK(c, response.MsgCreated, p)
}

func (ctl *CatalogController) ListPayments(c *gin.Context) {
	payments, err := ctl.Service.ListPayments(c.Request.Context())
	if err != nil {
		response.Error(c, ctl.logger, err)
		return
	}
	response.OK(c, response.MsgQueryOK, payments)
}

func (ctl *CatalogController) UpdatePayment(c *gin.Context) {
	var req dto.PaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := ctl.Service.UpdatePayment(c.Request.Context(), c.Param("item"), paymentFrom(req)); err != nil {
		response.Error(c, ctl.logger, err)
		return
	}
	response.OK(c, response.MsgUpdated, nil)
}

func (ctl *CatalogController) DeletePayment(c *gin.Context) {
	p, err := ctl.Service.DeletePayment(c.Request.Context(), c.Param("item"))
	if err != nil {
		response.Error(c, ctl.logger, err)
		return
	}
	response.OK(c, response.MsgDeleted, p)
}
