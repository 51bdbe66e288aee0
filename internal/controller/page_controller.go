package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"miniattic-api/internal/dto"
	"miniattic-api/internal/model"
	"miniattic-api/internal/repository"
	"miniattic-api/internal/response"
	"miniattic-api/internal/service"
)

type PageController struct {
	Service *service.PageService
	Catalog *service.CatalogService
	Images  *service.ImageService
	logger  *zap.Logger
}

func NewPageController(pages *service.PageService, catalog *service.CatalogService, images *service.ImageService, logger *zap.Logger) *PageController {
	return &PageController{Service: pages, Catalog: catalog, Images: images, logger: logger}
}

func (ctl *PageController) ListPages(c *gin.Context) {
	pages, err := ctl.Service.ListPages(c.Request.Context())
	if err != nil {
		response.Error(c, ctl.logger, err)
		return
	}
	response.OK(c, response.MsgQueryOK, pages)
}

// GET /pages/:condition
func (ctl *PageController) SearchPages(c *gin.Context) {
	pages, err := ctl.Service.SearchPages(c.Request.Context(), c.Param("condition"))
	if err != nil {
		response.Error(c, ctl.logger, err)
		return
	}
	response.OK(c, response.MsgQueryOK, pages)
}

func (ctl *PageController) UpdatePage(c *gin.Context) {
	var req dto.PageRequest
	if !bindJSON(c, &req) {
		return
	}
	_, err := ctl.Service.UpdatePage(c.Request.Context(), c.Param("item"), model.Page{
		Description1: req.Description1,
		Description2: req.Description2,
		Description3: req.Description3,
		Link:         req.Link,
		Show:         req.Show,
	})
	if err != nil {
		response.Error(c, ctl.logger, err)
		return
	}
	response.OK(c, response.MsgUpdated, nil)
}

// GET /webdata - lo que muestra el frontend
func (ctl *PageController) WebData(c *gin.Context) {
	pages, products, err := ctl.Service.WebData(c.Request.Context(), ctl.Catalog)
	if err != nil {
		response.Error(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.WebDataResponse{
		Success:  true,
		Message:  response.MsgQueryOK,
		Pages:    pages,
		Products: products,
	})
}

// GET /img/:item - redirige a la imagen de la página
func (ctl *PageController) RedirectImage(c *gin.Context) {
	url, err := ctl.Service.ImageFor(c.Request.Context(), c.Param("item"))
	if errors.Is(err, repository.ErrNotFound) || (err == nil && url == "") {
		response.Fail(c, http.StatusNotFound, response.MsgImageNotFound)
		return
	}
	if err != nil {
		response.Error(c, ctl.logger, err)
		return
	}
	c.Redirect(http.StatusFound, url)
}

// POST /img/:item - multipart con "image" y "collection"
func (ctl *PageController) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.MsgBadFormat)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error(c, ctl.logger, errors.Wrap(err, "open upload"))
		return
	}
	defer f.Close()

	name, err := ctl.Images.Save(c.Request.Context(), c.PostForm("collection"), c.Param("item"), f)
	if err != nil {
		response.Error(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": response.MsgImageUploaded, "name": name})
}
