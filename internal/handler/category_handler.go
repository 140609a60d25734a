package handler

import (
	"net/http"

	"eventhub/internal/model"
	"eventhub/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(service service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) RegisterRoutes(r *gin.Engine) {
	admin := r.Group("/admin/categories")
	{
		admin.POST("", h.AddCategory)
		admin.PATCH("/:catId", h.UpdateCategory)
		admin.DELETE("/:catId", h.DeleteCategory)
	}

	public := r.Group("/categories")
	{
		public.GET("", h.GetCategories)
		public.GET("/:catId", h.GetCategory)
	}
}

func (h *CategoryHandler) AddCategory(c *gin.Context) {
	var req model.CategoryRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	category, err := h.service.AddCategory(c, req)
	if err != nil {
		handleError(c, err, "AddCategory")
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := ParamID(c, "catId")
	if !ok {
		return
	}
	var req model.CategoryRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	category, err := h.service.UpdateCategory(c, id, req)
	if err != nil {
		handleError(c, err, "UpdateCategory")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := ParamID(c, "catId")
	if !ok {
		return
	}

	if err := h.service.DeleteCategory(c, id); err != nil {
		handleError(c, err, "DeleteCategory")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	page, ok := BindPage(c)
	if !ok {
		return
	}

	categories, err := h.service.GetCategories(c, page)
	if err != nil {
		handleError(c, err, "GetCategories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := ParamID(c, "catId")
	if !ok {
		return
	}

	category, err := h.service.GetCategory(c, id)
	if err != nil {
		handleError(c, err, "GetCategory")
		return
	}
	c.JSON(http.StatusOK, category)
}
