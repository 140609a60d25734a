package handler

import (
	"net/http"

	"eventhub/internal/model"
	"eventhub/internal/service"

	"github.com/gin-gonic/gin"
)

type CompilationHandler struct {
	service service.CompilationService
}

func NewCompilationHandler(service service.CompilationService) *CompilationHandler {
	return &CompilationHandler{service: service}
}

// CompilationsQuery is the query string of GET /compilations.
type CompilationsQuery struct {
	Pinned *bool `form:"pinned"`
}

func (h *CompilationHandler) RegisterRoutes(r *gin.Engine) {
	admin := r.Group("/admin/compilations")
	{
		admin.POST("", h.SaveCompilation)
		admin.PATCH("/:compId", h.UpdateCompilation)
		admin.DELETE("/:compId", h.DeleteCompilation)
	}

	public := r.Group("/compilations")
	{
		public.GET("", h.GetCompilations)
		public.GET("/:compId", h.GetCompilation)
	}
}

func (h *CompilationHandler) SaveCompilation(c *gin.Context) {
	var req model.NewCompilationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	compilation, err := h.service.SaveCompilation(c, req)
	if err != nil {
		handleError(c, err, "SaveCompilation")
		return
	}
	c.JSON(http.StatusCreated, model.ToCompilationResponse(compilation))
}

func (h *CompilationHandler) UpdateCompilation(c *gin.Context) {
	id, ok := ParamID(c, "compId")
	if !ok {
		return
	}
	var req model.UpdateCompilationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	compilation, err := h.service.UpdateCompilation(c, id, req)
	if err != nil {
		handleError(c, err, "UpdateCompilation")
		return
	}
	c.JSON(http.StatusOK, model.ToCompilationResponse(compilation))
}

func (h *CompilationHandler) DeleteCompilation(c *gin.Context) {
	id, ok := ParamID(c, "compId")
	if !ok {
		return
	}

	if err := h.service.DeleteCompilation(c, id); err != nil {
		handleError(c, err, "DeleteCompilation")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CompilationHandler) GetCompilations(c *gin.Context) {
	var query CompilationsQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	page, ok := BindPage(c)
	if !ok {
		return
	}

	compilations, err := h.service.GetCompilations(c, query.Pinned, page)
	if err != nil {
		handleError(c, err, "GetCompilations")
		return
	}
	c.JSON(http.StatusOK, model.ToCompilationResponses(compilations))
}

func (h *CompilationHandler) GetCompilation(c *gin.Context) {
	id, ok := ParamID(c, "compId")
	if !ok {
		return
	}

	compilation, err := h.service.GetCompilation(c, id)
	if err != nil {
		handleError(c, err, "GetCompilation")
		return
	}
	c.JSON(http.StatusOK, model.ToCompilationResponse(compilation))
}
