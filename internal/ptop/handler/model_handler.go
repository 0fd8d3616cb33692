package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/doohosteel/ptop/internal/ptop/repository"
	"github.com/doohosteel/ptop/internal/ptop/service"
)

type ModelHandler struct {
	svc *service.ModelService
}

func NewModelHandler(svc *service.ModelService) *ModelHandler {
	return &ModelHandler{svc: svc}
}

// Search GET /models?q=&category=
func (h *ModelHandler) Search(c *gin.Context) {
	models, err := h.svc.Search(c.Request.Context(), c.Query("q"), c.Query("category"))
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, models)
}

// Get GET /models/:name
func (h *ModelHandler) Get(c *gin.Context) {
	model, err := h.svc.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "모델을 찾을 수 없습니다")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, model)
}

// Categories GET /models/categories
func (h *ModelHandler) Categories(c *gin.Context) {
	categories, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, categories)
}
