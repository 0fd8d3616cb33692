package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/doohosteel/ptop/internal/ptop/service"
)

type MaterialHandler struct {
	svc *service.MaterialService
}

func NewMaterialHandler(svc *service.MaterialService) *MaterialHandler {
	return &MaterialHandler{svc: svc}
}

// SearchMain GET /materials/main?q=
func (h *MaterialHandler) SearchMain(c *gin.Context) {
	materials, err := h.svc.SearchMain(c.Request.Context(), c.Query("q"))
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, materials)
}

// SearchSub GET /materials/sub?q=&supplier=
func (h *MaterialHandler) SearchSub(c *gin.Context) {
	materials, err := h.svc.SearchSub(c.Request.Context(), c.Query("q"), c.Query("supplier"))
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, materials)
}

// ListInventory GET /inventory?q=
func (h *MaterialHandler) ListInventory(c *gin.Context) {
	items, err := h.svc.ListInventory(c.Request.Context(), c.Query("q"))
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, items)
}
