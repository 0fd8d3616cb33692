package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/doohosteel/ptop/internal/ptop/repository"
	"github.com/doohosteel/ptop/internal/ptop/service"
)

type BOMHandler struct {
	svc *service.BOMService
}

func NewBOMHandler(svc *service.BOMService) *BOMHandler {
	return &BOMHandler{svc: svc}
}

// List GET /models/:name/bom
func (h *BOMHandler) List(c *gin.Context) {
	model, lines, err := h.svc.ListByModel(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "모델을 찾을 수 없습니다")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, gin.H{"model": model, "lines": lines})
}

// ApplyEdits POST /bom/edits
func (h *BOMHandler) ApplyEdits(c *gin.Context) {
	var req service.ApplyEditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	result, err := h.svc.ApplyEdits(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "모델을 찾을 수 없습니다")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, result)
}

// DeleteLine DELETE /models/:name/bom?material=&standard=
func (h *BOMHandler) DeleteLine(c *gin.Context) {
	material := c.Query("material")
	if material == "" {
		BadRequest(c, "material 쿼리 파라미터가 필요합니다")
		return
	}
	err := h.svc.DeleteLine(c.Request.Context(), c.Param("name"), material, c.Query("standard"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "BOM 행을 찾을 수 없습니다")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, gin.H{"deleted": true})
}

// BulkImport POST /models/:name/bom/import (multipart, xlsx 또는 CSV)
func (h *BOMHandler) BulkImport(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		BadRequest(c, "업로드 파일이 필요합니다")
		return
	}
	defer file.Close()

	result, err := h.svc.BulkImport(c.Request.Context(), c.Param("name"), header.Filename, file)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "모델을 찾을 수 없습니다")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, result)
}
