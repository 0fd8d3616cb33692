package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/doohosteel/ptop/internal/ptop/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type QuotationHandler struct {
	svc *service.QuotationService
}

func NewQuotationHandler(svc *service.QuotationService) *QuotationHandler {
	return &QuotationHandler{svc: svc}
}

// Build POST /quotations
func (h *QuotationHandler) Build(c *gin.Context) {
	var req service.BuildQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	resp, err := h.svc.Build(c.Request.Context(), &req)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, resp)
}

// Export POST /quotations/export (견적서 xlsx 다운로드)
func (h *QuotationHandler) Export(c *gin.Context) {
	var req service.BuildQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	_, f, fileName, err := h.svc.BuildWithExcel(c.Request.Context(), &req)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	defer f.Close()

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write excel: "+err.Error())
	}
}
