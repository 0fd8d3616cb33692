package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/doohosteel/ptop/internal/ptop/service"
)

type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Generate POST /reports/material-statement
func (h *ReportHandler) Generate(c *gin.Context) {
	var req service.StatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	resp, err := h.svc.Generate(c.Request.Context(), &req)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, resp)
}

// Export POST /reports/material-statement/export (내역서 xlsx 다운로드)
func (h *ReportHandler) Export(c *gin.Context) {
	var req service.StatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	_, f, fileName, err := h.svc.GenerateExcel(c.Request.Context(), &req)
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
