package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/doohosteel/ptop/internal/ptop/service"
)

type PurchaseHandler struct {
	svc *service.PurchaseService
}

func NewPurchaseHandler(svc *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{svc: svc}
}

// Generate POST /purchase-orders. 재질별 발주서 생성.
// 발주서가 여러 장 나올 수 있어 파일 스트림 대신 보관 메타데이터를 돌려준다.
func (h *PurchaseHandler) Generate(c *gin.Context) {
	var req service.PurchaseOrdersRequest
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
