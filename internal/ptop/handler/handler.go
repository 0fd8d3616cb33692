package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/doohosteel/ptop/internal/ptop/service"
)

// Handlers 핸들러 집합
type Handlers struct {
	Model     *ModelHandler
	Material  *MaterialHandler
	BOM       *BOMHandler
	Quotation *QuotationHandler
	Report    *ReportHandler
	Purchase  *PurchaseHandler
}

// NewHandlers 핸들러 집합 생성
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Model:     NewModelHandler(svc.Model),
		Material:  NewMaterialHandler(svc.Material),
		BOM:       NewBOMHandler(svc.BOM),
		Quotation: NewQuotationHandler(svc.Quotation),
		Report:    NewReportHandler(svc.Report),
		Purchase:  NewPurchaseHandler(svc.Purchase),
	}
}

// Response 공통 응답 구조
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 성공 응답
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 생성 성공 응답
func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error 오류 응답
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 요청 오류 응답
func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

// NotFound 리소스 없음 응답
func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

// InternalError 서버 오류 응답
func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}
