package api

import (
	"fmt"
	"net/http"

	"expensetracker/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler 报表导出处理器
type ReportHandler struct {
	svc *service.ExpenseService
}

// NewReportHandler 创建报表导出处理器
func NewReportHandler(svc *service.ExpenseService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// ExportExcel 导出 Excel 报表
// @Summary 导出 Excel 报表
// @Description 生成包含周/月/年三个工作表的 Excel 报表并以附件下载
// @Tags 报表
// @Produce application/octet-stream
// @Success 200 {file} file "Excel 文件"
// @Failure 500 {object} Response "报表生成失败"
// @Router /expenses/report/excel [get]
func (h *ReportHandler) ExportExcel(c *gin.Context) {
	data, err := h.svc.ExcelReport()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "生成 Excel 报表失败"))
		return
	}

	c.Header("Content-Disposition", `attachment; filename=expense-report.xlsx`)
	c.Header("Content-Length", fmt.Sprintf("%d", len(data)))
	c.Data(http.StatusOK, "application/octet-stream", data)
}

// ExportPDF 导出 PDF 报表
// @Summary 导出 PDF 报表
// @Description 生成包含周/月/年三个章节（含总计行）的 PDF 报表并以附件下载
// @Tags 报表
// @Produce application/pdf
// @Success 200 {file} file "PDF 文件"
// @Failure 500 {object} Response "报表生成失败"
// @Router /expenses/report/pdf [get]
func (h *ReportHandler) ExportPDF(c *gin.Context) {
	data, err := h.svc.PDFReport()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "生成 PDF 报表失败"))
		return
	}

	c.Header("Content-Disposition", `attachment; filename=expense-report.pdf`)
	c.Header("Content-Length", fmt.Sprintf("%d", len(data)))
	c.Data(http.StatusOK, "application/pdf", data)
}
