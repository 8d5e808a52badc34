package api

import (
	"errors"
	"net/http"
	"time"

	"expensetracker/models"
	"expensetracker/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ExpenseHandler 消费记录处理器
type ExpenseHandler struct {
	svc *service.ExpenseService
}

// NewExpenseHandler 创建消费记录处理器
func NewExpenseHandler(svc *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{svc: svc}
}

// ExpenseRequest 创建/更新消费记录请求
// 金额、币种、类别均不做取值校验，原样入库
type ExpenseRequest struct {
	Description string          `json:"description" example:"Coffee"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number" example:"3.50"`
	Currency    string          `json:"currency" example:"USD"`
	Category    string          `json:"category" example:"Food"`
	Date        *time.Time      `json:"date" example:"2024-01-15T12:30:00Z"`
}

func (r *ExpenseRequest) toModel() *models.Expense {
	expense := &models.Expense{
		Description: r.Description,
		Amount:      r.Amount,
		Currency:    r.Currency,
		Category:    r.Category,
	}
	if r.Date != nil {
		expense.Date = *r.Date
	}
	return expense
}

// Create 创建消费记录
// @Summary 创建消费记录
// @Description 创建一条新的消费记录，未指定 date 时使用服务器当前时间
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param request body ExpenseRequest true "消费记录信息"
// @Success 201 {object} models.Expense "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	expense, err := h.svc.Create(req.toModel())
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "创建消费记录失败"))
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// List 获取全部消费记录
// @Summary 获取全部消费记录
// @Description 获取所有消费记录，不分页，不保证顺序
// @Tags 消费记录
// @Produce json
// @Success 200 {array} models.Expense "获取成功"
// @Router /expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.svc.GetAll()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// Get 获取单条消费记录
// @Summary 获取单条消费记录
// @Description 根据 ID 获取消费记录详情
// @Tags 消费记录
// @Produce json
// @Param id path string true "消费记录ID"
// @Success 200 {object} models.Expense "获取成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	expense, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrExpenseNotFound) {
			NotFound(c, "记录不存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	c.JSON(http.StatusOK, expense)
}

// Update 更新消费记录
// @Summary 更新消费记录
// @Description 整条覆盖更新指定的消费记录，ID 不变
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param id path string true "消费记录ID"
// @Param request body ExpenseRequest true "消费记录信息"
// @Success 200 {object} models.Expense "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	expense, err := h.svc.Update(c.Param("id"), req.toModel())
	if err != nil {
		if errors.Is(err, service.ErrExpenseNotFound) {
			NotFound(c, "记录不存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}
	c.JSON(http.StatusOK, expense)
}

// Delete 删除消费记录
// @Summary 删除消费记录
// @Description 根据 ID 删除消费记录，重复删除同样返回成功
// @Tags 消费记录
// @Param id path string true "消费记录ID"
// @Success 204 "删除成功"
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}
	c.Status(http.StatusNoContent)
}

// Weekly 获取本周消费记录
// @Summary 获取本周消费记录
// @Description 获取本周（周一 00:00:00 至周日 23:59:59）的消费记录
// @Tags 周期查询
// @Produce json
// @Success 200 {array} models.Expense "获取成功"
// @Router /expenses/weekly [get]
func (h *ExpenseHandler) Weekly(c *gin.Context) {
	expenses, err := h.svc.CurrentWeekExpenses()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// Monthly 获取本月消费记录
// @Summary 获取本月消费记录
// @Description 获取本月（1 号 00:00:00 至月末 23:59:59）的消费记录
// @Tags 周期查询
// @Produce json
// @Success 200 {array} models.Expense "获取成功"
// @Router /expenses/monthly [get]
func (h *ExpenseHandler) Monthly(c *gin.Context) {
	expenses, err := h.svc.CurrentMonthExpenses()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// Yearly 获取本年消费记录
// @Summary 获取本年消费记录
// @Description 获取本年（1 月 1 日 00:00:00 至 12 月 31 日 23:59:59）的消费记录
// @Tags 周期查询
// @Produce json
// @Success 200 {array} models.Expense "获取成功"
// @Router /expenses/yearly [get]
func (h *ExpenseHandler) Yearly(c *gin.Context) {
	expenses, err := h.svc.CurrentYearExpenses()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// WeeklyStatistics 获取本周消费统计
// @Summary 获取本周消费统计
// @Description 统计本周消费的总金额、笔数以及按类别和币种的分组合计
// @Tags 统计
// @Produce json
// @Success 200 {object} service.Statistics "获取成功"
// @Router /expenses/statistics/weekly [get]
func (h *ExpenseHandler) WeeklyStatistics(c *gin.Context) {
	stats, err := h.svc.WeeklyStatistics()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "统计失败"))
		return
	}
	c.JSON(http.StatusOK, stats)
}

// MonthlyStatistics 获取本月消费统计
// @Summary 获取本月消费统计
// @Description 统计本月消费的总金额、笔数以及按类别和币种的分组合计
// @Tags 统计
// @Produce json
// @Success 200 {object} service.Statistics "获取成功"
// @Router /expenses/statistics/monthly [get]
func (h *ExpenseHandler) MonthlyStatistics(c *gin.Context) {
	stats, err := h.svc.MonthlyStatistics()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "统计失败"))
		return
	}
	c.JSON(http.StatusOK, stats)
}

// YearlyStatistics 获取本年消费统计
// @Summary 获取本年消费统计
// @Description 统计本年消费的总金额、笔数以及按类别和币种的分组合计
// @Tags 统计
// @Produce json
// @Success 200 {object} service.Statistics "获取成功"
// @Router /expenses/statistics/yearly [get]
func (h *ExpenseHandler) YearlyStatistics(c *gin.Context) {
	stats, err := h.svc.YearlyStatistics()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "统计失败"))
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ByCategory 按类别获取消费记录
// @Summary 按类别获取消费记录
// @Description 获取指定类别的全部消费记录，类别区分大小写
// @Tags 消费记录
// @Produce json
// @Param category path string true "类别"
// @Success 200 {array} models.Expense "获取成功"
// @Router /expenses/category/{category} [get]
func (h *ExpenseHandler) ByCategory(c *gin.Context) {
	expenses, err := h.svc.GetByCategory(c.Param("category"))
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// ByCurrency 按币种获取消费记录
// @Summary 按币种获取消费记录
// @Description 获取指定币种的全部消费记录，币种区分大小写
// @Tags 消费记录
// @Produce json
// @Param currency path string true "币种"
// @Success 200 {array} models.Expense "获取成功"
// @Router /expenses/currency/{currency} [get]
func (h *ExpenseHandler) ByCurrency(c *gin.Context) {
	expenses, err := h.svc.GetByCurrency(c.Param("currency"))
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	c.JSON(http.StatusOK, expenses)
}
