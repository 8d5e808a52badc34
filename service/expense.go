package service

import (
	"expensetracker/models"
	"expensetracker/repository"
)

// ErrExpenseNotFound 消费记录不存在
var ErrExpenseNotFound = repository.ErrNotFound

// ExpenseService 消费记录业务逻辑
type ExpenseService struct {
	repo  repository.ExpenseRepository
	clock Clock
}

// NewExpenseService 创建消费记录服务
func NewExpenseService(repo repository.ExpenseRepository, clock Clock) *ExpenseService {
	return &ExpenseService{repo: repo, clock: clock}
}

// Create 保存一条消费记录，未指定消费时间时使用当前时间
func (s *ExpenseService) Create(expense *models.Expense) (*models.Expense, error) {
	if expense.Date.IsZero() {
		expense.Date = s.clock.Now()
	}
	if err := s.repo.Insert(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// GetAll 获取全部消费记录
func (s *ExpenseService) GetAll() ([]models.Expense, error) {
	return s.repo.List()
}

// GetByID 按 ID 获取消费记录
func (s *ExpenseService) GetByID(id string) (*models.Expense, error) {
	return s.repo.Get(id)
}

// Update 整条覆盖更新，目标不存在时返回 ErrExpenseNotFound
func (s *ExpenseService) Update(id string, expense *models.Expense) (*models.Expense, error) {
	return s.repo.Replace(id, expense)
}

// Delete 按 ID 删除消费记录，重复删除不报错
func (s *ExpenseService) Delete(id string) error {
	return s.repo.Delete(id)
}

// GetByCategory 按类别筛选消费记录
func (s *ExpenseService) GetByCategory(category string) ([]models.Expense, error) {
	return s.repo.FindByCategory(category)
}

// GetByCurrency 按币种筛选消费记录
func (s *ExpenseService) GetByCurrency(currency string) ([]models.Expense, error) {
	return s.repo.FindByCurrency(currency)
}

// CurrentWeekExpenses 获取本周消费记录
func (s *ExpenseService) CurrentWeekExpenses() ([]models.Expense, error) {
	start, end := WeekRange(s.clock.Now())
	return s.repo.FindByDateRange(start, end)
}

// CurrentMonthExpenses 获取本月消费记录
func (s *ExpenseService) CurrentMonthExpenses() ([]models.Expense, error) {
	start, end := MonthRange(s.clock.Now())
	return s.repo.FindByDateRange(start, end)
}

// CurrentYearExpenses 获取本年消费记录
func (s *ExpenseService) CurrentYearExpenses() ([]models.Expense, error) {
	start, end := YearRange(s.clock.Now())
	return s.repo.FindByDateRange(start, end)
}

// WeeklyStatistics 本周消费统计
func (s *ExpenseService) WeeklyStatistics() (Statistics, error) {
	expenses, err := s.CurrentWeekExpenses()
	if err != nil {
		return Statistics{}, err
	}
	return GenerateStatistics(expenses), nil
}

// MonthlyStatistics 本月消费统计
func (s *ExpenseService) MonthlyStatistics() (Statistics, error) {
	expenses, err := s.CurrentMonthExpenses()
	if err != nil {
		return Statistics{}, err
	}
	return GenerateStatistics(expenses), nil
}

// YearlyStatistics 本年消费统计
func (s *ExpenseService) YearlyStatistics() (Statistics, error) {
	expenses, err := s.CurrentYearExpenses()
	if err != nil {
		return Statistics{}, err
	}
	return GenerateStatistics(expenses), nil
}

// windowedExpenses 一次取出周/月/年三个周期的记录，供报表使用
func (s *ExpenseService) windowedExpenses() (weekly, monthly, yearly []models.Expense, err error) {
	if weekly, err = s.CurrentWeekExpenses(); err != nil {
		return nil, nil, nil, err
	}
	if monthly, err = s.CurrentMonthExpenses(); err != nil {
		return nil, nil, nil, err
	}
	if yearly, err = s.CurrentYearExpenses(); err != nil {
		return nil, nil, nil, err
	}
	return weekly, monthly, yearly, nil
}

// ExcelReport 生成周/月/年三个工作表的 Excel 报表
func (s *ExpenseService) ExcelReport() ([]byte, error) {
	weekly, monthly, yearly, err := s.windowedExpenses()
	if err != nil {
		return nil, err
	}
	return BuildExcelReport(weekly, monthly, yearly)
}

// PDFReport 生成包含周/月/年三个部分的 PDF 报表
func (s *ExpenseService) PDFReport() ([]byte, error) {
	weekly, monthly, yearly, err := s.windowedExpenses()
	if err != nil {
		return nil, err
	}
	return BuildPDFReport(weekly, monthly, yearly)
}
