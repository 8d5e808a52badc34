package repository

import (
	"errors"
	"time"

	"expensetracker/models"

	"gorm.io/gorm"
)

// ErrNotFound 目标记录不存在
var ErrNotFound = errors.New("记录不存在")

// ExpenseRepository 消费记录存储接口
// 对上层屏蔽具体存储实现，任何支持按 ID 和时间范围查询的存储都可以实现它
type ExpenseRepository interface {
	Insert(expense *models.Expense) error
	Get(id string) (*models.Expense, error)
	List() ([]models.Expense, error)
	Replace(id string, expense *models.Expense) (*models.Expense, error)
	Delete(id string) error
	FindByDateRange(start, end time.Time) ([]models.Expense, error)
	FindByCategory(category string) ([]models.Expense, error)
	FindByCurrency(currency string) ([]models.Expense, error)
}

type gormExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository 创建基于 gorm 的消费记录存储
func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &gormExpenseRepository{db: db}
}

func (r *gormExpenseRepository) Insert(expense *models.Expense) error {
	return r.db.Create(expense).Error
}

func (r *gormExpenseRepository) Get(id string) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.First(&expense, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &expense, nil
}

func (r *gormExpenseRepository) List() ([]models.Expense, error) {
	expenses := make([]models.Expense, 0)
	if err := r.db.Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// Replace 整条覆盖写，ID 不变；目标不存在时返回 ErrNotFound
func (r *gormExpenseRepository) Replace(id string, expense *models.Expense) (*models.Expense, error) {
	existing, err := r.Get(id)
	if err != nil {
		return nil, err
	}

	existing.Description = expense.Description
	existing.Amount = expense.Amount
	existing.Currency = expense.Currency
	existing.Category = expense.Category
	existing.Date = expense.Date

	if err := r.db.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete 按 ID 删除，目标不存在时同样视为成功
func (r *gormExpenseRepository) Delete(id string) error {
	return r.db.Delete(&models.Expense{}, "id = ?", id).Error
}

// FindByDateRange 查询时间范围内的记录，边界值包含在内
func (r *gormExpenseRepository) FindByDateRange(start, end time.Time) ([]models.Expense, error) {
	expenses := make([]models.Expense, 0)
	if err := r.db.Where("date >= ? AND date <= ?", start, end).Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *gormExpenseRepository) FindByCategory(category string) ([]models.Expense, error) {
	expenses := make([]models.Expense, 0)
	if err := r.db.Where("category = ?", category).Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *gormExpenseRepository) FindByCurrency(currency string) ([]models.Expense, error) {
	expenses := make([]models.Expense, 0)
	if err := r.db.Where("currency = ?", currency).Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}
