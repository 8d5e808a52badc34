package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// 金额在 JSON 中输出为数字而不是字符串
	decimal.MarshalJSONWithoutQuotes = true
}

// Expense 消费记录模型
// 金额使用 decimal 精确计算，避免浮点数累加误差
type Expense struct {
	ID          string          `json:"id" gorm:"type:varchar(36);primaryKey"`
	Description string          `json:"description" gorm:"size:255"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Currency    string          `json:"currency" gorm:"size:10;not null"`
	Category    string          `json:"category" gorm:"size:50;not null"`
	Date        time.Time       `json:"date" gorm:"index;not null"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// BeforeCreate 入库前分配 ID，一经分配不再变更
func (e *Expense) BeforeCreate(_ *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
