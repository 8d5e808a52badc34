package service

import (
	"expensetracker/models"

	"github.com/shopspring/decimal"
)

// Statistics 消费统计结果
type Statistics struct {
	TotalAmount    decimal.Decimal            `json:"totalAmount"`
	Count          int                        `json:"count"`
	CategoryTotals map[string]decimal.Decimal `json:"categoryTotals"`
	CurrencyTotals map[string]decimal.Decimal `json:"currencyTotals"`
}

// GenerateStatistics 对一组消费记录做汇总统计
// 分组键使用原始字符串，不做大小写归一或去空格，"Food" 和 "food" 是两个类别
func GenerateStatistics(expenses []models.Expense) Statistics {
	stats := Statistics{
		TotalAmount:    decimal.Zero,
		Count:          len(expenses),
		CategoryTotals: make(map[string]decimal.Decimal),
		CurrencyTotals: make(map[string]decimal.Decimal),
	}

	for _, expense := range expenses {
		stats.TotalAmount = stats.TotalAmount.Add(expense.Amount)
		stats.CategoryTotals[expense.Category] = stats.CategoryTotals[expense.Category].Add(expense.Amount)
		stats.CurrencyTotals[expense.Currency] = stats.CurrencyTotals[expense.Currency].Add(expense.Amount)
	}

	return stats
}
