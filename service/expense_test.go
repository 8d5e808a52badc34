package service

import (
	"testing"
	"time"

	"expensetracker/models"
	"expensetracker/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

func newTestService(t *testing.T, clock Clock) (*ExpenseService, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewExpenseService(repository.NewExpenseRepository(gormDB), clock), mock
}

func expenseRows(expenses ...models.Expense) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "description", "amount", "currency", "category", "date", "created_at", "updated_at"})
	for _, e := range expenses {
		rows.AddRow(e.ID, e.Description, e.Amount.String(), e.Currency, e.Category, e.Date, time.Now(), time.Now())
	}
	return rows
}

func TestExpenseServiceCreateAssignsDefaultDate(t *testing.T) {
	now := time.Date(2024, 6, 12, 15, 30, 0, 0, time.UTC)
	svc, mock := newTestService(t, fixedClock{t: now})

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `expenses`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := svc.Create(&models.Expense{
		Description: "Coffee",
		Amount:      decimal.RequireFromString("3.50"),
		Currency:    "USD",
		Category:    "Food",
	})
	require.NoError(t, err)

	// 未指定消费时间时使用注入时钟的当前时间
	assert.True(t, created.Date.Equal(now))
	// 入库时分配了 UUID 形式的 ID
	_, err = uuid.Parse(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Coffee", created.Description)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseServiceCreateKeepsCallerDate(t *testing.T) {
	now := time.Date(2024, 6, 12, 15, 30, 0, 0, time.UTC)
	svc, mock := newTestService(t, fixedClock{t: now})

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `expenses`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	callerDate := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	created, err := svc.Create(&models.Expense{
		Description: "Lunch",
		Amount:      decimal.RequireFromString("12.00"),
		Currency:    "EUR",
		Category:    "Food",
		Date:        callerDate,
	})
	require.NoError(t, err)

	assert.True(t, created.Date.Equal(callerDate))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseServiceUpdateNotFound(t *testing.T) {
	svc, mock := newTestService(t, SystemClock())

	// 目标不存在，不应执行任何写操作
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(expenseRows())

	_, err := svc.Update("missing-id", &models.Expense{
		Description: "Lunch",
		Amount:      decimal.RequireFromString("12.00"),
	})
	assert.ErrorIs(t, err, ErrExpenseNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseServiceUpdateReplacesAllFields(t *testing.T) {
	svc, mock := newTestService(t, SystemClock())

	existing := models.Expense{
		ID:          "e1",
		Description: "Coffee",
		Amount:      decimal.RequireFromString("3.50"),
		Currency:    "USD",
		Category:    "Food",
		Date:        time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
	}
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(expenseRows(existing))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `expenses`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	updated, err := svc.Update("e1", &models.Expense{
		Description: "Espresso",
		Amount:      decimal.RequireFromString("4.00"),
		Currency:    "EUR",
		Category:    "Drinks",
		Date:        time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// ID 保持不变，其余字段整条覆盖
	assert.Equal(t, "e1", updated.ID)
	assert.Equal(t, "Espresso", updated.Description)
	assert.True(t, updated.Amount.Equal(decimal.RequireFromString("4.00")))
	assert.Equal(t, "EUR", updated.Currency)
	assert.Equal(t, "Drinks", updated.Category)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseServiceDeleteIdempotent(t *testing.T) {
	svc, mock := newTestService(t, SystemClock())

	// 删除不存在的记录同样成功
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `expenses`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.NoError(t, svc.Delete("missing-id"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseServiceGetByIDNotFound(t *testing.T) {
	svc, mock := newTestService(t, SystemClock())

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(expenseRows())

	_, err := svc.GetByID("missing-id")
	assert.ErrorIs(t, err, ErrExpenseNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseServiceWeeklyStatistics(t *testing.T) {
	now := time.Date(2024, 6, 12, 15, 30, 0, 0, time.UTC)
	svc, mock := newTestService(t, fixedClock{t: now})

	start, end := WeekRange(now)
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WithArgs(start, end).
		WillReturnRows(expenseRows(
			models.Expense{ID: "e1", Amount: decimal.RequireFromString("10.00"), Currency: "USD", Category: "Food", Date: now},
			models.Expense{ID: "e2", Amount: decimal.RequireFromString("5.00"), Currency: "EUR", Category: "Food", Date: now},
		))

	stats, err := svc.WeeklyStatistics()
	require.NoError(t, err)

	assert.True(t, stats.TotalAmount.Equal(decimal.RequireFromString("15.00")))
	assert.Equal(t, 2, stats.Count)
	assert.True(t, stats.CategoryTotals["Food"].Equal(decimal.RequireFromString("15.00")))
	assert.True(t, stats.CurrencyTotals["USD"].Equal(decimal.RequireFromString("10.00")))

	require.NoError(t, mock.ExpectationsWereMet())
}
