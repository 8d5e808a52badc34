package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekRange(t *testing.T) {
	// 2024-06-12 是周三
	now := time.Date(2024, 6, 12, 15, 30, 45, 0, time.UTC)
	start, end := WeekRange(now)

	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 6, 16, 23, 59, 59, 999999999, time.UTC), end)
}

func TestWeekRangeOnMonday(t *testing.T) {
	// 周一当天就是一周的开始
	now := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	start, end := WeekRange(now)

	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 6, 16, 23, 59, 59, 999999999, time.UTC), end)
}

func TestWeekRangeOnSunday(t *testing.T) {
	// 周日属于上周一开始的那一周，不能滚动到下一周
	now := time.Date(2024, 6, 16, 22, 0, 0, 0, time.UTC)
	start, end := WeekRange(now)

	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 6, 16, 23, 59, 59, 999999999, time.UTC), end)
}

func TestWeekRangeAcrossMonthBoundary(t *testing.T) {
	// 2024-07-01 是周一，上一天 6 月 30 日是周日
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	start, end := WeekRange(now)

	assert.Equal(t, time.Date(2024, 6, 24, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 6, 30, 23, 59, 59, 999999999, time.UTC), end)
}

func TestMonthRangeLeapYear(t *testing.T) {
	now := time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)
	start, end := MonthRange(now)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 999999999, time.UTC), end)
}

func TestMonthRangeNonLeapYear(t *testing.T) {
	now := time.Date(2023, 2, 15, 10, 0, 0, 0, time.UTC)
	start, end := MonthRange(now)

	assert.Equal(t, time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2023, 2, 28, 23, 59, 59, 999999999, time.UTC), end)
}

func TestMonthRangeThirtyOneDays(t *testing.T) {
	now := time.Date(2024, 1, 2, 0, 30, 0, 0, time.UTC)
	start, end := MonthRange(now)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 999999999, time.UTC), end)
}

func TestYearRange(t *testing.T) {
	now := time.Date(2024, 7, 4, 18, 45, 0, 0, time.UTC)
	start, end := YearRange(now)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 12, 31, 23, 59, 59, 999999999, time.UTC), end)
}
