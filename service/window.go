package service

import "time"

// 周期范围计算，全部返回闭区间 [start, end]
// start 为周期首日 00:00:00，end 为周期末日 23:59:59.999999999

// WeekRange 计算 now 所在周的范围，周一为一周的第一天
func WeekRange(now time.Time) (time.Time, time.Time) {
	// time.Weekday 中周日为 0，换算成周一到周日的偏移
	offset := int(now.Weekday() - time.Monday)
	if now.Weekday() == time.Sunday {
		offset = 6
	}
	start := startOfDay(now.AddDate(0, 0, -offset))
	end := endOfDay(start.AddDate(0, 0, 6))
	return start, end
}

// MonthRange 计算 now 所在月的范围，自动处理大小月和闰年
func MonthRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := endOfDay(start.AddDate(0, 1, -1))
	return start, end
}

// YearRange 计算 now 所在年的范围
func YearRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	end := endOfDay(time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location()))
	return start, end
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}
