package service

import "time"

// Clock 当前时间来源
// 周期范围计算和默认消费时间都依赖"现在"，抽成接口便于测试时注入固定时间
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock 返回使用系统时间的 Clock
func SystemClock() Clock {
	return systemClock{}
}
