package calendar

import (
	"time"

	"Worklog/pkg/datekey"
)

const (
	// Cells 6 行 x 7 列
	Cells = 42
	// PreviewLimit 每个日期格子最多展示的笔记数
	PreviewLimit = 2
)

// Day 日历中的一个格子
type Day[T any] struct {
	Key     string
	Date    time.Time
	InMonth bool
	IsToday bool
	Items   []T
}

// Preview returns at most limit items for display.
func (d Day[T]) Preview(limit int) []T {
	if limit < 0 || len(d.Items) <= limit {
		return d.Items
	}
	return d.Items[:limit]
}

// Hidden 超出 limit 未展示的数量
func (d Day[T]) Hidden(limit int) int {
	if limit < 0 || len(d.Items) <= limit {
		return 0
	}
	return len(d.Items) - limit
}

// Month is a projected month view.
type Month[T any] struct {
	Year  int
	Month time.Month
	Days  []Day[T]
	// ByKey maps every occupied day key, inside or outside the grid, to its items.
	ByKey map[string][]T
}

// Label 例如 "March 2024"
func (m Month[T]) Label() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

func (m Month[T]) Key() string {
	return datekey.MonthKey(m.Year, m.Month)
}

func (m Month[T]) Prev() string {
	return datekey.MonthKey(m.Year, m.Month-1)
}

func (m Month[T]) Next() string {
	return datekey.MonthKey(m.Year, m.Month+1)
}

// Grid 返回以周日开头、覆盖指定月份的 42 天
func Grid(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())
	days := make([]time.Time, Cells)
	for i := range days {
		days[i] = time.Date(year, month, 1+i-offset, 0, 0, 0, 0, time.UTC)
	}
	return days
}

// Bucket groups items under every day key their [start, end] range covers.
// Items with no parseable start are skipped. Input order is kept per day.
func Bucket[T any](items []T, span func(T) (start, end string)) map[string][]T {
	out := make(map[string][]T)
	for _, item := range items {
		start, end := span(item)
		for _, key := range datekey.Expand(start, end) {
			out[key] = append(out[key], item)
		}
	}
	return out
}

// Project 生成月视图，today 只比较年月日
func Project[T any](year int, month time.Month, today time.Time, items []T, span func(T) (start, end string)) Month[T] {
	byKey := Bucket(items, span)
	todayKey := datekey.Format(today)

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	m := Month[T]{
		Year:  start.Year(),
		Month: start.Month(),
		Days:  make([]Day[T], 0, Cells),
		ByKey: byKey,
	}

	for _, d := range Grid(m.Year, m.Month) {
		key := datekey.Format(d)
		m.Days = append(m.Days, Day[T]{
			Key:     key,
			Date:    d,
			InMonth: d.Month() == m.Month && d.Year() == m.Year,
			IsToday: key == todayKey,
			Items:   byKey[key],
		})
	}
	return m
}
