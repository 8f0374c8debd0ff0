// Package datekey handles YYYY-MM-DD calendar day keys.
package datekey

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	Layout      = "2006-01-02"
	MonthLayout = "2006-01"

	// MaxSpan caps how many days a single range may expand to.
	MaxSpan = 366
)

// Parse 解析 date-key，年/月/日任一缺失或为 0 时返回 false。
// 超出范围的日会按日历顺延，例如 2024-02-30 解析为 2024-03-01。
func Parse(key string) (time.Time, bool) {
	parts := strings.Split(key, "-")
	if len(parts) < 3 {
		return time.Time{}, false
	}
	nums := make([]int, 3)
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n <= 0 {
			return time.Time{}, false
		}
		nums[i] = n
	}
	return time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, time.UTC), true
}

// Format 把日期格式化为 date-key
func Format(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// Expand returns every day key from start to end inclusive in ascending
// order. A blank end means a single day, an unparseable end falls back to
// start, and the two bounds are swapped when end precedes start. The result
// never holds more than MaxSpan keys.
func Expand(start, end string) []string {
	from, ok := Parse(start)
	if !ok {
		return []string{}
	}
	to := from
	if strings.TrimSpace(end) != "" {
		if parsed, ok := Parse(end); ok {
			to = parsed
		}
	}
	if to.Before(from) {
		from, to = to, from
	}

	keys := make([]string, 0, 8)
	for cursor := from; !cursor.After(to) && len(keys) < MaxSpan; cursor = cursor.AddDate(0, 0, 1) {
		keys = append(keys, Format(cursor))
	}
	return keys
}

// ParseMonth 解析 YYYY-MM
func ParseMonth(key string) (int, time.Month, bool) {
	t, err := time.Parse(MonthLayout, strings.TrimSpace(key))
	if err != nil {
		return 0, 0, false
	}
	return t.Year(), t.Month(), true
}

// MonthKey 格式化为 YYYY-MM，month 越界时按日历进位
func MonthKey(year int, month time.Month) string {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}
