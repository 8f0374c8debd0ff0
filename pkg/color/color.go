package color

import (
	"regexp"
	"strings"
)

// Default 未设置颜色时使用的默认色
const Default = "#3b82f6"

// legacy 旧版本按名称保存的颜色
var legacy = map[string]string{
	"blue":    "#3b82f6",
	"emerald": "#10b981",
	"purple":  "#8b5cf6",
	"orange":  "#f97316",
	"rose":    "#f43f5e",
}

var (
	bareHex = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)
	fullHex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// Normalize 把颜色统一成 #RRGGBB，无法识别的值回退为 Default
func Normalize(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Default
	}
	if hex, ok := legacy[trimmed]; ok {
		return hex
	}
	if bareHex.MatchString(trimmed) {
		return "#" + trimmed
	}
	if fullHex.MatchString(trimmed) {
		return trimmed
	}
	return Default
}
