package generator

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat 把浮点数格式化为最短的可往返十进制字面量
//
// 规则：
//   - 整数值保留 ".0"（-32 → "-32.0"）
//   - |v| >= 1e16 使用科学计数法（1e16 → "1e+16"）
//   - 非有限值输出 "nan"、"inf"、"-inf"
//
// 写入 C++ 代码时由调用方追加 "f" 后缀。
//
// 示例:
//
//	FormatFloat(0.25)  = "0.25"
//	FormatFloat(43.85) = "43.85"
//	FormatFloat(-32)   = "-32.0"
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// floatLiteral 返回带单精度后缀的字面量，如 "0.5f"
func floatLiteral(v float64) string {
	return FormatFloat(v) + "f"
}
