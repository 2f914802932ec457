package layout

import "errors"

var (
	// ErrConfiguration 表示棋盘配置无效（列数、宽度、词库等），在生成任何棋盘之前返回。
	ErrConfiguration = errors.New("layout: 配置无效")
	// ErrMeasurement 表示文本测量失败，无法确定字号。
	ErrMeasurement = errors.New("layout: 文本测量失败")
)
