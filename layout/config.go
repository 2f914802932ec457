package layout

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// 内置字体：正文使用 Go Regular，标题与 FREE 使用 Go Bold。
var (
	DefaultBodyFont    = FontResource{Name: "Body", Src: "embed:go-regular"}
	DefaultHeadingFont = FontResource{Name: "Heading", Src: "embed:go-bold"}
)

// Config 描述一块棋盘的静态配置，构造 Planner 后不再修改。
type Config struct {
	BoardWidth  float64 // 棋盘宽度（英寸）
	Columns     int     // 无标题时的行列数；有标题时必须为 0 或等于标题字符数
	Header      string
	FreeSpace   bool
	TwoUp       bool
	Circles     bool
	BodyFont    FontResource
	HeadingFont FontResource
}

// HasHeading 判断是否绘制标题行。
func (c Config) HasHeading() bool {
	return strings.TrimSpace(c.Header) != ""
}

// GridSize 返回行列数 N：有标题时为标题字符数，否则为 Columns。
func (c Config) GridSize() (int, error) {
	n := c.Columns
	if c.HasHeading() {
		n = utf8.RuneCountInString(c.Header)
		if c.Columns != 0 && c.Columns != n {
			return 0, fmt.Errorf("%w: 标题 %q 有 %d 个字符，与列数 %d 不一致", ErrConfiguration, c.Header, n, c.Columns)
		}
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: 列数必须大于 0，当前为 %d", ErrConfiguration, n)
	}
	return n, nil
}

// Validate 检查配置是否可以用于规划。
func (c Config) Validate() error {
	if c.BoardWidth <= 0 {
		return fmt.Errorf("%w: 棋盘宽度必须大于 0，当前为 %g", ErrConfiguration, c.BoardWidth)
	}
	_, err := c.GridSize()
	return err
}

func (c Config) withDefaults() Config {
	if c.BodyFont.Src == "" {
		c.BodyFont = DefaultBodyFont
	}
	if c.HeadingFont.Src == "" {
		c.HeadingFont = DefaultHeadingFont
	}
	if c.BodyFont.Name == "" {
		c.BodyFont.Name = DefaultBodyFont.Name
	}
	if c.HeadingFont.Name == "" {
		c.HeadingFont.Name = DefaultHeadingFont.Name
	}
	return c
}
