package layout

import (
	"fmt"
	"strings"
)

// CellCategory 区分格子种类：正文单词、标题字符与中心免费格。
type CellCategory int

const (
	CellBody CellCategory = iota
	CellHeading
	CellFree
)

func (c CellCategory) String() string {
	switch c {
	case CellBody:
		return "body"
	case CellHeading:
		return "heading"
	case CellFree:
		return "free"
	default:
		return fmt.Sprintf("CellCategory(%d)", int(c))
	}
}

// Placement 是一个格子的绘制结果：矩形、文字基线起点以及所用字体。
type Placement struct {
	Rect     Rect         `json:"rect"`
	Origin   Point        `json:"origin"`
	Text     string       `json:"text"`
	Width    float64      `json:"width"`
	Font     FontResource `json:"font"`
	FontSize float64      `json:"fontSize"`
}

// DisplayText 将单词中的下划线显示为空格，只影响绘制，不修改词库。
func DisplayText(word string) string {
	return strings.ReplaceAll(word, "_", " ")
}

// CenterText 计算文字在矩形中居中时的基线起点。
// 垂直方向减去 fontSize/3 而不是一半字号，使大写字母在视觉上居中。
func CenterText(rect Rect, textWidth, fontSize float64) Point {
	return Point{
		X: rect.X + (rect.Width/2 - textWidth/2),
		Y: rect.Y + (rect.Height/2 - fontSize/3),
	}
}

// CellRect 返回第 row 行（自上而下，从 0 开始）、第 col 列格子的矩形，坐标相对于第 0 块棋盘。
// 标题格忽略 row，高度为普通格子的一半，紧贴最上面一行。
func (p *Planner) CellRect(col, row int, cat CellCategory) Rect {
	g := p.geo
	x := g.XOffset + g.BoxSize*float64(col)
	if cat == CellHeading {
		return Rect{
			X:      x,
			Y:      g.YOffset + g.GridSide(),
			Width:  g.BoxSize,
			Height: g.BoxSize / 2,
		}
	}
	return Rect{
		X:      x,
		Y:      g.YOffset + g.BoxSize*float64(g.Columns-row-1),
		Width:  g.BoxSize,
		Height: g.BoxSize,
	}
}

// Place 计算某个格子中文字的字体、字号与居中后的起点。相同参数总是返回相同结果。
func (p *Planner) Place(col, row int, cat CellCategory, text string) (Placement, error) {
	n := p.geo.Columns
	if col < 0 || col >= n || (cat != CellHeading && (row < 0 || row >= n)) {
		return Placement{}, fmt.Errorf("格子 (%d, %d) 超出 %dx%d 网格", col, row, n, n)
	}

	var (
		font FontResource
		size float64
	)
	switch cat {
	case CellHeading:
		if !p.geo.HasHeading {
			return Placement{}, fmt.Errorf("当前棋盘没有标题行")
		}
		font, size = p.cfg.HeadingFont, p.fonts.Heading
	case CellFree:
		font, size = p.cfg.HeadingFont, p.fonts.Free
	default:
		font, size = p.cfg.BodyFont, p.fonts.Body
	}

	display := DisplayText(text)
	unit, err := p.measurer.Measure(font, display)
	if err != nil {
		return Placement{}, fmt.Errorf("%w: 测量 %q 失败: %w", ErrMeasurement, display, err)
	}
	width := unit * size / ReferenceSize

	rect := p.CellRect(col, row, cat)
	return Placement{
		Rect:     rect,
		Origin:   CenterText(rect, width, size),
		Text:     display,
		Width:    width,
		Font:     font,
		FontSize: size,
	}, nil
}
