package layout

import "fmt"

const (
	boldLineWidth = 2.0
	thinLineWidth = 0.25
	borderMargin  = 9.0
)

// Build 按 opts.Pages 生成页面；每块棋盘开始前重新洗牌，两联且 SharedShuffle 时每页只洗一次。
func Build(p *Planner, seq Sequencer, opts BuildOptions) (*Result, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: 缺少 Planner", ErrConfiguration)
	}
	if seq == nil {
		return nil, fmt.Errorf("%w: 缺少单词序列", ErrConfiguration)
	}
	if opts.Pages <= 0 {
		return nil, fmt.Errorf("%w: 页数必须大于 0，当前为 %d", ErrConfiguration, opts.Pages)
	}

	slots := 1
	if p.cfg.TwoUp {
		slots = 2
	}

	pages := make([]Page, 0, opts.Pages)
	for i := 0; i < opts.Pages; i++ {
		page := Page{Width: PageWidth, Height: PageHeight}
		if opts.SharedShuffle {
			seq.Reset()
			Logger().Debug("重新洗牌", "page", i+1, "shared", true)
		}
		for slot := 0; slot < slots; slot++ {
			if !opts.SharedShuffle {
				seq.Reset()
				Logger().Debug("重新洗牌", "page", i+1, "slot", slot)
			}
			if err := p.drawBoard(&page, seq, p.geo.SlotOffset(slot)); err != nil {
				return nil, fmt.Errorf("生成第 %d 页第 %d 块棋盘失败: %w", i+1, slot+1, err)
			}
		}
		pages = append(pages, page)
	}

	return &Result{
		Pages: pages,
		Fonts: map[string]FontResource{
			p.cfg.BodyFont.Name:    p.cfg.BodyFont,
			p.cfg.HeadingFont.Name: p.cfg.HeadingFont,
		},
		Meta:     opts.Meta,
		Geometry: p.geo,
		FontPlan: p.fonts,
	}, nil
}

// drawBoard 将一块棋盘追加到 page，dy 为该棋盘在页面上的 y 偏移。
func (p *Planner) drawBoard(page *Page, seq Sequencer, dy float64) error {
	g := p.geo
	n := g.Columns

	// 粗线：每个格子与标题格
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			rect := p.CellRect(col, row, CellBody).Shift(dy)
			rect.Stroke, rect.StrokeWidth = colorPtr(Black), boldLineWidth
			page.Rects = append(page.Rects, rect)
			// 免费格会被涂黑，不画装饰圆
			if p.cfg.Circles && !p.IsFree(col, row) {
				circle := InscribedCircle(rect)
				circle.Fill = colorPtr(LightGray)
				page.Curves = append(page.Curves, circle)
			}
		}
	}
	if g.HasHeading {
		for col := 0; col < n; col++ {
			rect := p.CellRect(col, 0, CellHeading).Shift(dy)
			rect.Stroke, rect.StrokeWidth = colorPtr(Black), boldLineWidth
			page.Rects = append(page.Rects, rect)
		}
	}

	// 细线外框
	page.Rects = append(page.Rects, Rect{
		X:           g.XOffset - borderMargin,
		Y:           g.YOffset + dy - borderMargin,
		Width:       g.GridSide() + 2*borderMargin,
		Height:      g.GridSide() + g.HeadingHeight() + 2*borderMargin,
		Stroke:      colorPtr(Black),
		StrokeWidth: thinLineWidth,
	})

	if g.HasHeading {
		for col := 0; col < n; col++ {
			pl, err := p.Place(col, 0, CellHeading, p.HeadingText(col))
			if err != nil {
				return err
			}
			page.Texts = append(page.Texts, textBox(pl, dy, Black))
		}
	}

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if p.IsFree(col, row) {
				rect := p.CellRect(col, row, CellFree).Shift(dy)
				rect.Fill = colorPtr(Black)
				page.Rects = append(page.Rects, rect)
				pl, err := p.Place(col, row, CellFree, FreeText)
				if err != nil {
					return err
				}
				page.Texts = append(page.Texts, textBox(pl, dy, White))
				continue
			}
			pl, err := p.Place(col, row, CellBody, seq.Next())
			if err != nil {
				return err
			}
			page.Texts = append(page.Texts, textBox(pl, dy, Black))
		}
	}
	return nil
}

func textBox(pl Placement, dy float64, c Color) TextBox {
	return TextBox{
		Content:  pl.Text,
		X:        pl.Origin.X,
		Y:        pl.Origin.Y + dy,
		Font:     pl.Font.Name,
		FontSize: pl.FontSize,
		Color:    c,
	}
}

func colorPtr(c Color) *Color { return &c }
