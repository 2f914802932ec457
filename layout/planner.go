package layout

import "fmt"

// 页面固定为 US Letter（8.5×11 英寸），单位 pt。
const (
	PageWidth  = 8.5 * PtPerInch
	PageHeight = 11 * PtPerInch
)

const (
	// ReferenceSize 是测量文本宽度时使用的名义字号，Measurer 的结果按此字号给出。
	ReferenceSize = 1.0
	// FreeText 是中心免费格中的固定文字。
	FreeText = "FREE"

	bodyPadding    = 6.0
	freePadding    = 4.0
	headingPadding = 2.0
	bodyShrink     = 0.90
)

// Geometry 是由棋盘宽度与行列数推导出的网格几何参数，单位 pt。
type Geometry struct {
	Columns    int     `json:"columns"`
	BoxSize    float64 `json:"boxSize"`
	XOffset    float64 `json:"xOffset"`
	YOffset    float64 `json:"yOffset"`
	PageWidth  float64 `json:"pageWidth"`
	PageHeight float64 `json:"pageHeight"` // 两联时为半页高度
	HasHeading bool    `json:"hasHeading"`
}

// HeadingHeight 返回标题行高度（格子高度的一半），无标题时为 0。
func (g Geometry) HeadingHeight() float64 {
	if !g.HasHeading {
		return 0
	}
	return g.BoxSize / 2
}

// GridSide 返回 N 个格子的总边长。
func (g Geometry) GridSide() float64 {
	return float64(g.Columns) * g.BoxSize
}

// SlotOffset 返回第 slot 块棋盘在页面上的 y 偏移。两联时 slot 1 位于上半页。
func (g Geometry) SlotOffset(slot int) float64 {
	return float64(slot) * g.PageHeight
}

// FontPlan 记录正文、FREE 与标题的字号（pt）。
type FontPlan struct {
	Body    float64 `json:"body"`
	Free    float64 `json:"free"`
	Heading float64 `json:"heading"`
}

// Plan 根据配置与词库计算网格几何与字号。它不持有状态，同样的输入总是得到同样的结果。
func Plan(cfg Config, words []string, m Measurer) (Geometry, FontPlan, error) {
	if err := cfg.Validate(); err != nil {
		return Geometry{}, FontPlan{}, err
	}
	if m == nil {
		return Geometry{}, FontPlan{}, fmt.Errorf("%w: 缺少文本测量后端 Measurer", ErrConfiguration)
	}
	if len(words) == 0 {
		return Geometry{}, FontPlan{}, fmt.Errorf("%w: 词库为空", ErrConfiguration)
	}
	cfg = cfg.withDefaults()

	geo, err := planGeometry(cfg)
	if err != nil {
		return Geometry{}, FontPlan{}, err
	}
	fonts, err := planFonts(cfg, geo, words, m)
	if err != nil {
		return Geometry{}, FontPlan{}, err
	}
	return geo, fonts, nil
}

func planGeometry(cfg Config) (Geometry, error) {
	n, err := cfg.GridSize()
	if err != nil {
		return Geometry{}, err
	}
	geo := Geometry{
		Columns:    n,
		PageWidth:  PageWidth,
		PageHeight: PageHeight,
		HasHeading: cfg.HasHeading(),
	}
	if cfg.TwoUp {
		geo.PageHeight = PageHeight / 2
	}

	geo.BoxSize = Length{Value: cfg.BoardWidth, Unit: UnitIN}.ToPT() / float64(n)
	headingAllowance := 0.0
	if geo.HasHeading {
		headingAllowance = geo.BoxSize
	}
	geo.XOffset = (geo.PageWidth - geo.GridSide()) / 2
	geo.YOffset = (geo.PageHeight - geo.GridSide() - headingAllowance/2) / 2

	if geo.XOffset < 0 || geo.YOffset < 0 {
		return Geometry{}, fmt.Errorf("%w: %g 英寸的棋盘放不进 %gx%gpt 的页面", ErrConfiguration, cfg.BoardWidth, geo.PageWidth, geo.PageHeight)
	}
	if geo.BoxSize <= bodyPadding {
		return Geometry{}, fmt.Errorf("%w: 格子边长 %.2fpt 过小，无法容纳文字", ErrConfiguration, geo.BoxSize)
	}
	return geo, nil
}

func planFonts(cfg Config, geo Geometry, words []string, m Measurer) (FontPlan, error) {
	// 以词库中最宽的单词决定正文字号，保证任意单词都能放进格子
	maxWidth := 0.0
	for _, word := range words {
		w, err := m.Measure(cfg.BodyFont, word)
		if err != nil {
			return FontPlan{}, fmt.Errorf("%w: 测量 %q 失败: %w", ErrMeasurement, word, err)
		}
		if w > maxWidth {
			maxWidth = w
		}
	}

	limit := geo.BoxSize - bodyPadding
	ideal := limit
	if maxWidth > 0 {
		ideal = limit / maxWidth * ReferenceSize
	}
	// 不能超过格子高度
	if ideal > limit {
		ideal = limit
	}

	freeWidth, err := m.Measure(cfg.HeadingFont, FreeText)
	if err != nil {
		return FontPlan{}, fmt.Errorf("%w: 测量 %q 失败: %w", ErrMeasurement, FreeText, err)
	}
	if freeWidth <= 0 {
		return FontPlan{}, fmt.Errorf("%w: %q 的宽度为 0", ErrMeasurement, FreeText)
	}

	plan := FontPlan{
		Body: ideal * bodyShrink,
		Free: (geo.BoxSize - freePadding) / freeWidth * ReferenceSize,
	}
	if geo.HasHeading {
		plan.Heading = geo.BoxSize/2 - headingPadding
	}
	return plan, nil
}

// Planner 保存一次规划的结果，并负责计算每个格子的位置与文字起点。构造后不可变。
type Planner struct {
	cfg      Config
	geo      Geometry
	fonts    FontPlan
	measurer Measurer
	heading  []rune
}

// NewPlanner 根据配置与词库构造 Planner。
func NewPlanner(cfg Config, words WordSet, m Measurer) (*Planner, error) {
	if words == nil {
		return nil, fmt.Errorf("%w: 词库为空", ErrConfiguration)
	}
	geo, fonts, err := Plan(cfg, words.AllWords(), m)
	if err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	Logger().Info("棋盘规划完成",
		"columns", geo.Columns,
		"boxSize", geo.BoxSize,
		"bodySize", fonts.Body,
		"freeSize", fonts.Free,
		"headingSize", fonts.Heading,
	)
	p := &Planner{
		cfg:      cfg,
		geo:      geo,
		fonts:    fonts,
		measurer: m,
	}
	if geo.HasHeading {
		p.heading = []rune(cfg.Header)
	}
	return p, nil
}

func (p *Planner) Config() Config     { return p.cfg }
func (p *Planner) Geometry() Geometry { return p.geo }
func (p *Planner) FontPlan() FontPlan { return p.fonts }
func (p *Planner) Columns() int       { return p.geo.Columns }

// HeadingText 返回第 col 个标题格中的字符。
func (p *Planner) HeadingText(col int) string {
	if col < 0 || col >= len(p.heading) {
		return ""
	}
	return string(p.heading[col])
}

// IsFree 判断 (col, row) 是否为中心免费格。
func (p *Planner) IsFree(col, row int) bool {
	center := p.geo.Columns / 2
	return p.cfg.FreeSpace && col == center && row == center
}
