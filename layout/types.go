package layout

// 该文件定义布局结果与资源描述，供布局计算、渲染与调试 JSON 共用。
// 所有坐标与尺寸均为 pt，原点位于页面左下角，y 轴向上（与 PDF 一致）。

// Result 保存布局后的页面、字体资源与规划参数。
type Result struct {
	Pages    []Page                  `json:"pages"`
	Fonts    map[string]FontResource `json:"fonts"`
	Meta     DocumentMeta            `json:"meta"`
	Geometry Geometry                `json:"geometry"`
	FontPlan FontPlan                `json:"fontPlan"`
}

// FontResource 描述字体资源，src 可以是文件路径或 embed:* 形式的内置字体。
type FontResource struct {
	Name string `json:"name"`
	Src  string `json:"src"`
}

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

var (
	Black     = Color{}
	White     = Color{R: 255, G: 255, B: 255}
	LightGray = Color{R: 220, G: 220, B: 220}
)

// Page 记录页面尺寸与最终可以直接渲染的元素，绘制顺序为 Rects → Curves → Texts。
type Page struct {
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Rects  []Rect    `json:"rects,omitempty"`
	Curves []Curve   `json:"curves,omitempty"`
	Texts  []TextBox `json:"texts,omitempty"`
}

// Point 是页面上的一个坐标。
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect 表示一个矩形（不包含圆角）。Stroke/Fill 为空表示不描边/不填充。
type Rect struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Stroke      *Color  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
	Fill        *Color  `json:"fill,omitempty"`
}

// Shift 返回沿 y 轴平移 dy 后的矩形。
func (r Rect) Shift(dy float64) Rect {
	r.Y += dy
	return r
}

// Cubic 是一段三次贝塞尔曲线，起点为上一段的终点。
type Cubic struct {
	C1  Point `json:"c1"`
	C2  Point `json:"c2"`
	End Point `json:"end"`
}

// Curve 是由若干三次贝塞尔段组成的闭合路径。
type Curve struct {
	Start    Point   `json:"start"`
	Segments []Cubic `json:"segments"`
	Fill     *Color  `json:"fill,omitempty"`
}

// TextBox 表示一个已经排好坐标的单行文本，X/Y 为基线起点。
type TextBox struct {
	Content  string  `json:"content"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Font     string  `json:"font"`
	FontSize float64 `json:"fontSize"`
	Color    Color   `json:"color"`
}

// DocumentMeta 保存 PDF 元信息。
type DocumentMeta struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Subject  string   `json:"subject"`
	Creator  string   `json:"creator"`
	Keywords []string `json:"keywords"`
}
