package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/wordbingo/fonts"
	"github.com/ByLCY/wordbingo/layout"
	"github.com/ByLCY/wordbingo/renderer"
)

// Renderer 使用 github.com/tdewolff/canvas 把布局结果绘制为 PDF。
// 布局坐标为 pt、原点在左下角；canvas 以 mm 为单位，这里在边界统一换算。
type Renderer struct {
	load func(src string) ([]byte, error)

	fontMu       sync.Mutex
	fontFamilies map[string]*canvas.FontFamily // 按 src 缓存
}

var _ renderer.Renderer = (*Renderer)(nil)

// NewRenderer 创建渲染器，字体数据通过 fonts.Load 读取。
func NewRenderer() *Renderer {
	return &Renderer{
		load:         fonts.Load,
		fontFamilies: map[string]*canvas.FontFamily{},
	}
}

// Render renders the result into a PDF byte slice.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if len(result.Pages) == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}

	var buf bytes.Buffer
	first := result.Pages[0]
	writer := pdf.New(&buf, toMm(first.Width), toMm(first.Height), nil)
	applyMeta(writer, result.Meta)
	for i, page := range result.Pages {
		if i > 0 {
			writer.NewPage(toMm(page.Width), toMm(page.Height))
		}
		c := canvas.New(toMm(page.Width), toMm(page.Height))
		ctx := canvas.NewContext(c)
		ctx.SetCoordSystem(canvas.CartesianI)

		if err := r.drawPage(ctx, page, result.Fonts); err != nil {
			return nil, fmt.Errorf("绘制第 %d 页失败: %w", i+1, err)
		}
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func applyMeta(writer *pdf.PDF, meta layout.DocumentMeta) {
	keywords := strings.Join(meta.Keywords, ", ")
	writer.SetInfo(meta.Title, meta.Subject, keywords, meta.Author, meta.Creator)
}

// drawPage 按 矩形 → 曲线 → 文字 的顺序绘制，保证文字压在填充之上。
func (r *Renderer) drawPage(ctx *canvas.Context, page layout.Page, resources map[string]layout.FontResource) error {
	drawRects(ctx, page.Rects)
	drawCurves(ctx, page.Curves)
	for _, tb := range page.Texts {
		font, ok := resources[tb.Font]
		if !ok {
			return fmt.Errorf("文字 %q 引用了未声明的字体 %s", tb.Content, tb.Font)
		}
		if err := r.drawText(ctx, tb, font); err != nil {
			return err
		}
	}
	return nil
}

func drawRects(ctx *canvas.Context, rects []layout.Rect) {
	for _, rc := range rects {
		ctx.SetFillColor(optionalColor(rc.Fill))
		ctx.SetStrokeColor(optionalColor(rc.Stroke))
		ctx.SetStrokeWidth(toMm(rc.StrokeWidth))
		ctx.DrawPath(toMm(rc.X), toMm(rc.Y), canvas.Rectangle(toMm(rc.Width), toMm(rc.Height)))
	}
}

func drawCurves(ctx *canvas.Context, curves []layout.Curve) {
	for _, cv := range curves {
		if len(cv.Segments) == 0 {
			continue
		}
		p := &canvas.Path{}
		p.MoveTo(toMm(cv.Start.X), toMm(cv.Start.Y))
		for _, seg := range cv.Segments {
			p.CubeTo(toMm(seg.C1.X), toMm(seg.C1.Y), toMm(seg.C2.X), toMm(seg.C2.Y), toMm(seg.End.X), toMm(seg.End.Y))
		}
		p.Close()

		ctx.SetFillColor(optionalColor(cv.Fill))
		ctx.SetStrokeColor(color.RGBA{})
		ctx.DrawPath(0, 0, p)
	}
}

// drawText 在基线位置绘制单行文本；字号为 pt，坐标换算为 mm。
func (r *Renderer) drawText(ctx *canvas.Context, tb layout.TextBox, font layout.FontResource) error {
	if tb.Content == "" {
		return nil
	}
	family, err := r.fontFamily(font)
	if err != nil {
		return err
	}
	face := family.Face(tb.FontSize, colorFromLayout(tb.Color), canvas.FontRegular, canvas.FontNormal)
	line := canvas.NewTextLine(face, tb.Content, canvas.Left)
	ctx.DrawText(toMm(tb.X), toMm(tb.Y), line)
	return nil
}

func (r *Renderer) fontFamily(font layout.FontResource) (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if family, ok := r.fontFamilies[font.Src]; ok {
		return family, nil
	}
	data, err := r.load(font.Src)
	if err != nil {
		return nil, fmt.Errorf("加载字体 %s 失败: %w", font.Name, err)
	}
	name := font.Name
	if name == "" {
		name = "Body"
	}
	family := canvas.NewFontFamily(name)
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("解析字体 %s 失败: %w", font.Name, err)
	}
	r.fontFamilies[font.Src] = family
	return family, nil
}

func optionalColor(c *layout.Color) color.Color {
	if c == nil {
		return color.RGBA{}
	}
	return colorFromLayout(*c)
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}

// toMm 将点(pt)转换为毫米(mm)。
func toMm(pt float64) float64 { return pt * layout.PtToMm }
