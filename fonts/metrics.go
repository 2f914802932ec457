package fonts

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/ByLCY/wordbingo/layout"
)

// measureSize 是整形时使用的字号，对应 PDF 字体度量中的 1/1000 em 约定。
const measureSize = 1000

// Metrics 使用 go-text/typesetting 的 HarfBuzz 整形测量字符串宽度，实现 layout.Measurer。
// 解析后的 font.Font 按 src 缓存，可并发使用。
type Metrics struct {
	mu    sync.RWMutex
	fonts map[string]*font.Font

	shapers sync.Pool
}

var _ layout.Measurer = (*Metrics)(nil)

// NewMetrics 创建文本测量器。
func NewMetrics() *Metrics {
	return &Metrics{
		fonts: map[string]*font.Font{},
		shapers: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}
}

// Measure 返回 text 在 1pt 字号下的宽度（pt）。
func (m *Metrics) Measure(res layout.FontResource, text string) (float64, error) {
	f, err := m.font(res.Src)
	if err != nil {
		return 0, err
	}
	if text == "" {
		return 0, nil
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f),
		Size:      fixed.I(measureSize),
		Script:    language.LookupScript(runes[0]),
		Language:  language.NewLanguage("en"),
	}

	// HarfbuzzShaper 不能并发使用，每次从池中取一个
	shaper := m.shapers.Get().(*shaping.HarfbuzzShaper)
	out := shaper.Shape(input)
	m.shapers.Put(shaper)

	advance := float64(out.Advance) / 64
	return advance / measureSize * layout.ReferenceSize, nil
}

func (m *Metrics) font(src string) (*font.Font, error) {
	m.mu.RLock()
	f, ok := m.fonts[src]
	m.mu.RUnlock()
	if ok {
		return f, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.fonts[src]; ok {
		return f, nil
	}
	data, err := Load(src)
	if err != nil {
		return nil, err
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("解析字体 %s 失败: %w", src, err)
	}
	m.fonts[src] = face.Font
	return face.Font, nil
}
