package layout

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBoxSizeForDefaultBoard 4.75 英寸、5 列时格子边长为 4.75×72/5 = 68.4pt。
func TestBoxSizeForDefaultBoard(t *testing.T) {
	geo, _, err := Plan(bingoConfig(), []string{"cat"}, stubMeasurer{perRune: 0.5})
	require.NoError(t, err)
	assert.Equal(t, 5, geo.Columns)
	assert.InDelta(t, 68.4, geo.BoxSize, eps)
	assert.InDelta(t, PageWidth, geo.PageWidth, eps)
	assert.InDelta(t, PageHeight, geo.PageHeight, eps)
	assert.True(t, geo.HasHeading)
}

// TestHorizontalCentering 对任意合法的 N 与宽度：XOffset ≥ 0 且 N·box + 2·XOffset == 页面宽度。
func TestHorizontalCentering(t *testing.T) {
	for n := 1; n <= 12; n++ {
		for _, width := range []float64{0.5, 1, 3.3, 4.75, 6, 8.5} {
			for _, twoUp := range []bool{false, true} {
				cfg := Config{BoardWidth: width, Columns: n, TwoUp: twoUp}
				geo, _, err := Plan(cfg, []string{"x"}, stubMeasurer{perRune: 0.5})
				if err != nil {
					// 格子太小或放不下时是配置错误，其余情况必须成功
					require.ErrorIs(t, err, ErrConfiguration, "n=%d width=%g", n, width)
					continue
				}
				assert.GreaterOrEqual(t, geo.XOffset, 0.0)
				assert.InDelta(t, geo.PageWidth, float64(n)*geo.BoxSize+2*geo.XOffset, 1e-6, "n=%d width=%g", n, width)
			}
		}
	}
}

// TestVerticalOffsetWithHeading 标题行只占半个格子高度，纵向偏移按公式居中。
func TestVerticalOffsetWithHeading(t *testing.T) {
	geo, _, err := Plan(bingoConfig(), []string{"cat"}, stubMeasurer{perRune: 0.5})
	require.NoError(t, err)
	want := (PageHeight - 5*68.4 - 68.4/2) / 2
	assert.InDelta(t, want, geo.YOffset, eps)
	// 上下留白相同
	top := geo.PageHeight - (geo.YOffset + geo.GridSide() + geo.HeadingHeight())
	assert.InDelta(t, geo.YOffset, top, eps)

	plain := Config{BoardWidth: 4.75, Columns: 5}
	geo, _, err = Plan(plain, []string{"cat"}, stubMeasurer{perRune: 0.5})
	require.NoError(t, err)
	assert.InDelta(t, (PageHeight-5*68.4)/2, geo.YOffset, eps)
	assert.Zero(t, geo.HeadingHeight())
}

func TestTwoUpHalvesPageHeight(t *testing.T) {
	cfg := bingoConfig()
	cfg.TwoUp = true
	geo, _, err := Plan(cfg, []string{"cat"}, stubMeasurer{perRune: 0.5})
	require.NoError(t, err)
	assert.InDelta(t, PageHeight/2, geo.PageHeight, eps)
	assert.InDelta(t, (PageHeight/2-5*68.4-68.4/2)/2, geo.YOffset, eps)
	assert.InDelta(t, 0, geo.SlotOffset(0), eps)
	assert.InDelta(t, PageHeight/2, geo.SlotOffset(1), eps)
}

// TestFontPlanValues 用每字符 0.5pt 的测量器验证三种字号的计算。
func TestFontPlanValues(t *testing.T) {
	_, fonts, err := Plan(bingoConfig(), []string{"cat", "elephant", "dog"}, stubMeasurer{perRune: 0.5})
	require.NoError(t, err)

	// 最宽单词 elephant：8×0.5 = 4；(68.4-6)/4 = 15.6；×0.9
	assert.InDelta(t, 15.6*0.9, fonts.Body, eps)
	// FREE：4×0.5 = 2；(68.4-4)/2
	assert.InDelta(t, 32.2, fonts.Free, eps)
	// 标题：68.4/2 - 2
	assert.InDelta(t, 32.2, fonts.Heading, eps)
}

// TestBodySizeClampedToBox 单词很短时字号不能超过格子高度减去留白。
func TestBodySizeClampedToBox(t *testing.T) {
	_, fonts, err := Plan(bingoConfig(), []string{"a"}, stubMeasurer{perRune: 0.5})
	require.NoError(t, err)
	assert.InDelta(t, (68.4-6)*0.9, fonts.Body, eps)

	// 宽度为 0 的单词同样取上限
	zeroWords := measureFunc(func(font FontResource, text string) (float64, error) {
		if text == FreeText {
			return 2, nil
		}
		return 0, nil
	})
	_, fonts, err = Plan(bingoConfig(), []string{" "}, zeroWords)
	require.NoError(t, err)
	assert.InDelta(t, (68.4-6)*0.9, fonts.Body, eps)

	// FREE 测得 0 属于测量错误
	_, _, err = Plan(bingoConfig(), []string{"a"}, stubMeasurer{perRune: 0})
	require.ErrorIs(t, err, ErrMeasurement)
}

// TestBodySizeNonIncreasing 格子大小固定时，最长单词越长，正文字号不会变大。
func TestBodySizeNonIncreasing(t *testing.T) {
	prev := math.Inf(1)
	for length := 1; length <= 30; length++ {
		words := []string{"ox", strings.Repeat("w", length)}
		_, fonts, err := Plan(bingoConfig(), words, stubMeasurer{perRune: 0.5})
		require.NoError(t, err)
		assert.LessOrEqual(t, fonts.Body, prev, "length=%d", length)
		prev = fonts.Body
	}
}

// TestLongestWordFitsInCell 正文字号下最宽单词两侧至少各留 3pt。
func TestLongestWordFitsInCell(t *testing.T) {
	m := stubMeasurer{perRune: 0.55}
	words := []string{"hippopotamus", "cat", "giraffe"}
	geo, fonts, err := Plan(bingoConfig(), words, m)
	require.NoError(t, err)
	w, _ := m.Measure(DefaultBodyFont, "hippopotamus")
	assert.LessOrEqual(t, w*fonts.Body, geo.BoxSize-bodyPadding)
}

func TestNoHeadingMeansNoHeadingSize(t *testing.T) {
	_, fonts, err := Plan(Config{BoardWidth: 4, Columns: 4}, []string{"cat"}, stubMeasurer{perRune: 0.5})
	require.NoError(t, err)
	assert.Zero(t, fonts.Heading)
}

func TestPlanConfigurationErrors(t *testing.T) {
	m := stubMeasurer{perRune: 0.5}
	cases := []struct {
		name  string
		cfg   Config
		words []string
		m     Measurer
	}{
		{"零列", Config{BoardWidth: 4.75}, []string{"a"}, m},
		{"负列数", Config{BoardWidth: 4.75, Columns: -3}, []string{"a"}, m},
		{"空白标题且无列数", Config{BoardWidth: 4.75, Header: "   "}, []string{"a"}, m},
		{"宽度为零", Config{BoardWidth: 0, Header: "BINGO"}, []string{"a"}, m},
		{"宽度为负", Config{BoardWidth: -1, Header: "BINGO"}, []string{"a"}, m},
		{"空词库", bingoConfig(), nil, m},
		{"标题与列数不一致", Config{BoardWidth: 4.75, Header: "BINGO", Columns: 4}, []string{"a"}, m},
		{"超出页面宽度", Config{BoardWidth: 9, Header: "BINGO"}, []string{"a"}, m},
		{"两联超出半页高度", Config{BoardWidth: 6, Header: "BINGO", TwoUp: true}, []string{"a"}, m},
		{"格子过小", Config{BoardWidth: 0.25, Header: "BINGO"}, []string{"a"}, m},
		{"缺少测量器", bingoConfig(), []string{"a"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Plan(tc.cfg, tc.words, tc.m)
			require.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestPlanMeasurementErrors(t *testing.T) {
	m := stubMeasurer{perRune: 0.5, fail: map[string]error{"dog": errBrokenFont}}
	_, _, err := Plan(bingoConfig(), []string{"cat", "dog"}, m)
	require.ErrorIs(t, err, ErrMeasurement)
	require.ErrorIs(t, err, errBrokenFont)

	m = stubMeasurer{perRune: 0.5, fail: map[string]error{FreeText: errBrokenFont}}
	_, _, err = Plan(bingoConfig(), []string{"cat"}, m)
	require.ErrorIs(t, err, ErrMeasurement)
}

func TestHeaderSetsGridSize(t *testing.T) {
	for _, header := range []string{"B", "BIN", "BINGO", "WORDBINGO", "宾果"} {
		n, err := Config{BoardWidth: 4, Header: header}.GridSize()
		require.NoError(t, err)
		assert.Equal(t, len([]rune(header)), n, "header=%q", header)
	}
	// 列数与标题一致时允许同时给出
	n, err := Config{Header: "BINGO", Columns: 5}.GridSize()
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestNewPlannerAccessors(t *testing.T) {
	p := mustPlanner(t, bingoConfig(), []string{"cat", "dog"})
	assert.Equal(t, 5, p.Columns())
	assert.Equal(t, "B", p.HeadingText(0))
	assert.Equal(t, "O", p.HeadingText(4))
	assert.Empty(t, p.HeadingText(5))
	assert.True(t, p.IsFree(2, 2))
	assert.False(t, p.IsFree(2, 1))
	assert.Equal(t, DefaultBodyFont, p.Config().BodyFont)
	assert.Equal(t, DefaultHeadingFont, p.Config().HeadingFont)

	noFree := bingoConfig()
	noFree.FreeSpace = false
	assert.False(t, mustPlanner(t, noFree, []string{"cat"}).IsFree(2, 2))

	_, err := NewPlanner(bingoConfig(), nil, stubMeasurer{perRune: 0.5})
	require.ErrorIs(t, err, ErrConfiguration)
}
