package layout

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// stubMeasurer 让每个字符在 1pt 字号下宽 perRune，避免测试依赖真实字体。
type stubMeasurer struct {
	perRune float64
	fail    map[string]error
}

func (s stubMeasurer) Measure(font FontResource, text string) (float64, error) {
	if err, ok := s.fail[text]; ok {
		return 0, err
	}
	return s.perRune * float64(utf8.RuneCountInString(text)), nil
}

type measureFunc func(font FontResource, text string) (float64, error)

func (f measureFunc) Measure(font FontResource, text string) (float64, error) { return f(font, text) }

type wordList []string

func (w wordList) AllWords() []string { return w }

// fakeSequencer 按固定顺序循环发放单词并记录调用次数。
type fakeSequencer struct {
	words  []string
	pos    int
	calls  int
	resets int
}

func (f *fakeSequencer) Next() string {
	w := f.words[f.pos%len(f.words)]
	f.pos++
	f.calls++
	return w
}

func (f *fakeSequencer) Reset() {
	f.resets++
	f.pos = 0
}

var errBrokenFont = errors.New("broken font")

func bingoConfig() Config {
	return Config{BoardWidth: 4.75, Header: "BINGO", FreeSpace: true}
}

func mustPlanner(t *testing.T, cfg Config, words []string) *Planner {
	t.Helper()
	p, err := NewPlanner(cfg, wordList(words), stubMeasurer{perRune: 0.5})
	require.NoError(t, err, "构造 Planner 失败")
	return p
}
