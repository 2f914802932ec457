package layout

// BuildOptions 配置棋盘生成阶段的参数。
type BuildOptions struct {
	// Pages 为输出的页数；两联模式下每页包含两块棋盘。
	Pages int
	// SharedShuffle 为 true 时，同一页上的两块棋盘共用一次洗牌，而不是各自重新洗牌。
	SharedShuffle bool
	Meta          DocumentMeta
}

// Measurer 负责测量文本宽度：返回字号为 1pt 时字符串的渲染宽度（pt）。
type Measurer interface {
	Measure(font FontResource, text string) (float64, error)
}

// WordSet 提供词库中去重后的全部单词，仅用于字号测量。
type WordSet interface {
	AllWords() []string
}

// Sequencer 按格子顺序逐个提供单词。
type Sequencer interface {
	Next() string
	Reset()
}
