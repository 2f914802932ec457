package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ByLCY/wordbingo/fonts"
	"github.com/ByLCY/wordbingo/layout"
	"github.com/ByLCY/wordbingo/renderer"
	canvasrenderer "github.com/ByLCY/wordbingo/renderer/canvas"
	"github.com/ByLCY/wordbingo/sequencer"
	"github.com/ByLCY/wordbingo/wordlist"
)

// options 收集命令行参数。
type options struct {
	size          string
	twoUp         bool
	noFree        bool
	file          string
	words         string
	common        string
	header        string
	cols          int
	output        string
	circle        bool
	pages         int
	seed          uint64
	sharedShuffle bool
	bodyFont      string
	headingFont   string
	debug         string
	verbose       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "wordbingo",
		Short: "生成可打印的单词宾果卡 PDF",
		Long: "从词库随机抽取单词填入宾果卡，每页一张（或两张）卡片。\n" +
			"词库来源优先级：--common > --file > --words > 标准输入。",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(cmd.ErrOrStderr(), opts.verbose)
			if err := run(opts, cmd.InOrStdin(), canvasrenderer.NewRenderer()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "已生成 PDF：%s\n", opts.output)
			return nil
		},
	}

	f := cmd.Flags()
	// -h 留给 --header，先注册不带简写的 help，cobra 就不会再注册 -h
	f.Bool("help", false, "help for wordbingo")
	f.StringVarP(&opts.size, "size", "s", "4.75", "棋盘宽度，可带单位（in/mm/cm/pt，默认英寸）")
	f.BoolVarP(&opts.twoUp, "two-up", "2", false, "每页上下各放一张卡片")
	f.BoolVarP(&opts.noFree, "no-free", "F", false, "不设置中心免费格")
	f.StringVarP(&opts.file, "file", "f", "", "词库文件路径")
	f.StringVarP(&opts.words, "words", "w", "", "直接给出的单词（空白分隔，可用双引号包含空格）")
	f.StringVarP(&opts.common, "common", "C", "", "内置词库（"+strings.Join(wordlist.BuiltinNames(), ", ")+"）")
	f.StringVarP(&opts.header, "header", "h", "BINGO", "标题行文字，每个字符占一列；为空时使用 --cols")
	f.IntVarP(&opts.cols, "cols", "n", 5, "没有标题时的列数")
	f.StringVarP(&opts.output, "output", "o", "bingo.pdf", "PDF 输出路径")
	f.BoolVarP(&opts.circle, "circle", "c", false, "在每个格子中绘制装饰圆")
	f.IntVarP(&opts.pages, "pages", "p", 8, "页数")
	f.Uint64Var(&opts.seed, "seed", 0, "随机种子，0 表示随机")
	f.BoolVar(&opts.sharedShuffle, "shared-shuffle", false, "两联时同一页的两张卡片共用一次洗牌")
	f.StringVar(&opts.bodyFont, "body-font", "", "正文字体（embed:<name> 或字体文件路径）")
	f.StringVar(&opts.headingFont, "heading-font", "", "标题与 FREE 字体（embed:<name> 或字体文件路径）")
	f.StringVar(&opts.debug, "debug", "", "布局调试 JSON 输出路径")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "输出调试日志")

	cmd.AddCommand(newListsCmd())
	return cmd
}

func newListsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "列出内置词库与内置字体",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "词库: %s\n", strings.Join(wordlist.BuiltinNames(), ", "))
			fmt.Fprintf(out, "字体: embed:%s\n", strings.Join(fonts.Names(), ", embed:"))
		},
	}
}

func setupLogger(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	layout.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "生成 PDF 失败: %v\n", err)
		os.Exit(1)
	}
}

// run 串联词库读取、布局与渲染。
func run(opts *options, stdin io.Reader, r renderer.Renderer) error {
	if r == nil {
		return fmt.Errorf("renderer 不能为空")
	}
	cfg, err := opts.config()
	if err != nil {
		return err
	}
	pool, source, err := loadPool(opts, stdin)
	if err != nil {
		return fmt.Errorf("读取词库失败: %w", err)
	}
	layout.Logger().Info("词库已载入", "source", source, "words", pool.Len(), "unique", len(pool.AllWords()))

	var rng *rand.Rand
	if opts.seed != 0 {
		rng = rand.New(rand.NewPCG(opts.seed, opts.seed))
	}
	seq, err := sequencer.New(pool.Words(), rng)
	if err != nil {
		return err
	}

	planner, err := layout.NewPlanner(cfg, pool, fonts.NewMetrics())
	if err != nil {
		return fmt.Errorf("布局规划失败: %w", err)
	}
	result, err := layout.Build(planner, seq, layout.BuildOptions{
		Pages:         opts.pages,
		SharedShuffle: opts.sharedShuffle,
		Meta:          documentMeta(cfg, source),
	})
	if err != nil {
		return fmt.Errorf("布局计算失败: %w", err)
	}

	if opts.debug != "" {
		if err := layout.WriteDebugJSON(result, opts.debug); err != nil {
			return fmt.Errorf("输出调试 JSON 失败: %w", err)
		}
	}

	pdfBytes, err := r.Render(result)
	if err != nil {
		return fmt.Errorf("渲染 PDF 失败: %w", err)
	}
	if dir := filepath.Dir(opts.output); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建输出目录失败: %w", err)
		}
	}
	if err := os.WriteFile(opts.output, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("写入 PDF 文件失败: %w", err)
	}
	return nil
}

// config 把命令行参数转换为布局配置；有标题时列数由标题决定。
func (o *options) config() (layout.Config, error) {
	size, err := layout.ParseLength(o.size)
	if err != nil {
		return layout.Config{}, fmt.Errorf("%w: --size: %w", layout.ErrConfiguration, err)
	}
	cfg := layout.Config{
		BoardWidth: size.ToIN(),
		Header:     o.header,
		FreeSpace:  !o.noFree,
		TwoUp:      o.twoUp,
		Circles:    o.circle,
	}
	if !cfg.HasHeading() {
		cfg.Columns = o.cols
	}
	if o.bodyFont != "" {
		cfg.BodyFont = layout.FontResource{Name: layout.DefaultBodyFont.Name, Src: o.bodyFont}
	}
	if o.headingFont != "" {
		cfg.HeadingFont = layout.FontResource{Name: layout.DefaultHeadingFont.Name, Src: o.headingFont}
	}
	return cfg, nil
}

// loadPool 按 common > file > words > stdin 的优先级选择词库，返回词库与来源描述。
func loadPool(opts *options, stdin io.Reader) (*wordlist.Pool, string, error) {
	switch {
	case opts.common != "":
		pool, err := wordlist.Builtin(opts.common)
		return pool, "common:" + opts.common, err
	case opts.file != "":
		pool, err := wordlist.FromFile(opts.file)
		return pool, opts.file, err
	case strings.TrimSpace(opts.words) != "":
		pool, err := wordlist.FromString(opts.words)
		return pool, "words", err
	case stdin != nil:
		pool, err := wordlist.FromReader(stdin)
		return pool, "stdin", err
	default:
		return nil, "", wordlist.ErrEmptyPool
	}
}

func documentMeta(cfg layout.Config, source string) layout.DocumentMeta {
	title := strings.TrimSpace(cfg.Header)
	if title == "" {
		title = "Word Bingo"
	}
	return layout.DocumentMeta{
		Title:    title,
		Subject:  "word bingo cards (" + source + ")",
		Creator:  "wordbingo",
		Keywords: []string{"bingo", "words"},
	}
}
