package wordlist

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

var (
	// ErrEmptyPool 表示来源中没有任何单词。
	ErrEmptyPool = errors.New("wordlist: 词库为空")
	// ErrUnknownList 表示找不到指定名称的内置词表。
	ErrUnknownList = errors.New("wordlist: 未知的内置词表")
)

//go:embed lists/*.txt
var listFS embed.FS

// Pool 保存按输入顺序排列的单词以及去重后的集合，单词内容不做任何规范化。
type Pool struct {
	words  []string
	unique []string
}

// NewPool 由单词切片构造词库，至少需要一个单词。
func NewPool(words []string) (*Pool, error) {
	if len(words) == 0 {
		return nil, ErrEmptyPool
	}
	p := &Pool{words: append([]string(nil), words...)}
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		p.unique = append(p.unique, w)
	}
	return p, nil
}

// Words 返回全部单词（含重复）的副本。
func (p *Pool) Words() []string { return append([]string(nil), p.words...) }

// AllWords 返回去重后的单词，保持首次出现的顺序。
func (p *Pool) AllWords() []string { return append([]string(nil), p.unique...) }

// Len 返回单词总数（含重复）。
func (p *Pool) Len() int { return len(p.words) }

// FromReader 从 r 读取并解析词表。
func FromReader(r io.Reader) (*Pool, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("读取词表失败: %w", err)
	}
	return FromString(string(data))
}

// FromString 解析以空白分隔的单词字符串。
func FromString(s string) (*Pool, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyPool
	}
	list, err := ParseString(s)
	if err != nil {
		return nil, fmt.Errorf("解析词表失败: %w", err)
	}
	return NewPool(list.Words())
}

// FromFile 读取并解析词表文件。
func FromFile(filename string) (*Pool, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("无法打开词表文件 %s: %w", filename, err)
	}
	defer f.Close()
	pool, err := FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return pool, nil
}

// Builtin 加载内置词表，name 不含扩展名，例如 "sight"。
func Builtin(name string) (*Pool, error) {
	if name == "" || strings.ContainsAny(name, `/\.`) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownList, name)
	}
	data, err := listFS.ReadFile(path.Join("lists", name+".txt"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q（可选：%s）", ErrUnknownList, name, strings.Join(BuiltinNames(), ", "))
		}
		return nil, fmt.Errorf("读取内置词表 %s 失败: %w", name, err)
	}
	return FromString(string(data))
}

// BuiltinNames 返回全部内置词表名称，按字母排序。
func BuiltinNames() []string {
	matches, _ := fs.Glob(listFS, "lists/*.txt")
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".txt"))
	}
	sort.Strings(names)
	return names
}
