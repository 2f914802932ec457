package wordlist

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// 词表格式：以空白分隔的单词。行首单独的 "#"（或 "#" 后跟空白）开始一行注释，
// 其它位置的 # 都是普通字符；双引号括起的条目可以包含空格，缺少右引号时按普通单词处理。
// Root 状态表示位于行首，读到第一个条目后进入 Line 状态，换行时回到 Root。
var (
	wordLexer = lexer.MustStateful(lexer.Rules{
		"Root": {
			{Name: "Comment", Pattern: `#(?:[^\S\n][^\n]*)?(?:\n|$)`},
			{Name: "Whitespace", Pattern: `\s+`},
			{Name: "String", Pattern: `"(?:\\.|[^"\\\n])*"`, Action: lexer.Push("Line")},
			{Name: "Word", Pattern: `\S+`, Action: lexer.Push("Line")},
		},
		"Line": {
			{Name: "Newline", Pattern: `\n`, Action: lexer.Pop()},
			{Name: "Blank", Pattern: `[^\S\n]+`},
			{Name: "String", Pattern: `"(?:\\.|[^"\\\n])*"`},
			{Name: "Word", Pattern: `\S+`},
		},
	})

	listParser = participle.MustBuild[List](
		participle.Lexer(wordLexer),
		participle.Elide("Whitespace", "Blank", "Newline", "Comment"),
	)
)

// List is the root AST node of a word list.
type List struct {
	Entries []*Entry `parser:"@@*"`
}

// Entry is a single bare or quoted word.
type Entry struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Quoted *StringLiteral `parser:"  @String"`
	Bare   *string        `parser:"| @Word"`
}

// Text returns the entry's word.
func (e *Entry) Text() string {
	switch {
	case e == nil:
		return ""
	case e.Quoted != nil:
		return string(*e.Quoted)
	case e.Bare != nil:
		return *e.Bare
	default:
		return ""
	}
}

// Words returns the list's words in order, skipping empty quoted entries.
func (l *List) Words() []string {
	if l == nil {
		return nil
	}
	out := make([]string, 0, len(l.Entries))
	for _, e := range l.Entries {
		if w := e.Text(); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		// 非法转义保留引号内的原文
		val = strings.TrimSuffix(strings.TrimPrefix(values[0], `"`), `"`)
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses a word list from an io.Reader.
func Parse(r io.Reader) (*List, error) {
	return listParser.Parse("", r)
}

// ParseString parses a word list from a string.
func ParseString(input string) (*List, error) {
	return listParser.ParseString("", input)
}
