package wordlist_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/wordbingo/wordlist"
)

const sampleList = `
# 动物
cat dog   bird
fish	cat
"ice cream" hot_dog # 不是注释
  # 行首注释可以缩进
naïve "say \"hi\"" c#
""
`

func TestParseList(t *testing.T) {
	list, err := wordlist.ParseString(sampleList)
	require.NoError(t, err, "解析失败")

	want := []string{"cat", "dog", "bird", "fish", "cat", "ice cream", "hot_dog", "#", "不是注释", "naïve", `say "hi"`, "c#"}
	assert.Equal(t, want, list.Words())
	require.Len(t, list.Entries, len(want)+1, "空引号条目仍保留在语法树中")
	assert.Equal(t, 3, list.Entries[0].Pos.Line)
}

func TestParseReader(t *testing.T) {
	list, err := wordlist.Parse(strings.NewReader("alpha\nbeta gamma\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, list.Words())
}

// 缺少右引号时按普通单词处理，不报错。
func TestParseUnbalancedQuoteIsBareWord(t *testing.T) {
	list, err := wordlist.ParseString(`cat "ice cream`)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", `"ice`, "cream"}, list.Words())

	pool, err := wordlist.FromString("don't \"quoted")
	require.NoError(t, err)
	assert.Equal(t, []string{"don't", `"quoted`}, pool.Words())

	list, err = wordlist.ParseString("\"a\nb\"")
	require.NoError(t, err, "引号不能跨行")
	assert.Equal(t, []string{`"a`, `b"`}, list.Words())
}

// 只有行首单独的 # 才是注释，#1、#tag 之类的单词保留。
func TestParseHashWords(t *testing.T) {
	pool, err := wordlist.FromString("#1 #2 apple")
	require.NoError(t, err)
	assert.Equal(t, []string{"#1", "#2", "apple"}, pool.Words())

	pool, err = wordlist.FromString("#\n# note\n#tag one\n\t# indented\ntwo #")
	require.NoError(t, err)
	assert.Equal(t, []string{"#tag", "one", "two", "#"}, pool.Words())
}

func TestParseBadEscapeKeepsText(t *testing.T) {
	list, err := wordlist.ParseString(`"C:\q" ok`)
	require.NoError(t, err)
	assert.Equal(t, []string{`C:\q`, "ok"}, list.Words())
}

func TestFromStringEmpty(t *testing.T) {
	for _, input := range []string{"", "   \n\t", "# 只有注释\n# 第二行"} {
		_, err := wordlist.FromString(input)
		assert.ErrorIs(t, err, wordlist.ErrEmptyPool, "input=%q", input)
	}
}

func TestPoolKeepsOrderAndDedupes(t *testing.T) {
	pool, err := wordlist.FromString("b a b c a")
	require.NoError(t, err)
	assert.Equal(t, 5, pool.Len())
	assert.Equal(t, []string{"b", "a", "b", "c", "a"}, pool.Words())
	assert.Equal(t, []string{"b", "a", "c"}, pool.AllWords())
}

func TestNewPoolEmpty(t *testing.T) {
	_, err := wordlist.NewPool(nil)
	require.ErrorIs(t, err, wordlist.ErrEmptyPool)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("red green\nblue\n"), 0o644))

	pool, err := wordlist.FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "green", "blue"}, pool.Words())

	_, err = wordlist.FromFile(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuiltinLists(t *testing.T) {
	names := wordlist.BuiltinNames()
	assert.Equal(t, []string{"abclower", "abcupper", "kdg", "sight", "silente"}, names)

	for _, name := range names {
		pool, err := wordlist.Builtin(name)
		require.NoError(t, err, "加载内置词表 %s 失败", name)
		assert.Greater(t, pool.Len(), 0, name)
	}

	upper, err := wordlist.Builtin("abcupper")
	require.NoError(t, err)
	assert.Equal(t, 26, upper.Len())
	assert.Equal(t, "A", upper.Words()[0])
}

func TestBuiltinUnknown(t *testing.T) {
	for _, name := range []string{"nope", "", "../kdg", "kdg.txt"} {
		_, err := wordlist.Builtin(name)
		assert.ErrorIs(t, err, wordlist.ErrUnknownList, "name=%q", name)
	}
}
