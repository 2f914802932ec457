// Package sequencer 按随机顺序逐个发放词库中的单词：在整个词库发完之前不会重复，
// 发完后重新洗牌继续。
package sequencer

import (
	"errors"
	"math/rand/v2"
	"sync"
	"time"
)

// ErrEmpty 表示词库中没有任何单词。
var ErrEmpty = errors.New("sequencer: 词库为空")

// Sequencer 持有当前的随机排列与游标。
//
// 跨越洗牌边界时，上一轮末尾的单词可能紧接着出现在下一轮开头，
// 因此词库小于格子数时同一块棋盘上可能出现重复单词。
type Sequencer struct {
	mu     sync.Mutex
	rng    *rand.Rand
	words  []string // 当前排列
	cursor int
	unique []string
}

// New 复制 words 并立即洗牌。rng 为 nil 时使用按时间播种的随机源；测试可注入固定种子。
func New(words []string, rng *rand.Rand) (*Sequencer, error) {
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>32|1))
	}
	s := &Sequencer{
		rng:    rng,
		words:  append([]string(nil), words...),
		unique: dedupe(words),
	}
	s.shuffle()
	return s, nil
}

// Next 返回下一个单词；当前排列用完时先重新洗牌。
func (s *Sequencer) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor >= len(s.words) {
		s.shuffle()
	}
	w := s.words[s.cursor]
	s.cursor++
	return w
}

// Reset 立即重新洗牌并丢弃当前排列中尚未发放的单词，使每块棋盘的排列相互独立。
func (s *Sequencer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shuffle()
}

// Remaining 返回当前排列中尚未发放的单词数。
func (s *Sequencer) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.words) - s.cursor
}

// Len 返回词库大小（含重复单词）。
func (s *Sequencer) Len() int { return len(s.words) }

// AllWords 返回去重后的单词，保持首次出现的顺序，仅用于字号测量。
func (s *Sequencer) AllWords() []string {
	return append([]string(nil), s.unique...)
}

func (s *Sequencer) shuffle() {
	s.rng.Shuffle(len(s.words), func(i, j int) {
		s.words[i], s.words[j] = s.words[j], s.words[i]
	})
	s.cursor = 0
}

func dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
