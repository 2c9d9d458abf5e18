// Package words は埋め込みの単語リストを読み込みます。
package words

import (
	_ "embed"
	"fmt"

	"jp_wordbook/internal/model"
	"jp_wordbook/internal/webutil"

	"gopkg.in/yaml.v3"
)

//go:embed words.yaml
var wordsYAML []byte

// Catalog は読み込み済みの単語リスト。順序はファイルの記載順
type Catalog struct {
	words []model.Word
	index map[string]int
}

// Load は埋め込みの単語リストを読み込みます
func Load() (*Catalog, error) {
	return Parse(wordsYAML)
}

// MustLoad は Load に失敗したら panic します（ブラウザ側のエントリーポイント用）
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse は YAML の単語リストを検証付きで読み込みます。
// 全フィールド必須、id の重複は不可。
func Parse(data []byte) (*Catalog, error) {
	var list []model.Word
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse word list: %v: %w", err, model.ErrInvalidInput)
	}

	c := &Catalog{
		words: make([]model.Word, 0, len(list)),
		index: make(map[string]int, len(list)),
	}
	for i, w := range list {
		if err := webutil.Validator.Struct(w); err != nil {
			return nil, fmt.Errorf("word #%d (%q): %w", i+1, w.ID, webutil.NewValidationError(err))
		}
		if _, dup := c.index[w.ID]; dup {
			return nil, fmt.Errorf("duplicate word id %q: %w", w.ID, model.ErrConflict)
		}
		c.index[w.ID] = len(c.words)
		c.words = append(c.words, w)
	}
	return c, nil
}

// All は単語リストのコピーを返します
func (c *Catalog) All() []model.Word {
	out := make([]model.Word, len(c.words))
	copy(out, c.words)
	return out
}

// Find は id に対応する単語を返します
func (c *Catalog) Find(id string) (model.Word, bool) {
	i, ok := c.index[id]
	if !ok {
		return model.Word{}, false
	}
	return c.words[i], true
}

// Len は単語数を返します
func (c *Catalog) Len() int {
	return len(c.words)
}
