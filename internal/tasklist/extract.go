// Package tasklist はテキストからMarkdownのチェックリストを抽出し、
// 複数テキストのチェックリストをまとめてレポートに描画する
package tasklist

import (
	"fmt"
	"strings"

	"github.com/tkc/tasklist-checker/internal/domain"
)

// Checkbox はリスト項目のチェックボックスの状態
type Checkbox int

const (
	// CheckboxNone はチェックボックスの無い通常のリスト項目
	CheckboxNone Checkbox = iota
	CheckboxUnchecked
	CheckboxChecked
)

// ListItem はトークナイザーが返すリスト項目
type ListItem struct {
	Checkbox Checkbox
	// Content は子要素ごとの生テキスト（チェックボックスのマーカーは除く）
	// 先頭の子要素は空でも Content[0] に入る
	Content []string
}

// Tokenizer はMarkdown文書からリスト項目を探す
type Tokenizer interface {
	// ListItems は入れ子も含めた全てのリスト項目を文書内の出現順（深さ優先）で返す
	ListItems(text string) ([]ListItem, error)
}

// Extractor はMarkdownテキストからTaskSetを抽出する
type Extractor struct {
	tokenizer Tokenizer
}

// NewExtractor は新しいExtractorを作成する
func NewExtractor(tokenizer Tokenizer) (*Extractor, error) {
	if tokenizer == nil {
		return nil, fmt.Errorf("tokenizer is required: %w", domain.ErrNotValid)
	}

	return &Extractor{tokenizer: tokenizer}, nil
}

// Tasks はテキストのチェックリストを返す
// 無視する範囲は先に取り除く
func (e *Extractor) Tasks(text string) (domain.TaskSet, error) {
	tasks := domain.NewTaskSet()
	if text == "" {
		return tasks, nil
	}

	items, err := e.tokenizer.ListItems(RemoveIgnored(text))
	if err != nil {
		return tasks, fmt.Errorf("could not tokenize markdown: %w", err)
	}

	for _, item := range items {
		if item.Checkbox == CheckboxNone || len(item.Content) == 0 {
			continue
		}

		// ラベルは先頭の子要素だけ。空白のみなら除外する
		label := strings.TrimSpace(item.Content[0])
		if label == "" {
			continue
		}

		if item.Checkbox == CheckboxChecked {
			tasks.Completed = append(tasks.Completed, label)
		} else {
			tasks.Uncompleted = append(tasks.Uncompleted, label)
		}
	}

	return tasks, nil
}
