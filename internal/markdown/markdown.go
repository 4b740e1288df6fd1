// Package markdown は goldmark を使ったタスクリストのトークナイザー
package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/tkc/tasklist-checker/internal/tasklist"
)

// GFM のタスクリストと同じく、マーカーの後には空白か行末が必要
var checkboxMarkerRegexp = regexp.MustCompile(`^\s*\[[\sxX]\](\s|$)`)

// Tokenizer は GitHub Flavored Markdown のパーサーでリスト項目を探す
type Tokenizer struct {
	md goldmark.Markdown
}

var _ tasklist.Tokenizer = &Tokenizer{}

// NewTokenizer は新しいTokenizerを作成する
func NewTokenizer() *Tokenizer {
	return &Tokenizer{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// ListItems は文書内の全てのリスト項目を出現順に返す
func (t *Tokenizer) ListItems(src string) ([]tasklist.ListItem, error) {
	source := []byte(src)
	doc := t.md.Parser().Parse(text.NewReader(source))

	var items []tasklist.ListItem
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if _, ok := n.(*ast.ListItem); !ok {
			return ast.WalkContinue, nil
		}

		items = append(items, listItem(n, source))
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not walk markdown document: %w", err)
	}

	return items, nil
}

// listItem はリスト項目の子要素ごとの生テキストを集める
// 先頭の子要素は空でも必ず Content[0] に入れる
func listItem(n ast.Node, source []byte) tasklist.ListItem {
	item := tasklist.ListItem{Checkbox: checkbox(n, source)}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		start, stop, ok := blockSpan(c)
		first := c == n.FirstChild()
		if !ok {
			if first {
				item.Content = append(item.Content, "")
			}
			continue
		}

		raw := string(source[start:stop])
		if first {
			if item.Checkbox != tasklist.CheckboxNone {
				raw = checkboxMarkerRegexp.ReplaceAllLiteralString(raw, "")
			}
			item.Content = append(item.Content, raw)
			continue
		}
		if strings.TrimSpace(raw) == "" {
			continue
		}

		item.Content = append(item.Content, raw)
	}

	return item
}

// checkbox は先頭の段落にあるタスクのチェックボックスの状態を返す
// "[x]foo" のようにマーカーの直後に文字が続く場合はチェックボックスとみなさない
func checkbox(item ast.Node, source []byte) tasklist.Checkbox {
	first := item.FirstChild()
	if first == nil {
		return tasklist.CheckboxNone
	}

	cb, ok := first.FirstChild().(*extast.TaskCheckBox)
	if !ok {
		return tasklist.CheckboxNone
	}

	if lines := first.Lines(); lines != nil && lines.Len() > 0 {
		seg := lines.At(0)
		if !checkboxMarkerRegexp.Match(seg.Value(source)) {
			return tasklist.CheckboxNone
		}
	}

	if cb.IsChecked {
		return tasklist.CheckboxChecked
	}

	return tasklist.CheckboxUnchecked
}

// blockSpan はブロック要素と子孫ブロックが占めるソース上の範囲を返す
func blockSpan(n ast.Node) (start, stop int, ok bool) {
	if n.Type() != ast.TypeBlock {
		return 0, 0, false
	}

	if lines := n.Lines(); lines != nil && lines.Len() > 0 {
		start, stop, ok = lines.At(0).Start, lines.At(lines.Len()-1).Stop, true
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		cStart, cStop, cOK := blockSpan(c)
		if !cOK {
			continue
		}
		if !ok || cStart < start {
			start = cStart
		}
		if !ok || cStop > stop {
			stop = cStop
		}
		ok = true
	}

	return start, stop, ok
}
