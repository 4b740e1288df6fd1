package domain

import "errors"

var (
	// ErrNotFound はリソースが見つからない場合に返す
	ErrNotFound = errors.New("not found")
	// ErrNotValid は入力が不正な場合に返す
	ErrNotValid = errors.New("not valid")
)

// TaskSet はテキストから抽出したチェックリストの集合
// 各リストは文書内の出現順を保ち、重複も残す
type TaskSet struct {
	Completed   []string // チェック済みタスクのラベル
	Uncompleted []string // 未チェックタスクのラベル
}

// NewTaskSet は空のTaskSetを作成する
func NewTaskSet() TaskSet {
	return TaskSet{
		Completed:   []string{},
		Uncompleted: []string{},
	}
}

// Append は other のタスクを末尾に連結した新しいTaskSetを返す
func (t TaskSet) Append(other TaskSet) TaskSet {
	completed := make([]string, 0, len(t.Completed)+len(other.Completed))
	completed = append(completed, t.Completed...)
	completed = append(completed, other.Completed...)

	uncompleted := make([]string, 0, len(t.Uncompleted)+len(other.Uncompleted))
	uncompleted = append(uncompleted, t.Uncompleted...)
	uncompleted = append(uncompleted, other.Uncompleted...)

	return TaskSet{
		Completed:   completed,
		Uncompleted: uncompleted,
	}
}

// IsComplete は未完了タスクが無いかどうかを返す
func (t TaskSet) IsComplete() bool {
	return len(t.Uncompleted) == 0
}

// Total はタスクの総数を返す
func (t TaskSet) Total() int {
	return len(t.Completed) + len(t.Uncompleted)
}

// Empty はタスクが1つも無いかどうかを返す
func (t TaskSet) Empty() bool {
	return t.Total() == 0
}

// Source はタスクを含むテキスト（PR本文やコメント1件）
type Source struct {
	Body        string // 本文
	CreatedAt   string // 作成日時 (ISO-8601)
	SubmittedAt string // レビュー送信日時 (ISO-8601)
}

// SortKey は並び替えに使う時刻を返す
// CreatedAt が無ければ SubmittedAt を使う
func (s Source) SortKey() string {
	if s.CreatedAt != "" {
		return s.CreatedAt
	}
	return s.SubmittedAt
}

// PullRequest はチェック対象のPull Request
type PullRequest struct {
	RepositoryID string // リポジトリのNode ID
	Number       int
	Body         string
	HeadSHA      string // チェックを付けるコミット
}
