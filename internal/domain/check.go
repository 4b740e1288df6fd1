package domain

import (
	"fmt"
	"time"
)

// DefaultCheckName はチェック名のデフォルト値
const DefaultCheckName = "Task Completed Checker"

// NoTaskListText はタスクが1つも無い場合の出力
const NoTaskListText = "No task list"

// CheckStatus はチェックランの状態
type CheckStatus string

const (
	CheckStatusInProgress CheckStatus = "in_progress"
	CheckStatusCompleted  CheckStatus = "completed"
)

// CheckConclusion はチェックランの結論
type CheckConclusion string

const (
	CheckConclusionNone    CheckConclusion = ""
	CheckConclusionSuccess CheckConclusion = "success"
	CheckConclusionFailure CheckConclusion = "failure"
)

// CheckOutput はチェックランに表示する内容
type CheckOutput struct {
	Title   string
	Summary string
	Text    string
}

// CheckRun はPRのHEADに付けるチェックラン
type CheckRun struct {
	Name         string
	RepositoryID string
	HeadSHA      string
	ExternalID   string // 実行ごとのID
	Status       CheckStatus
	Conclusion   CheckConclusion
	StartedAt    time.Time
	CompletedAt  *time.Time // Status が completed の場合のみ
	Output       CheckOutput
}

// CheckOptions はチェック結果の判定方法
type CheckOptions struct {
	Name               string
	UncompletedAsError bool // 未完了タスクを失敗として扱う
	StartedAt          time.Time
	Now                time.Time
}

// NewCheckRun はタスクの集計結果からチェックランを組み立てる
// report は描画済みのタスク一覧
func NewCheckRun(pr PullRequest, tasks TaskSet, report string, opts CheckOptions) CheckRun {
	name := opts.Name
	if name == "" {
		name = DefaultCheckName
	}

	check := CheckRun{
		Name:         name,
		RepositoryID: pr.RepositoryID,
		HeadSHA:      pr.HeadSHA,
		StartedAt:    opts.StartedAt,
		Output: CheckOutput{
			Title:   name,
			Summary: Summary(tasks),
			Text:    report,
		},
	}
	if tasks.Empty() {
		check.Output.Text = NoTaskListText
	}

	completedAt := opts.Now
	switch {
	case tasks.IsComplete():
		check.Status = CheckStatusCompleted
		check.Conclusion = CheckConclusionSuccess
		check.CompletedAt = &completedAt
	case opts.UncompletedAsError:
		check.Status = CheckStatusCompleted
		check.Conclusion = CheckConclusionFailure
		check.CompletedAt = &completedAt
	default:
		// 未完了タスクが残っている間は保留にする
		check.Status = CheckStatusInProgress
	}

	return check
}

// Summary はチェックランの概要を返す
func Summary(tasks TaskSet) string {
	switch {
	case tasks.Empty():
		return NoTaskListText
	case tasks.IsComplete():
		return "All tasks are completed!"
	}

	uncompleted := len(tasks.Uncompleted)
	plural := ""
	if uncompleted > 1 {
		plural = "s"
	}
	return fmt.Sprintf("%d/%d task%s still to be completed!", uncompleted, tasks.Total(), plural)
}
