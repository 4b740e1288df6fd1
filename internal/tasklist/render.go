package tasklist

import (
	"strings"

	"github.com/tkc/tasklist-checker/internal/domain"
)

const (
	completedHeader   = "## :white_check_mark: Completed Tasks\n"
	uncompletedHeader = "## :x: Uncompleted Tasks\n"
)

// Render はTaskSetをMarkdownのレポートに整形する
// タスクの無いセクションは出力しないので、空のTaskSetは "" になる
func Render(tasks domain.TaskSet) string {
	var b strings.Builder

	if len(tasks.Completed) > 0 {
		b.WriteString(completedHeader)
		for _, label := range tasks.Completed {
			b.WriteString("- [x] ")
			b.WriteString(label)
			b.WriteString("\n")
		}
	}

	if len(tasks.Uncompleted) > 0 {
		b.WriteString(uncompletedHeader)
		for _, label := range tasks.Uncompleted {
			b.WriteString("- [ ] ")
			b.WriteString(label)
			b.WriteString("\n")
		}
	}

	return b.String()
}
