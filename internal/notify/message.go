package notify

import "fmt"

const completeTitle = "✅ tasklist-checker: All tasks completed"

func completeMessage(repo string, number, total int) string {
	plural := ""
	if total > 1 {
		plural = "s"
	}
	return fmt.Sprintf("%s#%d (%d task%s)", repo, number, total, plural)
}
