//go:build darwin

package notify

import (
	"fmt"
	"os/exec"
	"strings"
)

var appleScriptEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Send sends a macOS notification using osascript
func Send(title, message string) error {
	script := fmt.Sprintf(`display notification "%s" with title "%s" sound name "Glass"`,
		appleScriptEscaper.Replace(message), appleScriptEscaper.Replace(title))
	cmd := exec.Command("osascript", "-e", script)
	return cmd.Run()
}

// SendComplete notifies that every task of a pull request is done
func SendComplete(repo string, number, total int) error {
	return Send(completeTitle, completeMessage(repo, number, total))
}
