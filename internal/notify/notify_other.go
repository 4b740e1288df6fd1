//go:build !darwin

package notify

// Send is a no-op on non-darwin platforms
func Send(title, message string) error {
	return nil
}

// SendComplete is a no-op on non-darwin platforms
func SendComplete(repo string, number, total int) error {
	return nil
}
