package tasklist

import "regexp"

var (
	ignoredRegionRegexp = regexp.MustCompile(`(?s)<!--\s*ignore-task-list-start\s*-->.*?<!--\s*ignore-task-list-end\s*-->`)
	ignoreStartRegexp   = regexp.MustCompile(`<!--\s*ignore-task-list-start\s*-->`)
)

// RemoveIgnored は ignore-task-list の開始・終了コメントで囲まれた範囲をコメントごと取り除く
// 対応する終了コメントが無い場合は開始コメント以降を全て取り除く
func RemoveIgnored(text string) string {
	text = ignoredRegionRegexp.ReplaceAllLiteralString(text, "")

	if loc := ignoreStartRegexp.FindStringIndex(text); loc != nil {
		return text[:loc[0]]
	}

	return text
}
