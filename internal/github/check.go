package github

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/shurcooL/githubv4"

	"github.com/tkc/tasklist-checker/internal/domain"
)

// maxOutputText はチェックランの本文の上限文字数
const maxOutputText = 65535

// CreateCheckRun はPRのHEADコミットにチェックランを作成し、そのURLを返す
func (c *Client) CreateCheckRun(ctx context.Context, check domain.CheckRun) (string, error) {
	var mutation struct {
		CreateCheckRun struct {
			CheckRun struct {
				ID  string
				URL string `graphql:"url"`
			}
		} `graphql:"createCheckRun(input: $input)"`
	}

	input, err := checkRunInput(check)
	if err != nil {
		return "", err
	}

	if err := c.gql.Mutate(ctx, &mutation, input, nil); err != nil {
		return "", wrapError("failed to create check run", err)
	}

	return mutation.CreateCheckRun.CheckRun.URL, nil
}

func checkRunInput(check domain.CheckRun) (githubv4.CreateCheckRunInput, error) {
	status, err := checkStatus(check.Status)
	if err != nil {
		return githubv4.CreateCheckRunInput{}, err
	}

	input := githubv4.CreateCheckRunInput{
		RepositoryID: githubv4.ID(check.RepositoryID),
		Name:         githubv4.String(check.Name),
		HeadSha:      githubv4.GitObjectID(check.HeadSHA),
		Status:       &status,
		StartedAt:    &githubv4.DateTime{Time: check.StartedAt},
		Output: &githubv4.CheckRunOutput{
			Title:   githubv4.String(check.Output.Title),
			Summary: githubv4.String(check.Output.Summary),
			Text:    githubv4.NewString(githubv4.String(truncate(check.Output.Text, maxOutputText))),
		},
	}

	if check.ExternalID != "" {
		input.ExternalID = githubv4.NewString(githubv4.String(check.ExternalID))
	}

	if check.Conclusion != domain.CheckConclusionNone {
		conclusion, err := checkConclusion(check.Conclusion)
		if err != nil {
			return githubv4.CreateCheckRunInput{}, err
		}
		input.Conclusion = &conclusion
	}

	if check.CompletedAt != nil {
		input.CompletedAt = &githubv4.DateTime{Time: *check.CompletedAt}
	}

	return input, nil
}

func checkStatus(s domain.CheckStatus) (githubv4.RequestableCheckStatusState, error) {
	switch s {
	case domain.CheckStatusInProgress:
		return githubv4.RequestableCheckStatusStateInProgress, nil
	case domain.CheckStatusCompleted:
		return githubv4.RequestableCheckStatusStateCompleted, nil
	}
	return "", fmt.Errorf("unknown check status %q: %w", s, domain.ErrNotValid)
}

func checkConclusion(c domain.CheckConclusion) (githubv4.CheckConclusionState, error) {
	switch c {
	case domain.CheckConclusionSuccess:
		return githubv4.CheckConclusionStateSuccess, nil
	case domain.CheckConclusionFailure:
		return githubv4.CheckConclusionStateFailure, nil
	}
	return "", fmt.Errorf("unknown check conclusion %q: %w", c, domain.ErrNotValid)
}

// truncate は文字数が max を超える場合に末尾を省略する
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-3]) + "..."
}
