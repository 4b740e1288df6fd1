package github

import (
	"context"
	"fmt"

	"github.com/shurcooL/githubv4"

	"github.com/tkc/tasklist-checker/internal/domain"
)

// pageInfo はカーソルページングの情報
type pageInfo struct {
	EndCursor   githubv4.String
	HasNextPage bool
}

// GetPullRequest は指定番号のPull Requestを取得する
func (c *Client) GetPullRequest(ctx context.Context, number int) (*domain.PullRequest, error) {
	var query struct {
		Repository struct {
			ID          string
			PullRequest struct {
				Number     int
				Body       string
				HeadRefOid string
			} `graphql:"pullRequest(number: $number)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}

	variables := c.repositoryVariables()
	variables["number"] = githubv4.Int(number)

	if err := c.gql.Query(ctx, &query, variables); err != nil {
		return nil, wrapError("failed to get pull request", err)
	}

	pr := query.Repository.PullRequest
	if pr.Number == 0 {
		return nil, fmt.Errorf("pull request #%d: %w", number, domain.ErrNotFound)
	}

	return &domain.PullRequest{
		RepositoryID: query.Repository.ID,
		Number:       pr.Number,
		Body:         pr.Body,
		HeadSHA:      pr.HeadRefOid,
	}, nil
}

// ListIssueComments はPull Requestの会話コメントを取得する
func (c *Client) ListIssueComments(ctx context.Context, number int) ([]domain.Source, error) {
	type pageQuery struct {
		Repository struct {
			PullRequest struct {
				Comments struct {
					Nodes []struct {
						Body      string
						CreatedAt githubv4.DateTime
					}
					PageInfo pageInfo
				} `graphql:"comments(first: $first, after: $cursor)"`
			} `graphql:"pullRequest(number: $number)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}

	variables := c.pageVariables(number)

	var sources []domain.Source
	for {
		var query pageQuery
		if err := c.gql.Query(ctx, &query, variables); err != nil {
			return nil, wrapError("failed to list comments", err)
		}

		comments := query.Repository.PullRequest.Comments
		for _, n := range comments.Nodes {
			sources = append(sources, domain.Source{
				Body:      n.Body,
				CreatedAt: formatTime(n.CreatedAt.Time),
			})
		}

		if !comments.PageInfo.HasNextPage {
			return sources, nil
		}
		variables["cursor"] = githubv4.NewString(comments.PageInfo.EndCursor)
	}
}

// ListReviews はレビューの本文を取得する
// レビューは送信日時しか持たない（保留中のレビューは送信日時も無い）
func (c *Client) ListReviews(ctx context.Context, number int) ([]domain.Source, error) {
	type pageQuery struct {
		Repository struct {
			PullRequest struct {
				Reviews struct {
					Nodes []struct {
						Body        string
						SubmittedAt *githubv4.DateTime
					}
					PageInfo pageInfo
				} `graphql:"reviews(first: $first, after: $cursor)"`
			} `graphql:"pullRequest(number: $number)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}

	variables := c.pageVariables(number)

	var sources []domain.Source
	for {
		var query pageQuery
		if err := c.gql.Query(ctx, &query, variables); err != nil {
			return nil, wrapError("failed to list reviews", err)
		}

		reviews := query.Repository.PullRequest.Reviews
		for _, n := range reviews.Nodes {
			s := domain.Source{Body: n.Body}
			if n.SubmittedAt != nil {
				s.SubmittedAt = formatTime(n.SubmittedAt.Time)
			}
			sources = append(sources, s)
		}

		if !reviews.PageInfo.HasNextPage {
			return sources, nil
		}
		variables["cursor"] = githubv4.NewString(reviews.PageInfo.EndCursor)
	}
}

// ListReviewComments は差分に付いたレビューコメントを取得する
// スレッド単位でページングし、1スレッドにつき最大100件まで読む
func (c *Client) ListReviewComments(ctx context.Context, number int) ([]domain.Source, error) {
	type pageQuery struct {
		Repository struct {
			PullRequest struct {
				ReviewThreads struct {
					Nodes []struct {
						Comments struct {
							Nodes []struct {
								Body      string
								CreatedAt githubv4.DateTime
							}
						} `graphql:"comments(first: 100)"`
					}
					PageInfo pageInfo
				} `graphql:"reviewThreads(first: $first, after: $cursor)"`
			} `graphql:"pullRequest(number: $number)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}

	variables := c.pageVariables(number)

	var sources []domain.Source
	for {
		var query pageQuery
		if err := c.gql.Query(ctx, &query, variables); err != nil {
			return nil, wrapError("failed to list review comments", err)
		}

		threads := query.Repository.PullRequest.ReviewThreads
		for _, thread := range threads.Nodes {
			for _, n := range thread.Comments.Nodes {
				sources = append(sources, domain.Source{
					Body:      n.Body,
					CreatedAt: formatTime(n.CreatedAt.Time),
				})
			}
		}

		if !threads.PageInfo.HasNextPage {
			return sources, nil
		}
		variables["cursor"] = githubv4.NewString(threads.PageInfo.EndCursor)
	}
}

func (c *Client) pageVariables(number int) map[string]interface{} {
	variables := c.repositoryVariables()
	variables["number"] = githubv4.Int(number)
	variables["first"] = githubv4.Int(pageSize)
	variables["cursor"] = (*githubv4.String)(nil) // 最初のページ
	return variables
}
