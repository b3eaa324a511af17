package youtube

import "github.com/jonesrussell/comment-pulse/internal/domain"

// Wire types for the subset of the Data API v3 schema this client
// reads. Fields not listed here are ignored by the JSON decoder.

type commentThreadsResponse struct {
	NextPageToken string          `json:"nextPageToken"`
	Items         []commentThread `json:"items"`
}

type commentThread struct {
	ID      string `json:"id"`
	Snippet struct {
		TotalReplyCount int     `json:"totalReplyCount"`
		TopLevelComment comment `json:"topLevelComment"`
	} `json:"snippet"`
}

type commentsResponse struct {
	Items []comment `json:"items"`
}

type comment struct {
	ID      string `json:"id"`
	Snippet struct {
		TextDisplay       string `json:"textDisplay"`
		AuthorDisplayName string `json:"authorDisplayName"`
		LikeCount         int    `json:"likeCount"`
		PublishedAt       string `json:"publishedAt"`
	} `json:"snippet"`
}

type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

func (t *commentThread) toRawComment() domain.RawComment {
	raw := t.Snippet.TopLevelComment.toRawComment(false)
	raw.ReplyCount = t.Snippet.TotalReplyCount
	return raw
}

func (c *comment) toRawComment(isReply bool) domain.RawComment {
	return domain.RawComment{
		ID:        c.ID,
		Text:      c.Snippet.TextDisplay,
		Author:    c.Snippet.AuthorDisplayName,
		Likes:     c.Snippet.LikeCount,
		Timestamp: c.Snippet.PublishedAt,
		IsReply:   isReply,
	}
}
