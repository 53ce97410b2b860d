package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	v1 "github.com/poststats-lab/project-poststats/internal/api/v1"
	"github.com/poststats-lab/project-poststats/internal/core/statistics"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanPostRow scans a database row into a Post.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
// Timestamps come back in the session TimeZone; they are returned in UTC.
func scanPostRow(row scanner) (*v1.Post, error) {
	var post v1.Post
	var authorName, text, postType sql.NullString

	err := row.Scan(
		&post.ID,
		&post.AuthorID,
		&authorName,
		&text,
		&postType,
		&post.CreatedTime,
		&post.IngestedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan post row: %w", err)
	}

	post.AuthorName = authorName.String
	post.Text = text.String
	post.Type = postType.String
	post.CreatedTime = post.CreatedTime.UTC()
	post.IngestedAt = post.IngestedAt.UTC()
	return &post, nil
}

// scanPosts drains rows into a slice.
func scanPosts(rows *sql.Rows) ([]*v1.Post, error) {
	var posts []*v1.Post
	for rows.Next() {
		post, err := scanPostRow(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}

// marshalResult encodes a result tree for the JSONB result column.
func marshalResult(result *statistics.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("result must not be nil")
	}
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return data, nil
}

func unmarshalResult(data []byte) (*statistics.Result, error) {
	var result statistics.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}
	return &result, nil
}
