package postgres

// SQL queries for post storage operations

const (
	// querySavePost inserts a post keyed by its feed id.
	// ON CONFLICT DO NOTHING returns no rows (sql.ErrNoRows) for duplicates.
	querySavePost = `
		INSERT INTO posts (
			id, author_id, author_name, text, type,
			created_time, ingested_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING
		RETURNING id
	`

	// queryRetrievePostsBetween fetches every post in an inclusive created_time range.
	// Ordering by (created_time, id) keeps month first-seen order deterministic.
	queryRetrievePostsBetween = `
		SELECT
			id, author_id, author_name, text, type,
			created_time, ingested_at
		FROM posts
		WHERE created_time >= $1
		  AND created_time <= $2
		ORDER BY created_time ASC, id ASC
	`

	// queryRetrieveAuthorPosts fetches one author's posts, newest first.
	queryRetrieveAuthorPosts = `
		SELECT
			id, author_id, author_name, text, type,
			created_time, ingested_at
		FROM posts
		WHERE author_id = $1
		  AND created_time >= $2
		  AND created_time <= $3
		ORDER BY created_time DESC, id DESC
		LIMIT $4
	`
)
