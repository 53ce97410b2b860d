package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	v1 "github.com/poststats-lab/project-poststats/internal/api/v1"
	"github.com/poststats-lab/project-poststats/internal/core/storage"
	"github.com/stretchr/testify/require"
)

func TestAdapter_SavePost(t *testing.T) {
	now := time.Date(2018, 8, 11, 6, 38, 54, 0, time.UTC)

	tests := []struct {
		name       string
		post       *v1.Post
		mockResult func(mock sqlmock.Sqlmock, post *v1.Post)
		assertions func(t *testing.T, err error)
	}{
		{
			name: "success",
			post: &v1.Post{
				ID:          "post-1",
				AuthorID:    "user_1",
				AuthorName:  "Alice",
				Text:        "hello",
				Type:        "status",
				CreatedTime: now,
				IngestedAt:  now,
			},
			mockResult: func(mock sqlmock.Sqlmock, post *v1.Post) {
				mock.ExpectQuery(regexp.QuoteMeta(querySavePost)).
					WithArgs(
						post.ID,
						post.AuthorID,
						post.AuthorName,
						post.Text,
						post.Type,
						post.CreatedTime,
						post.IngestedAt,
					).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(post.ID))
			},
			assertions: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "duplicate maps to ErrDuplicate",
			post: &v1.Post{
				ID:          "post-dup",
				AuthorID:    "user_1",
				CreatedTime: now,
				IngestedAt:  now,
			},
			mockResult: func(mock sqlmock.Sqlmock, post *v1.Post) {
				mock.ExpectQuery(regexp.QuoteMeta(querySavePost)).
					WithArgs(post.ID, post.AuthorID, "", "", "", post.CreatedTime, post.IngestedAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			assertions: func(t *testing.T, err error) {
				require.ErrorIs(t, err, storage.ErrDuplicate)
			},
		},
		{
			name: "driver error is wrapped",
			post: &v1.Post{
				ID:          "post-err",
				AuthorID:    "user_1",
				CreatedTime: now,
				IngestedAt:  now,
			},
			mockResult: func(mock sqlmock.Sqlmock, post *v1.Post) {
				mock.ExpectQuery(regexp.QuoteMeta(querySavePost)).
					WillReturnError(errors.New("connection reset"))
			},
			assertions: func(t *testing.T, err error) {
				require.ErrorContains(t, err, "failed to save post")
				require.NotErrorIs(t, err, storage.ErrDuplicate)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			adapter, mock, db := newMockAdapter(t)
			defer db.Close()

			tc.mockResult(mock, tc.post)

			err := adapter.SavePost(context.Background(), tc.post)
			tc.assertions(t, err)

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAdapter_RetrievePostsBetween(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	start := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2018, 6, 30, 23, 59, 59, 0, time.UTC)
	created := time.Date(2018, 2, 3, 10, 0, 0, 0, time.UTC)
	ingested := created.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(queryRetrievePostsBetween)).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows(postRowColumns()).
			AddRow("post-1", "user_1", "Alice", "hello", "status", created, ingested).
			AddRow("post-2", "user_2", nil, nil, nil, created.Add(time.Minute), ingested),
		).RowsWillBeClosed()

	posts, err := adapter.RetrievePostsBetween(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.Equal(t, "post-1", posts[0].ID)
	require.Equal(t, "user_1", posts[0].AuthorID)
	require.Equal(t, "hello", posts[0].Text)
	require.Equal(t, created, posts[0].CreatedTime)
	require.Equal(t, "user_2", posts[1].AuthorID)
	require.Empty(t, posts[1].Text)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_RetrievePostsBetween_ReturnsUTC(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	start := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2018, 2, 28, 23, 59, 59, 0, time.UTC)

	// Session TimeZone of +02:00 pushes a late January post into February.
	plusTwo := time.FixedZone("UTC+2", 2*60*60)
	created := time.Date(2018, 2, 1, 0, 30, 0, 0, plusTwo)
	ingested := time.Date(2018, 2, 1, 1, 0, 0, 0, plusTwo)

	mock.ExpectQuery(regexp.QuoteMeta(queryRetrievePostsBetween)).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows(postRowColumns()).
			AddRow("post-1", "user_1", "Alice", "late night", "status", created, ingested),
		)

	posts, err := adapter.RetrievePostsBetween(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, time.UTC, posts[0].CreatedTime.Location())
	require.Equal(t, time.UTC, posts[0].IngestedAt.Location())
	require.True(t, created.Equal(posts[0].CreatedTime))
	require.Equal(t, time.January, posts[0].CreatedTime.Month())
	require.Equal(t, 31, posts[0].CreatedTime.Day())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_RetrievePostsBetween_QueryError(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	start := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	mock.ExpectQuery(regexp.QuoteMeta(queryRetrievePostsBetween)).
		WithArgs(start, end).
		WillReturnError(sql.ErrConnDone)

	_, err := adapter.RetrievePostsBetween(context.Background(), start, end)
	require.ErrorIs(t, err, sql.ErrConnDone)
	require.ErrorContains(t, err, "failed to query posts")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_RetrieveAuthorPosts(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	start := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	created := time.Date(2018, 3, 3, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(queryRetrieveAuthorPosts)).
		WithArgs("user_7", start, end, 50).
		WillReturnRows(sqlmock.NewRows(postRowColumns()).
			AddRow("post-9", "user_7", "Bob", "latest", "status", created, created),
		)

	posts, err := adapter.RetrieveAuthorPosts(context.Background(), "user_7", start, end, 50)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, "Bob", posts[0].AuthorName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_CloseReturnsDBCloseError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dbCloseErr := errors.New("db close failed")

	mock.ExpectPrepare(regexp.QuoteMeta(querySavePost)).WillBeClosed()
	stmtSave, err := db.Prepare(querySavePost)
	require.NoError(t, err)

	mock.ExpectPrepare(regexp.QuoteMeta(queryRetrievePostsBetween)).WillBeClosed()
	stmtBetween, err := db.Prepare(queryRetrievePostsBetween)
	require.NoError(t, err)

	mock.ExpectPrepare(regexp.QuoteMeta(queryRetrieveAuthorPosts)).WillBeClosed()
	stmtAuthor, err := db.Prepare(queryRetrieveAuthorPosts)
	require.NoError(t, err)

	mock.ExpectClose().WillReturnError(dbCloseErr)

	adapter := &Adapter{
		db:                    db,
		stmtSavePost:          stmtSave,
		stmtRetrieveBetween:   stmtBetween,
		stmtRetrieveForAuthor: stmtAuthor,
	}

	err = adapter.Close()
	require.Error(t, err)
	require.ErrorContains(t, err, "failed to close database")
	require.ErrorIs(t, err, dbCloseErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_PrepareFailsWithoutPostsTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	adapter := &Adapter{db: db}
	err = adapter.Prepare()
	require.ErrorContains(t, err, "posts table does not exist")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_PrepareStatements(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectPrepare(regexp.QuoteMeta(querySavePost))
	mock.ExpectPrepare(regexp.QuoteMeta(queryRetrievePostsBetween))
	mock.ExpectPrepare(regexp.QuoteMeta(queryRetrieveAuthorPosts))

	adapter := &Adapter{db: db}
	require.NoError(t, adapter.Prepare())
	require.NotNil(t, adapter.stmtSavePost)
	require.NotNil(t, adapter.stmtRetrieveBetween)
	require.NotNil(t, adapter.stmtRetrieveForAuthor)
	require.NoError(t, mock.ExpectationsWereMet())
}

func newMockAdapter(t *testing.T) (*Adapter, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	adapter := &Adapter{
		db:                    db,
		stmtSavePost:          mustPrepareStmt(t, db, mock, querySavePost),
		stmtRetrieveBetween:   mustPrepareStmt(t, db, mock, queryRetrievePostsBetween),
		stmtRetrieveForAuthor: mustPrepareStmt(t, db, mock, queryRetrieveAuthorPosts),
	}

	return adapter, mock, db
}

func mustPrepareStmt(t *testing.T, db *sql.DB, mock sqlmock.Sqlmock, query string) *sql.Stmt {
	t.Helper()

	mock.ExpectPrepare(regexp.QuoteMeta(query))
	stmt, err := db.Prepare(query)
	require.NoError(t, err)

	return stmt
}

func postRowColumns() []string {
	return []string{
		"id",
		"author_id",
		"author_name",
		"text",
		"type",
		"created_time",
		"ingested_at",
	}
}
