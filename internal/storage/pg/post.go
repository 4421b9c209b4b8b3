package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/itchan-dev/minichan/internal/domain"
	internal_errors "github.com/itchan-dev/minichan/internal/errors"
)

// CreatePost appends a reply. The thread row is locked for the whole
// transaction, so the lock check, the counter bump and the insert are
// one atomic step; concurrent replies serialize on the row and cannot
// produce duplicate numbers.
func (s *Storage) CreatePost(threadID domain.ThreadId, data domain.PostCreationData) (domain.Post, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Post{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // The rollback will be ignored if the tx has been committed later in the function.

	var locked bool
	err = tx.QueryRow("SELECT is_locked FROM threads WHERE id = $1 FOR UPDATE", threadID).Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, &internal_errors.ErrorWithStatusCode{Message: "Thread not found", StatusCode: http.StatusNotFound}
		}
		return domain.Post{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	if locked {
		return domain.Post{}, &internal_errors.ErrorWithStatusCode{Message: "Thread is locked", StatusCode: http.StatusLocked}
	}

	createdTs := time.Now().UTC().Round(time.Microsecond) // database anyway rounds to microsecond

	var number int64
	err = tx.QueryRow(`
	UPDATE threads
	SET post_count = post_count + 1, bumped_at = $1
	WHERE id = $2
	RETURNING post_count
	`, createdTs, threadID).Scan(&number)
	if err != nil {
		return domain.Post{}, fmt.Errorf("failed to bump thread: %w", err)
	}

	id, err := insertPost(tx, threadID, number, createdTs, data)
	if err != nil {
		return domain.Post{}, fmt.Errorf("failed to insert post: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Post{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return domain.Post{
		Id:         id,
		ThreadId:   threadID,
		Number:     number,
		Name:       data.Name,
		Email:      data.Email,
		Subject:    data.Subject,
		Comment:    data.Comment,
		Attachment: data.Attachment,
		CreatedAt:  createdTs,
	}, nil
}

// NextPostNumber reports the number the next post in the thread will
// get: one past the current maximum, 1 when the thread has no posts.
func (s *Storage) NextPostNumber(threadID domain.ThreadId) (int64, error) {
	var n int64
	err := s.db.QueryRow(`
	SELECT COALESCE(MAX(post_number), 0) + 1 FROM posts WHERE thread_id = $1
	`, threadID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to compute next post number: %w", err)
	}
	return n, nil
}

func insertPost(tx *sql.Tx, threadID domain.ThreadId, number int64, createdTs time.Time, data domain.PostCreationData) (domain.PostId, error) {
	var filename, originalFilename sql.NullString
	var fileSize sql.NullInt64
	if data.Attachment != nil {
		filename = sql.NullString{String: data.Attachment.Filename, Valid: true}
		originalFilename = sql.NullString{String: data.Attachment.OriginalFilename, Valid: true}
		fileSize = sql.NullInt64{Int64: data.Attachment.FileSize, Valid: true}
	}

	var id domain.PostId
	err := tx.QueryRow(`
	INSERT INTO posts (thread_id, post_number, name, email, subject, comment,
	                   filename, original_filename, file_size, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id
	`, threadID, number, data.Name, data.Email, data.Subject, data.Comment,
		filename, originalFilename, fileSize, createdTs).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// scanPost reads one posts row from either a listing or a thread query.
// The row must carry the columns in insertPost order plus id first.
func scanPost(rows *sql.Rows) (*domain.Post, error) {
	var post domain.Post
	var filename, originalFilename sql.NullString
	var fileSize sql.NullInt64
	if err := rows.Scan(
		&post.Id, &post.ThreadId, &post.Number, &post.Name, &post.Email,
		&post.Subject, &post.Comment, &filename, &originalFilename, &fileSize,
		&post.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to scan post: %w", err)
	}
	if filename.Valid {
		post.Attachment = &domain.Attachment{
			Filename:         filename.String,
			OriginalFilename: originalFilename.String,
			FileSize:         fileSize.Int64,
		}
	}
	return &post, nil
}
