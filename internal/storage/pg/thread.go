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

func (s *Storage) CreateThread(data domain.ThreadCreationData) (domain.ThreadId, domain.PostId, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // The rollback will be ignored if the tx has been committed later in the function.

	var boardID int64
	err = tx.QueryRow("SELECT id FROM boards WHERE name = $1", data.Board).Scan(&boardID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, &internal_errors.ErrorWithStatusCode{Message: "Board not found", StatusCode: http.StatusNotFound}
		}
		return 0, 0, fmt.Errorf("failed to validate board: %w", err)
	}

	createdTs := time.Now().UTC().Round(time.Microsecond) // database anyway rounds to microsecond

	// Thread and its opening post commit together: readers never see an
	// empty thread.
	var threadID domain.ThreadId
	err = tx.QueryRow(`
	INSERT INTO threads (board_id, subject, created_at, bumped_at, post_count)
	VALUES ($1, $2, $3, $3, 1)
	RETURNING id
	`, boardID, data.Subject, createdTs).Scan(&threadID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to insert thread: %w", err)
	}

	postID, err := insertPost(tx, threadID, 1, createdTs, data.OpPost)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to insert op post: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return threadID, postID, nil
}

func (s *Storage) GetThread(board domain.BoardName, id domain.ThreadId) (domain.Thread, error) {
	var metadata domain.ThreadMetadata
	err := s.db.QueryRow(`
	SELECT t.id, b.name, t.subject, t.created_at, t.bumped_at, t.is_pinned, t.is_locked, t.post_count
	FROM threads t
	JOIN boards b ON b.id = t.board_id
	WHERE b.name = $1 AND t.id = $2
	`, board, id).Scan(
		&metadata.Id, &metadata.Board, &metadata.Subject, &metadata.CreatedAt,
		&metadata.BumpedAt, &metadata.IsPinned, &metadata.IsLocked, &metadata.PostCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, &internal_errors.ErrorWithStatusCode{Message: "Thread not found", StatusCode: http.StatusNotFound}
		}
		return domain.Thread{}, fmt.Errorf("failed to fetch thread metadata: %w", err)
	}

	rows, err := s.db.Query(`
	SELECT id, thread_id, post_number, name, email, subject, comment,
	       filename, original_filename, file_size, created_at
	FROM posts
	WHERE thread_id = $1
	ORDER BY created_at, id
	`, id)
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to fetch posts: %w", err)
	}
	defer rows.Close()

	var posts []*domain.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return domain.Thread{}, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return domain.Thread{}, fmt.Errorf("rows iteration error: %w", err)
	}

	return domain.Thread{ThreadMetadata: metadata, Posts: posts}, nil
}
