package pg

import (
	"fmt"

	"github.com/itchan-dev/minichan/internal/domain"

	"github.com/lib/pq"
)

// GetBoardPage returns one listing window of a board's threads: pinned
// threads first, then by bump recency. Each thread carries its earliest
// preview posts; PostCount on the metadata holds the real total.
//
// The query fetches one row past the page size to compute HasMore.
// Out-of-range pages come back with an empty thread list.
func (s *Storage) GetBoardPage(name domain.BoardName, page int) (domain.BoardPage, error) {
	board, err := s.GetBoard(name)
	if err != nil {
		return domain.BoardPage{}, err
	}

	perPage := s.cfg.ThreadsPerPage
	offset := (page - 1) * perPage

	rows, err := s.db.Query(`
	SELECT t.id, b.name, t.subject, t.created_at, t.bumped_at, t.is_pinned, t.is_locked, t.post_count
	FROM threads t
	JOIN boards b ON b.id = t.board_id
	WHERE b.name = $1
	ORDER BY t.is_pinned DESC, t.bumped_at DESC, t.id DESC
	LIMIT $2 OFFSET $3
	`, name, perPage+1, offset)
	if err != nil {
		return domain.BoardPage{}, fmt.Errorf("failed to fetch threads: %w", err)
	}
	defer rows.Close()

	var threads []*domain.Thread
	for rows.Next() {
		var metadata domain.ThreadMetadata
		if err := rows.Scan(
			&metadata.Id, &metadata.Board, &metadata.Subject, &metadata.CreatedAt,
			&metadata.BumpedAt, &metadata.IsPinned, &metadata.IsLocked, &metadata.PostCount,
		); err != nil {
			return domain.BoardPage{}, fmt.Errorf("failed to scan thread: %w", err)
		}
		threads = append(threads, &domain.Thread{ThreadMetadata: metadata})
	}
	if err := rows.Err(); err != nil {
		return domain.BoardPage{}, fmt.Errorf("rows iteration error: %w", err)
	}

	hasMore := len(threads) > perPage
	if hasMore {
		threads = threads[:perPage]
	}

	if err := s.attachPreviews(threads); err != nil {
		return domain.BoardPage{}, err
	}

	return domain.BoardPage{Board: board, Threads: threads, Page: page, HasMore: hasMore}, nil
}

// attachPreviews loads the earliest preview posts for every thread on
// the page in a single query. The OP is always the earliest post, so it
// is always part of the preview.
func (s *Storage) attachPreviews(threads []*domain.Thread) error {
	if len(threads) == 0 {
		return nil
	}

	byID := make(map[domain.ThreadId]*domain.Thread, len(threads))
	ids := make([]int64, len(threads))
	for i, thread := range threads {
		byID[thread.Id] = thread
		ids[i] = thread.Id
	}

	rows, err := s.db.Query(`
	SELECT id, thread_id, post_number, name, email, subject, comment,
	       filename, original_filename, file_size, created_at
	FROM (
		SELECT p.*, ROW_NUMBER() OVER (PARTITION BY thread_id ORDER BY created_at, id) AS rn
		FROM posts p
		WHERE thread_id = ANY($1)
	) ranked
	WHERE rn <= $2
	ORDER BY thread_id, created_at, id
	`, pq.Array(ids), s.cfg.PreviewPosts)
	if err != nil {
		return fmt.Errorf("failed to fetch preview posts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return err
		}
		if thread, ok := byID[post.ThreadId]; ok {
			thread.Posts = append(thread.Posts, post)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("rows iteration error: %w", err)
	}
	return nil
}
