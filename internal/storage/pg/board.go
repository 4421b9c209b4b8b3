package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/itchan-dev/minichan/internal/domain"
	internal_errors "github.com/itchan-dev/minichan/internal/errors"
)

func (s *Storage) CreateBoard(data domain.BoardCreationData) (domain.Board, error) {
	board := domain.Board{Name: data.Name, Title: data.Title, Description: data.Description}
	err := s.db.QueryRow(`
	INSERT INTO boards (name, title, description)
	VALUES ($1, $2, $3)
	RETURNING id, created_at
	`, data.Name, data.Title, data.Description).Scan(&board.Id, &board.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Board{}, &internal_errors.ErrorWithStatusCode{Message: "Board already exists", StatusCode: http.StatusConflict}
		}
		return domain.Board{}, fmt.Errorf("failed to insert board: %w", err)
	}
	return board, nil
}

func (s *Storage) GetBoard(name domain.BoardName) (domain.Board, error) {
	var board domain.Board
	err := s.db.QueryRow(`
	SELECT id, name, title, description, created_at
	FROM boards
	WHERE name = $1
	`, name).Scan(&board.Id, &board.Name, &board.Title, &board.Description, &board.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Board{}, &internal_errors.ErrorWithStatusCode{Message: "Board not found", StatusCode: http.StatusNotFound}
		}
		return domain.Board{}, fmt.Errorf("failed to fetch board: %w", err)
	}
	return board, nil
}

func (s *Storage) GetBoards() ([]domain.Board, error) {
	rows, err := s.db.Query(`
	SELECT id, name, title, description, created_at
	FROM boards
	ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch boards: %w", err)
	}
	defer rows.Close()

	var boards []domain.Board
	for rows.Next() {
		var board domain.Board
		if err := rows.Scan(&board.Id, &board.Name, &board.Title, &board.Description, &board.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan board: %w", err)
		}
		boards = append(boards, board)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return boards, nil
}

// DeleteBoard removes the board and everything under it. The cascade is
// spelled out child-first so the plain foreign keys never block it.
func (s *Storage) DeleteBoard(name domain.BoardName) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // The rollback will be ignored if the tx has been committed later in the function.

	if _, err := tx.Exec(`
	DELETE FROM posts
	USING threads, boards
	WHERE posts.thread_id = threads.id AND threads.board_id = boards.id AND boards.name = $1
	`, name); err != nil {
		return fmt.Errorf("failed to delete posts: %w", err)
	}

	if _, err := tx.Exec(`
	DELETE FROM threads
	USING boards
	WHERE threads.board_id = boards.id AND boards.name = $1
	`, name); err != nil {
		return fmt.Errorf("failed to delete threads: %w", err)
	}

	result, err := tx.Exec("DELETE FROM boards WHERE name = $1", name)
	if err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "Board not found", StatusCode: http.StatusNotFound}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
