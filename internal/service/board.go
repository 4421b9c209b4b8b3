package service

import (
	"net/http"
	"strings"

	"github.com/itchan-dev/minichan/internal/domain"
	internal_errors "github.com/itchan-dev/minichan/internal/errors"

	"github.com/go-playground/validator/v10"
)

// to mock service in tests
type BoardService interface {
	Create(data domain.BoardCreationData) (domain.Board, error)
	Get(name domain.BoardName) (domain.Board, error)
	GetAll() ([]domain.Board, error)
	GetPage(name domain.BoardName, page int) (domain.BoardPage, error)
	Delete(name domain.BoardName) error
}

type Board struct {
	storage  BoardStorage
	validate *validator.Validate
}

type BoardStorage interface {
	CreateBoard(data domain.BoardCreationData) (domain.Board, error)
	GetBoard(name domain.BoardName) (domain.Board, error)
	GetBoards() ([]domain.Board, error)
	GetBoardPage(name domain.BoardName, page int) (domain.BoardPage, error)
	DeleteBoard(name domain.BoardName) error
}

func NewBoard(storage BoardStorage) BoardService {
	return &Board{storage, validator.New(validator.WithRequiredStructEnabled())}
}

func (b *Board) Create(data domain.BoardCreationData) (domain.Board, error) {
	// Routes only match lowercase slugs, so the slug is stored lowercased.
	data.Name = strings.ToLower(strings.TrimSpace(data.Name))
	if err := b.validate.Struct(data); err != nil {
		return domain.Board{}, &internal_errors.ErrorWithStatusCode{Message: "Board needs a short name and a title", StatusCode: http.StatusBadRequest}
	}
	return b.storage.CreateBoard(data)
}

func (b *Board) Get(name domain.BoardName) (domain.Board, error) {
	return b.storage.GetBoard(name)
}

func (b *Board) GetAll() ([]domain.Board, error) {
	return b.storage.GetBoards()
}

func (b *Board) GetPage(name domain.BoardName, page int) (domain.BoardPage, error) {
	page = max(1, page)
	return b.storage.GetBoardPage(name, page)
}

func (b *Board) Delete(name domain.BoardName) error {
	return b.storage.DeleteBoard(name)
}
