package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/itchan-dev/minichan/internal/domain"
	internal_errors "github.com/itchan-dev/minichan/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockThreadStorage mocks the ThreadStorage interface.
type MockThreadStorage struct {
	createThreadFunc func(data domain.ThreadCreationData) (domain.ThreadId, domain.PostId, error)
	getThreadFunc    func(board domain.BoardName, id domain.ThreadId) (domain.Thread, error)
}

func (m *MockThreadStorage) CreateThread(data domain.ThreadCreationData) (domain.ThreadId, domain.PostId, error) {
	if m.createThreadFunc != nil {
		return m.createThreadFunc(data)
	}
	return 1, 1, nil
}

func (m *MockThreadStorage) GetThread(board domain.BoardName, id domain.ThreadId) (domain.Thread, error) {
	if m.getThreadFunc != nil {
		return m.getThreadFunc(board, id)
	}
	return domain.Thread{}, nil
}

func TestThreadCreate(t *testing.T) {
	t.Run("empty thread rejected with validation error", func(t *testing.T) {
		storageCalled := false
		mockStorage := &MockThreadStorage{
			createThreadFunc: func(data domain.ThreadCreationData) (domain.ThreadId, domain.PostId, error) {
				storageCalled = true
				return 1, 1, nil
			},
		}

		s := NewThread(mockStorage)
		_, _, err := s.Create(domain.ThreadCreationData{Board: "b"})

		var statusErr *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
		assert.Equal(t, "Thread must have subject, comment, or image", statusErr.Message)
		assert.False(t, storageCalled, "nothing may be written for an empty thread")
	})

	t.Run("whitespace-only content is still empty", func(t *testing.T) {
		s := NewThread(&MockThreadStorage{})
		_, _, err := s.Create(domain.ThreadCreationData{
			Board:   "b",
			Subject: "   ",
			OpPost:  domain.PostCreationData{Comment: "\n\t "},
		})
		assert.Error(t, err)
	})

	t.Run("comment alone is enough, defaults applied", func(t *testing.T) {
		var got domain.ThreadCreationData
		mockStorage := &MockThreadStorage{
			createThreadFunc: func(data domain.ThreadCreationData) (domain.ThreadId, domain.PostId, error) {
				got = data
				return 7, 9, nil
			},
		}

		s := NewThread(mockStorage)
		threadID, postID, err := s.Create(domain.ThreadCreationData{
			Board:  "b",
			OpPost: domain.PostCreationData{Comment: "hello"},
		})

		require.NoError(t, err)
		assert.Equal(t, domain.ThreadId(7), threadID)
		assert.Equal(t, domain.PostId(9), postID)
		assert.Equal(t, domain.DefaultSubject, got.Subject)
		assert.Equal(t, domain.AnonymousName, got.OpPost.Name)
		assert.Equal(t, "hello", got.OpPost.Comment)
	})

	t.Run("attachment alone is enough", func(t *testing.T) {
		mockStorage := &MockThreadStorage{}
		s := NewThread(mockStorage)

		_, _, err := s.Create(domain.ThreadCreationData{
			Board:  "b",
			OpPost: domain.PostCreationData{Attachment: &domain.Attachment{Filename: "ab12cd34.png", FileSize: 10}},
		})
		assert.NoError(t, err)
	})

	t.Run("provided subject and name survive", func(t *testing.T) {
		var got domain.ThreadCreationData
		mockStorage := &MockThreadStorage{
			createThreadFunc: func(data domain.ThreadCreationData) (domain.ThreadId, domain.PostId, error) {
				got = data
				return 1, 1, nil
			},
		}

		s := NewThread(mockStorage)
		_, _, err := s.Create(domain.ThreadCreationData{
			Board:   "b",
			Subject: "greetings",
			OpPost:  domain.PostCreationData{Name: "gopher", Comment: "hi"},
		})

		require.NoError(t, err)
		assert.Equal(t, "greetings", got.Subject)
		assert.Equal(t, "gopher", got.OpPost.Name)
	})

	t.Run("storage error propagates", func(t *testing.T) {
		mockStorage := &MockThreadStorage{
			createThreadFunc: func(data domain.ThreadCreationData) (domain.ThreadId, domain.PostId, error) {
				return 0, 0, errors.New("storage error")
			},
		}

		s := NewThread(mockStorage)
		_, _, err := s.Create(domain.ThreadCreationData{Board: "b", OpPost: domain.PostCreationData{Comment: "x"}})
		assert.Error(t, err)
	})
}

func TestThreadGet(t *testing.T) {
	mockStorage := &MockThreadStorage{
		getThreadFunc: func(board domain.BoardName, id domain.ThreadId) (domain.Thread, error) {
			if id == 404 {
				return domain.Thread{}, &internal_errors.ErrorWithStatusCode{Message: "Thread not found", StatusCode: http.StatusNotFound}
			}
			return domain.Thread{ThreadMetadata: domain.ThreadMetadata{Id: id, Board: board}}, nil
		},
	}

	s := NewThread(mockStorage)

	thread, err := s.Get("b", 5)
	require.NoError(t, err)
	assert.Equal(t, domain.ThreadId(5), thread.Id)

	_, err = s.Get("b", 404)
	assert.Error(t, err)
}
