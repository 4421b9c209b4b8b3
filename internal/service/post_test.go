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

// MockPostStorage mocks the PostStorage interface.
type MockPostStorage struct {
	createPostFunc func(threadID domain.ThreadId, data domain.PostCreationData) (domain.Post, error)
}

func (m *MockPostStorage) CreatePost(threadID domain.ThreadId, data domain.PostCreationData) (domain.Post, error) {
	if m.createPostFunc != nil {
		return m.createPostFunc(threadID, data)
	}
	return domain.Post{}, nil
}

func TestPostCreate(t *testing.T) {
	t.Run("empty name defaults to Anonymous", func(t *testing.T) {
		var got domain.PostCreationData
		mockStorage := &MockPostStorage{
			createPostFunc: func(threadID domain.ThreadId, data domain.PostCreationData) (domain.Post, error) {
				got = data
				return domain.Post{ThreadId: threadID, Number: 2, Name: data.Name}, nil
			},
		}

		s := NewPost(mockStorage)
		post, err := s.Create(1, domain.PostCreationData{Comment: "reply"})

		require.NoError(t, err)
		assert.Equal(t, domain.AnonymousName, got.Name)
		assert.Equal(t, int64(2), post.Number)
	})

	t.Run("whitespace name defaults to Anonymous", func(t *testing.T) {
		var got domain.PostCreationData
		mockStorage := &MockPostStorage{
			createPostFunc: func(threadID domain.ThreadId, data domain.PostCreationData) (domain.Post, error) {
				got = data
				return domain.Post{}, nil
			},
		}

		s := NewPost(mockStorage)
		_, err := s.Create(1, domain.PostCreationData{Name: "  ", Comment: "reply"})

		require.NoError(t, err)
		assert.Equal(t, domain.AnonymousName, got.Name)
	})

	t.Run("provided name survives", func(t *testing.T) {
		var got domain.PostCreationData
		mockStorage := &MockPostStorage{
			createPostFunc: func(threadID domain.ThreadId, data domain.PostCreationData) (domain.Post, error) {
				got = data
				return domain.Post{}, nil
			},
		}

		s := NewPost(mockStorage)
		_, err := s.Create(1, domain.PostCreationData{Name: "gopher", Comment: "reply"})

		require.NoError(t, err)
		assert.Equal(t, "gopher", got.Name)
	})

	t.Run("locked error propagates unchanged", func(t *testing.T) {
		lockedErr := &internal_errors.ErrorWithStatusCode{Message: "Thread is locked", StatusCode: http.StatusLocked}
		mockStorage := &MockPostStorage{
			createPostFunc: func(threadID domain.ThreadId, data domain.PostCreationData) (domain.Post, error) {
				return domain.Post{}, lockedErr
			},
		}

		s := NewPost(mockStorage)
		_, err := s.Create(1, domain.PostCreationData{Comment: "reply"})

		var statusErr *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusLocked, statusErr.StatusCode)
	})

	t.Run("storage error propagates", func(t *testing.T) {
		mockStorage := &MockPostStorage{
			createPostFunc: func(threadID domain.ThreadId, data domain.PostCreationData) (domain.Post, error) {
				return domain.Post{}, errors.New("storage error")
			},
		}

		s := NewPost(mockStorage)
		_, err := s.Create(1, domain.PostCreationData{Comment: "reply"})
		assert.Error(t, err)
	})
}
