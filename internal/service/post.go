package service

import (
	"strings"

	"github.com/itchan-dev/minichan/internal/domain"
)

type PostService interface {
	Create(threadID domain.ThreadId, data domain.PostCreationData) (domain.Post, error)
}

type Post struct {
	storage PostStorage
}

type PostStorage interface {
	CreatePost(threadID domain.ThreadId, data domain.PostCreationData) (domain.Post, error)
}

func NewPost(storage PostStorage) PostService {
	return &Post{storage}
}

// Create appends a reply. Lock and existence checks happen in storage,
// inside the same transaction that assigns the post number.
func (p *Post) Create(threadID domain.ThreadId, data domain.PostCreationData) (domain.Post, error) {
	return p.storage.CreatePost(threadID, withPostDefaults(data))
}

func withPostDefaults(data domain.PostCreationData) domain.PostCreationData {
	data.Name = strings.TrimSpace(data.Name)
	if data.Name == "" {
		data.Name = domain.AnonymousName
	}
	return data
}
