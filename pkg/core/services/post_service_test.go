package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wadjakorntonsri/stacc/pkg/core/domain"
	"github.com/wadjakorntonsri/stacc/pkg/ports/mocks"
)

func TestGetAllPosts(t *testing.T) {
	repo := new(mocks.MockPostRepository)
	repo.On("ListPosts", mock.Anything).Return([]domain.Post{{PostID: "a"}, {PostID: "b"}}, nil)

	all, err := NewPostService(repo).GetAllPosts(context.Background())
	require.NoError(t, err)
	assert.Len(t, all.Posts, 2)
}

func TestGetAllPosts_EmptyIsNotNil(t *testing.T) {
	repo := new(mocks.MockPostRepository)
	repo.On("ListPosts", mock.Anything).Return(nil, nil)

	all, err := NewPostService(repo).GetAllPosts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all.Posts)
}

func TestGetPost(t *testing.T) {
	tests := []struct {
		name    string
		post    *domain.Post
		err     error
		wantErr error
	}{
		{"found", &domain.Post{PostID: "p", ViewCount: 8}, nil, nil},
		{"missing", nil, domain.ErrNotFound, domain.ErrNotFound},
		{"store down", nil, errors.New("connection refused"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockPostRepository)
			repo.On("IncrementViewCount", mock.Anything, "p").Return(tt.post, tt.err)

			post, err := NewPostService(repo).GetPost(context.Background(), "p")
			switch {
			case tt.err == nil:
				require.NoError(t, err)
				assert.Equal(t, int64(8), post.ViewCount)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, domain.ErrNotFound)
			}
		})
	}
}
