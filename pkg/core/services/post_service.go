package services

import (
	"context"
	"errors"

	"github.com/wadjakorntonsri/stacc/pkg/core/domain"
	"github.com/wadjakorntonsri/stacc/pkg/metrics"
	"github.com/wadjakorntonsri/stacc/pkg/ports"
)

type PostService struct {
	repo ports.PostRepository
}

func NewPostService(repo ports.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// GetAllPosts returns every post in store order.
func (s *PostService) GetAllPosts(ctx context.Context) (*domain.AllPosts, error) {
	posts, err := s.repo.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return &domain.AllPosts{Posts: posts}, nil
}

// GetPost counts a view and returns the post as it is after the increment.
func (s *PostService) GetPost(ctx context.Context, postID string) (*domain.Post, error) {
	post, err := s.repo.IncrementViewCount(ctx, postID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		metrics.PostViews.WithLabelValues("not_found").Inc()
		return nil, err
	case err != nil:
		metrics.PostViews.WithLabelValues("failed").Inc()
		return nil, err
	}
	metrics.PostViews.WithLabelValues("counted").Inc()
	return post, nil
}
