package services

import (
	"context"
	"errors"

	"github.com/wadjakorntonsri/stacc/pkg/core/domain"
	"github.com/wadjakorntonsri/stacc/pkg/logging"
	"github.com/wadjakorntonsri/stacc/pkg/ports"
)

type MediaService struct {
	repo ports.MediaRepository
}

func NewMediaService(repo ports.MediaRepository) *MediaService {
	return &MediaService{repo: repo}
}

func (s *MediaService) Background(ctx context.Context) domain.Background {
	link, err := s.repo.RandomBackground(ctx)
	if err != nil || link == "" {
		logFallback(ctx, "background", err)
		return domain.Background{Link: domain.FallbackBackgroundLink}
	}
	return domain.Background{Link: link}
}

func (s *MediaService) Story(ctx context.Context) domain.Story {
	story, err := s.repo.RandomStory(ctx)
	if err != nil || story == "" {
		logFallback(ctx, "story", err)
		return domain.Story{Story: domain.DefaultStory}
	}
	return domain.Story{Story: story}
}

func logFallback(ctx context.Context, what string, err error) {
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		logging.Ctx(ctx).Debug().Str("media", what).Msg("store empty, using fallback")
		return
	}
	logging.Ctx(ctx).Warn().Err(err).Str("media", what).Msg("store read failed, using fallback")
}
