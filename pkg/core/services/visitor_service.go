package services

import (
	"context"
	"errors"
	"time"

	"github.com/wadjakorntonsri/stacc/pkg/clientip"
	"github.com/wadjakorntonsri/stacc/pkg/core/domain"
	"github.com/wadjakorntonsri/stacc/pkg/logging"
	"github.com/wadjakorntonsri/stacc/pkg/metrics"
	"github.com/wadjakorntonsri/stacc/pkg/ports"
)

type VisitorService struct {
	visitors ports.VisitorRepository
	posts    ports.PostRepository
	geo      ports.Geolocator
	now      func() time.Time
}

// NewVisitorService wires the visitor log. geo may be nil, in which case new visitors
// are stored without geolocation.
func NewVisitorService(visitors ports.VisitorRepository, posts ports.PostRepository, geo ports.Geolocator) *VisitorService {
	return &VisitorService{
		visitors: visitors,
		posts:    posts,
		geo:      geo,
		now:      time.Now,
	}
}

// RecordVisit counts a page refresh for clientAddress, creating the visitor on first
// sight. Nothing is returned: every failure is logged and dropped.
func (s *VisitorService) RecordVisit(ctx context.Context, clientAddress string) {
	log := logging.Ctx(ctx)

	ip := clientip.Normalize(clientAddress)
	if ip == "" {
		log.Warn().Err(domain.ErrNoClientAddress).Str("remote", clientAddress).Msg("visit not recorded")
		metrics.VisitsRecorded.WithLabelValues("skipped").Inc()
		return
	}

	// The upsert is the only first-arrival signal; two concurrent first requests
	// cannot both see created == true.
	created, err := s.visitors.TouchVisitor(ctx, ip, s.now())
	if err != nil {
		log.Error().Err(err).Str("ip", ip).Msg("failed to record visit")
		metrics.VisitsRecorded.WithLabelValues("failed").Inc()
		return
	}
	if !created {
		metrics.VisitsRecorded.WithLabelValues("returning").Inc()
		return
	}
	metrics.VisitsRecorded.WithLabelValues("created").Inc()
	log.Info().Str("ip", ip).Msg("new visitor")

	if s.geo == nil {
		return
	}
	data, err := s.geo.Lookup(ctx, ip)
	if err != nil {
		log.Warn().Err(err).Str("ip", ip).Msg("geolocation lookup failed")
		return
	}
	if err := s.visitors.AttachIPData(ctx, ip, data); err != nil {
		log.Error().Err(err).Str("ip", ip).Msg("failed to store geolocation")
	}
}

// RecordResourceView bumps the post's global counter, then the visitor's per-post
// counter. The global one happens even when the client address cannot be resolved.
// An unknown post touches neither; a store failure on the counter still lets the
// mapping through.
func (s *VisitorService) RecordResourceView(ctx context.Context, postID, clientAddress string) {
	_, err := s.posts.IncrementViewCount(ctx, postID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		logging.Ctx(ctx).Debug().Str("post_id", postID).Msg("view for unknown post ignored")
		metrics.PostViews.WithLabelValues("not_found").Inc()
		return
	case err != nil:
		logging.Ctx(ctx).Warn().Err(err).Str("post_id", postID).Msg("failed to count post view")
		metrics.PostViews.WithLabelValues("failed").Inc()
	default:
		metrics.PostViews.WithLabelValues("counted").Inc()
	}
	s.RecordPostVisitor(ctx, postID, clientAddress)
}

// RecordPostVisitor increments visited_posts[postID] for the client.
func (s *VisitorService) RecordPostVisitor(ctx context.Context, postID, clientAddress string) {
	log := logging.Ctx(ctx)

	ip := clientip.Normalize(clientAddress)
	if ip == "" {
		log.Warn().Err(domain.ErrNoClientAddress).Str("post_id", postID).Msg("post visit not recorded")
		return
	}
	if err := s.visitors.IncrementVisitedPost(ctx, ip, postID); err != nil {
		log.Error().Err(err).Str("ip", ip).Str("post_id", postID).Msg("failed to record post visit")
	}
}

func (s *VisitorService) ListVisitors(ctx context.Context, page, limit int) (*domain.VisitorPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := (page - 1) * limit

	visitors, total, err := s.visitors.ListVisitors(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if visitors == nil {
		visitors = []domain.Visitor{}
	}
	return &domain.VisitorPage{Visitors: visitors, Total: total, Page: page, Limit: limit}, nil
}

func (s *VisitorService) GetVisitor(ctx context.Context, ipAddress string) (*domain.Visitor, error) {
	if ip := clientip.Normalize(ipAddress); ip != "" {
		ipAddress = ip
	}
	return s.visitors.GetVisitor(ctx, ipAddress)
}
