package ports

import (
	"context"
	"time"

	"github.com/wadjakorntonsri/stacc/pkg/core/domain"
	"github.com/wadjakorntonsri/stacc/pkg/core/incidents"
)

// PostRepository defines storage operations for blog posts
type PostRepository interface {
	ListPosts(ctx context.Context) ([]domain.Post, error)
	// IncrementViewCount bumps the counter and returns the updated post, or
	// domain.ErrNotFound without touching anything.
	IncrementViewCount(ctx context.Context, postID string) (*domain.Post, error)
	UpsertPost(ctx context.Context, post *domain.Post) error
}

// VisitorRepository defines storage operations for visitors
type VisitorRepository interface {
	// TouchVisitor atomically creates the visitor with a refresh count of one or
	// increments an existing one. created is true only for the call that inserted.
	TouchVisitor(ctx context.Context, ipAddress string, now time.Time) (created bool, err error)
	// AttachIPData sets geolocation on a visitor that has none yet.
	AttachIPData(ctx context.Context, ipAddress string, data *domain.IPData) error
	IncrementVisitedPost(ctx context.Context, ipAddress, postID string) error
	GetVisitor(ctx context.Context, ipAddress string) (*domain.Visitor, error)
	ListVisitors(ctx context.Context, limit, offset int) ([]domain.Visitor, int64, error)
	DumpVisitors(ctx context.Context) ([]domain.Visitor, error)
}

// MediaRepository serves background links and 404 stories
type MediaRepository interface {
	RandomBackground(ctx context.Context) (string, error)
	RandomStory(ctx context.Context) (string, error)
	AddBackground(ctx context.Context, link string) error
	AddStory(ctx context.Context, story string) error
}

// Store is everything the server needs from persistence.
type Store interface {
	PostRepository
	VisitorRepository
	MediaRepository
	Ping(ctx context.Context) error
	Close() error
}

// Geolocator resolves an IP address to its geolocation metadata.
type Geolocator interface {
	Lookup(ctx context.Context, ipAddress string) (*domain.IPData, error)
}

// OpenDataSource fetches a raw dataset body.
type OpenDataSource interface {
	Fetch(ctx context.Context, dataset incidents.Dataset) ([]byte, error)
}

// DatasetCache stores raw dataset bodies. A miss returns ok == false and no error.
type DatasetCache interface {
	Get(ctx context.Context, key string) (body []byte, ok bool, err error)
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error
}

// VisitorService records visits and exposes the visitor log
type VisitorService interface {
	RecordVisit(ctx context.Context, clientAddress string)
	RecordResourceView(ctx context.Context, postID, clientAddress string)
	RecordPostVisitor(ctx context.Context, postID, clientAddress string)
	ListVisitors(ctx context.Context, page, limit int) (*domain.VisitorPage, error)
	GetVisitor(ctx context.Context, ipAddress string) (*domain.Visitor, error)
}

// PostService defines the blog read operations
type PostService interface {
	GetAllPosts(ctx context.Context) (*domain.AllPosts, error)
	GetPost(ctx context.Context, postID string) (*domain.Post, error)
}

// MediaService never fails; it falls back to built-in content.
type MediaService interface {
	Background(ctx context.Context) domain.Background
	Story(ctx context.Context) domain.Story
}

type ChicagoService interface {
	Raw(ctx context.Context) (*domain.ChicagoData, error)
	Summaries(ctx context.Context) (*incidents.Report, error)
}

// Tracker runs best-effort side tasks detached from the request. The task context
// keeps the values of ctx but not its cancellation.
type Tracker interface {
	Go(ctx context.Context, name string, task func(ctx context.Context))
}
