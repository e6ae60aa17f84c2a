package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/wadjakorntonsri/stacc/pkg/clientip"
	"github.com/wadjakorntonsri/stacc/pkg/ports"
)

const backgroundCookie = "background"

type HTTPHandler struct {
	posts    ports.PostService
	visitors ports.VisitorService
	media    ports.MediaService
	chicago  ports.ChicagoService
	tracker  ports.Tracker
	ip       clientip.Resolver
}

func NewHTTPHandler(s Services, ip clientip.Resolver) *HTTPHandler {
	return &HTTPHandler{
		posts:    s.Posts,
		visitors: s.Visitors,
		media:    s.Media,
		chicago:  s.Chicago,
		tracker:  s.Tracker,
		ip:       ip,
	}
}

// trackVisit records the refresh in the background. It is started before the
// primary fetch and never delays the response.
func (h *HTTPHandler) trackVisit(r *http.Request) {
	addr := h.ip.Resolve(r)
	h.tracker.Go(r.Context(), "record_visit", func(ctx context.Context) {
		h.visitors.RecordVisit(ctx, addr)
	})
}

// Background returns a random background link and remembers it in a cookie for a day.
func (h *HTTPHandler) Background(w http.ResponseWriter, r *http.Request) {
	h.trackVisit(r)

	bg := h.media.Background(r.Context())
	http.SetCookie(w, &http.Cookie{
		Name:     backgroundCookie,
		Value:    bg.Link,
		Path:     "/",
		MaxAge:   int((24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, bg)
}

func (h *HTTPHandler) Story(w http.ResponseWriter, r *http.Request) {
	h.trackVisit(r)
	writeJSON(w, http.StatusOK, h.media.Story(r.Context()))
}

// Chicago proxies both raw open-data arrays.
func (h *HTTPHandler) Chicago(w http.ResponseWriter, r *http.Request) {
	h.trackVisit(r)

	data, err := h.chicago.Raw(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// ChicagoSummary returns the aggregated tables for both datasets.
func (h *HTTPHandler) ChicagoSummary(w http.ResponseWriter, r *http.Request) {
	h.trackVisit(r)

	report, err := h.chicago.Summaries(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *HTTPHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	h.trackVisit(r)

	posts, err := h.posts.GetAllPosts(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// GetPost counts the view through the fetch itself; the visitor's per-post counter
// is only touched once the post is known to exist.
func (h *HTTPHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	h.trackVisit(r)
	id := r.PathValue("id")

	post, err := h.posts.GetPost(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	addr := h.ip.Resolve(r)
	h.tracker.Go(r.Context(), "record_post_visitor", func(ctx context.Context) {
		h.visitors.RecordPostVisitor(ctx, id, addr)
	})
	writeJSON(w, http.StatusOK, post)
}

// RecordPostView is a beacon for clients that render a cached post without fetching
// it. It runs the full view recording and returns immediately.
func (h *HTTPHandler) RecordPostView(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	addr := h.ip.Resolve(r)
	h.tracker.Go(r.Context(), "record_resource_view", func(ctx context.Context) {
		h.visitors.RecordResourceView(ctx, id, addr)
	})
	w.WriteHeader(http.StatusNoContent)
}

type pageQuery struct {
	Page  int `validate:"gte=1"`
	Limit int `validate:"gte=1,lte=100"`
}

// ListVisitors is the admin visitor log, newest first.
func (h *HTTPHandler) ListVisitors(w http.ResponseWriter, r *http.Request) {
	q := pageQuery{Page: 1, Limit: 20}
	var err error
	if v := r.URL.Query().Get("page"); v != "" {
		if q.Page, err = strconv.Atoi(v); err != nil {
			writeError(w, http.StatusBadRequest, "page must be a number")
			return
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if q.Limit, err = strconv.Atoi(v); err != nil {
			writeError(w, http.StatusBadRequest, "limit must be a number")
			return
		}
	}
	if err := validate.Struct(q); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	page, err := h.visitors.ListVisitors(r.Context(), q.Page, q.Limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *HTTPHandler) GetVisitor(w http.ResponseWriter, r *http.Request) {
	visitor, err := h.visitors.GetVisitor(r.Context(), r.PathValue("ip"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, visitor)
}

// NotFound answers unknown routes with the error envelope.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "no route for "+r.Method+" "+r.URL.Path)
}
