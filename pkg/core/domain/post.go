package domain

// Post is a blog post. Posts are authored out of band; the API only reads them and
// bumps ViewCount.
type Post struct {
	PostID           string  `json:"post_id"`
	Title            string  `json:"title"`
	Body             string  `json:"body"`
	Created          string  `json:"created"`
	Edited           *string `json:"edited"`
	PreviewImageLink string  `json:"preview_image_link"`
	PreviewSummary   string  `json:"preview_summary"`
	ViewCount        int64   `json:"view_count"`
}

// AllPosts wraps every stored post for the listing endpoint.
type AllPosts struct {
	Posts []Post `json:"posts"`
}
