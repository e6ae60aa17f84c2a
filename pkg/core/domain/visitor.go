package domain

import "time"

// TimestampLayout is how visit timestamps are stored and rendered.
const TimestampLayout = "2006-01-02 15:04:05"

// Visitor is keyed by the normalized client address (port stripped).
type Visitor struct {
	IPAddress      string           `json:"ip_address"`
	FirstVisitDate time.Time        `json:"first_visit_date"`
	LastVisitDate  *time.Time       `json:"last_visit_date"`
	RefreshCount   int64            `json:"refresh_count"`
	IPData         *IPData          `json:"ip_data"`
	VisitedPosts   map[string]int64 `json:"visited_posts"`
}

// IPData is the geolocation metadata returned by ip-api.com. Field names follow the
// upstream JSON so stored documents round-trip unchanged.
type IPData struct {
	AS          string  `json:"as"`
	City        string  `json:"city"`
	Continent   string  `json:"continent"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Currency    string  `json:"currency"`
	Hosting     bool    `json:"hosting"`
	ISP         string  `json:"isp"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Message     string  `json:"message,omitempty"`
	Mobile      bool    `json:"mobile"`
	Org         string  `json:"org"`
	Proxy       bool    `json:"proxy"`
	Query       string  `json:"query"`
	Region      string  `json:"region"`
	RegionName  string  `json:"regionName"`
	// Reverse DNS; asking for it slows ip-api down noticeably.
	Reverse  string `json:"reverse"`
	Status   string `json:"status"`
	Timezone string `json:"timezone"`
	Zip      string `json:"zip"`
}

// VisitorPage is one page of the admin visitor listing.
type VisitorPage struct {
	Visitors []Visitor `json:"visitors"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
}
