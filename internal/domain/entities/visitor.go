package entities

import "time"

// VisitorSession is an anonymous site visitor. Sessions expire after the
// configured TTL (30 days by default) and are written fire-and-forget.
type VisitorSession struct {
	ID          string    `json:"id"`
	Source      string    `json:"source,omitempty"`
	Medium      string    `json:"medium,omitempty"`
	Campaign    string    `json:"campaign,omitempty"`
	Referrer    string    `json:"referrer,omitempty"`
	LandingPage string    `json:"landingPage,omitempty"`
	Device      string    `json:"device,omitempty"`
	UserAgent   string    `json:"userAgent,omitempty"`
	PageViews   int       `json:"pageViews"`
	Pages       []string  `json:"pages,omitempty"`
	FirstSeen   time.Time `json:"firstSeen"`
	LastSeen    time.Time `json:"lastSeen"`
}

// MaxVisitorPages bounds the per-session page trail.
const MaxVisitorPages = 20

// VisitorStats summarises tracked sessions.
type VisitorStats struct {
	Tracked int64 `json:"tracked"`
	Active  int   `json:"active"`
	Pruned  int   `json:"pruned"`
}
