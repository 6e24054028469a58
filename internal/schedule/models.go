package schedule

import "time"

// UnknownTitle is shown when an airing carries neither an English nor a romaji title.
const UnknownTitle = "Unknown Title"

// AiringEvent is one scheduled episode release.
type AiringEvent struct {
	Title    string `json:"title"`
	Episode  int    `json:"episode"`
	AiringAt int64  `json:"airing_at"`
}

// Row is the display payload for one airing event.
type Row struct {
	Title    string `json:"title"`
	Episode  int    `json:"episode"`
	Time     string `json:"time"`
	Status   string `json:"status"`
	Past     bool   `json:"past"`
	AiringAt int64  `json:"airing_at"`
}

// Request carries the raw user inputs of a schedule lookup.
type Request struct {
	Day      string
	Days     uint32
	Timezone string
}

// Result is a resolved schedule ready for rendering.
type Result struct {
	Timezone    Timezone  `json:"timezone"`
	Day         Weekday   `json:"day"`
	Window      Window    `json:"window"`
	GeneratedAt time.Time `json:"generated_at"`
	Rows        []Row     `json:"rows"`
}
