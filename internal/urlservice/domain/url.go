package domain

import "time"

// ShortLink maps an issued short code to the URL it redirects to.
type ShortLink struct {
	ID          int64     `json:"id"`
	Code        string    `json:"code"`
	OriginalURL string    `json:"originalUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}
