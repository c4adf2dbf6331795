package model

import "time"

// Recognition is the record of one successful OCR request.
// It carries no persistence tags and is shared by the HTTP, service and
// repository layers.
type Recognition struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Text        string    `json:"text"`
	Engine      string    `json:"engine"`
	StoragePath string    `json:"storage_path,omitempty"`
	DurationMS  int64     `json:"duration_ms"`
	CreatedAt   time.Time `json:"created_at"`
}
