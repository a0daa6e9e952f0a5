package model

import "fmt"

// MediaType mirrors the type_enum column. The zero value means unset.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

func (t MediaType) Valid() bool {
	return t == MediaImage || t == MediaVideo
}

// ParseMediaType accepts "" (unset) or one of the enum values.
func ParseMediaType(s string) (MediaType, error) {
	t := MediaType(s)
	if t != "" && !t.Valid() {
		return "", fmt.Errorf("unknown media type %q", s)
	}
	return t, nil
}

type Media struct {
	ID     int64     `json:"id"`
	Type   MediaType `json:"type"`
	URL    string    `json:"url"`
	PostID int64     `json:"post_id"`
	UserID int64     `json:"user_id"`
}

// Serialize leaves user_id out; an unset type projects to nil.
func (m Media) Serialize() map[string]any {
	var typ any
	if m.Type != "" {
		typ = string(m.Type)
	}
	return map[string]any{
		"id":      m.ID,
		"type":    typ,
		"url":     m.URL,
		"post_id": m.PostID,
	}
}
