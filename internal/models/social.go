package models

import "fmt"

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

const DefaultMaxPlayers = 10

// GameRequest is the create-game payload.
type GameRequest struct {
	Title       string `json:"title"`
	Sport       string `json:"sport"`
	Visibility  string `json:"visibility"`
	HostUserID  string `json:"host_user_id,omitempty"`
	MaxPlayers  int    `json:"max_players"`
	Description string `json:"description,omitempty"`
}

func (r *GameRequest) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.Sport == "" {
		return fmt.Errorf("sport is required")
	}
	return nil
}

// ApplyDefaults fills visibility and max_players when the caller omits them.
func (r *GameRequest) ApplyDefaults() {
	if r.Visibility == "" {
		r.Visibility = VisibilityPublic
	}
	if r.MaxPlayers == 0 {
		r.MaxPlayers = DefaultMaxPlayers
	}
}

// Fields flattens the request into the persistence field map. The players
// list starts empty and no exposed operation ever populates it.
func (r *GameRequest) Fields() map[string]interface{} {
	return map[string]interface{}{
		"title":        r.Title,
		"sport":        r.Sport,
		"visibility":   r.Visibility,
		"host_user_id": r.HostUserID,
		"max_players":  r.MaxPlayers,
		"players":      []string{},
		"description":  r.Description,
	}
}

// PostRequest is the create-post payload.
type PostRequest struct {
	UserID  string `json:"user_id,omitempty"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}

func (r *PostRequest) Validate() error {
	if r.Content == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}

func (r *PostRequest) Fields() map[string]interface{} {
	return map[string]interface{}{
		"user_id": r.UserID,
		"content": r.Content,
		"image":   r.Image,
	}
}
