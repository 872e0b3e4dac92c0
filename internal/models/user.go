package models

// User and Friend are declared collection shapes with no routes behind them.
// No handler reads or writes these collections yet.

type User struct {
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Avatar   string `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	IsActive bool   `json:"is_active" bson:"is_active"`
}

type Friend struct {
	UserID   string `json:"user_id" bson:"user_id"`
	FriendID string `json:"friend_id" bson:"friend_id"`
	Status   string `json:"status" bson:"status"` // pending, accepted, blocked
}
