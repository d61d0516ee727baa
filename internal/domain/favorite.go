package domain

import "time"

type Favorite struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Movie     Movie     `json:"movie"`
	CreatedAt time.Time `json:"created_at"`
}
