package model

import "time"

type Subscription struct {
	UUID           string    `db:"uuid" json:"uuid"`
	SubscriberUUID string    `db:"subscriber_uuid" json:"subscriber"`
	ChannelUUID    string    `db:"channel_uuid" json:"channel"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}

type Comment struct {
	UUID      string    `db:"uuid" json:"uuid"`
	VideoUUID string    `db:"video_uuid" json:"video"`
	OwnerUUID string    `db:"owner_uuid" json:"owner"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// CommentPage : страница комментариев к видео
type CommentPage struct {
	Comments      []Comment
	Page          int
	Limit         int
	TotalComments int64
}

func (p CommentPage) TotalPages() int64 {
	if p.Limit <= 0 {
		return 0
	}
	return (p.TotalComments + int64(p.Limit) - 1) / int64(p.Limit)
}

// LikeTarget : лайк ставится либо видео, либо комментарию
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
)

type Like struct {
	UUID        string    `db:"uuid" json:"uuid"`
	LikedBy     string    `db:"liked_by" json:"likedBy"`
	VideoUUID   *string   `db:"video_uuid" json:"video,omitempty"`
	CommentUUID *string   `db:"comment_uuid" json:"comment,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}
