package model

import "time"

// Playlist : пользовательский плейлист, имя уникально в пределах владельца
type Playlist struct {
	UUID        string    `db:"uuid" json:"uuid"`
	OwnerUUID   string    `db:"owner_uuid" json:"owner"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Videos      []string  `db:"-" json:"videos"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// ChannelStats : сводка по каналу для панели автора
type ChannelStats struct {
	TotalVideos      int64 `db:"total_videos" json:"totalVideos"`
	TotalVideoViews  int64 `db:"total_video_views" json:"totalVideoViews"`
	TotalSubscribers int64 `db:"total_subscribers" json:"totalSubscribers"`
	TotalLikes       int64 `db:"total_likes" json:"totalLikes"`
}
