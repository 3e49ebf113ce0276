package model

import "time"

type Video struct {
	UUID        string    `db:"uuid" json:"uuid"`
	OwnerUUID   string    `db:"owner_uuid" json:"owner"`
	VideoFile   string    `db:"video_file" json:"videoFile"`
	Thumbnail   string    `db:"thumbnail" json:"thumbnail"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Duration    float64   `db:"duration" json:"duration"`
	Views       int64     `db:"views" json:"views"`
	IsPublished bool      `db:"is_published" json:"isPublished"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// VideoOwner : краткие сведения о владельце видео
type VideoOwner struct {
	UUID     string `json:"uuid"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// WatchedVideo : элемент истории просмотров
type WatchedVideo struct {
	UUID        string     `json:"uuid"`
	VideoFile   string     `json:"videoFile"`
	Thumbnail   string     `json:"thumbnail"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    float64    `json:"duration"`
	Views       int64      `json:"views"`
	WatchedAt   time.Time  `json:"watchedAt"`
	Owner       VideoOwner `json:"owner"`
}

// MediaAsset : результат загрузки файла в медиахранилище
type MediaAsset struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	SizeBytes   int64  `json:"sizeBytes"`
}
