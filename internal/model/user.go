package model

import "time"

type User struct {
	UUID         string    `db:"uuid" json:"uuid"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	FullName     string    `db:"full_name" json:"fullName"`
	Avatar       string    `db:"avatar" json:"avatar"`
	CoverImage   string    `db:"cover_image" json:"coverImage"`
	PasswordHash string    `db:"password_hash" json:"-"`
	RefreshToken *string   `db:"refresh_token" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// HasActiveSession : у пользователя есть действующий refresh токен
func (u *User) HasActiveSession() bool {
	return u.RefreshToken != nil && *u.RefreshToken != ""
}

// Sanitized : копия без пароля и refresh токена
func (u *User) Sanitized() *User {
	clean := *u
	clean.PasswordHash = ""
	clean.RefreshToken = nil
	return &clean
}

// ChannelProfile : публичный профиль канала со счётчиками подписок
type ChannelProfile struct {
	UUID                      string `db:"uuid" json:"uuid"`
	Username                  string `db:"username" json:"username"`
	Email                     string `db:"email" json:"email"`
	FullName                  string `db:"full_name" json:"fullName"`
	Avatar                    string `db:"avatar" json:"avatar"`
	CoverImage                string `db:"cover_image" json:"coverImage"`
	SubscribersCount          int64  `db:"subscribers_count" json:"subscribersCount"`
	ChannelsSubscribedToCount int64  `db:"channels_subscribed_to_count" json:"channelsSubscribedToCount"`
	IsSubscribed              bool   `db:"-" json:"isSubscribed"`
}

// UserImage : какое изображение профиля обновляется
type UserImage string

const (
	UserImageAvatar     UserImage = "avatar"
	UserImageCoverImage UserImage = "cover_image"
)
