package models

import "time"

// Channel links a user to one external-platform account. Token material is
// stored encrypted and never serialized.
type Channel struct {
	ID                int64     `db:"id" json:"id"`
	UserID            int64     `db:"user_id" json:"-"`
	Platform          string    `db:"platform" json:"platform"`
	PlatformChannelID string    `db:"platform_channel_id" json:"platform_channel_id"`
	ChannelTitle      string    `db:"channel_title" json:"channel_title"`
	ChannelURL        string    `db:"channel_url" json:"channel_url"`
	AccessTokenEnc    string    `db:"access_token_enc" json:"-"`
	RefreshTokenEnc   string    `db:"refresh_token_enc" json:"-"`
	TokenExpiryISO    string    `db:"token_expiry_iso" json:"-"`
	CreatedAt         time.Time `db:"created_at" json:"-"`
}
