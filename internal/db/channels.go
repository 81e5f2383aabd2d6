package db

import (
	"creatorhub/internal/models"
)

// GetChannelsByUserID returns all channels owned by the given user.
func GetChannelsByUserID(userID int64) ([]models.Channel, error) {
	query := `
		SELECT id, user_id, platform, platform_channel_id, channel_title,
		       channel_url, access_token_enc, refresh_token_enc, token_expiry_iso, created_at
		FROM channels
		WHERE user_id = $1
		ORDER BY id
	`
	var channels []models.Channel
	err := DB.Select(&channels, query, userID)
	if err != nil {
		return nil, err
	}
	return channels, nil
}

// UpsertChannel inserts the channel or, when one already exists for the same
// (platform, platform_channel_id) pair and the same owner, overwrites its
// title, URL, tokens and expiry. The conditional update makes the operation
// atomic: a pair already claimed by a different user updates nothing and the
// query returns sql.ErrNoRows, which callers map to a conflict.
func UpsertChannel(ch *models.Channel) (*models.Channel, error) {
	query := `
		INSERT INTO channels (user_id, platform, platform_channel_id, channel_title,
		                      channel_url, access_token_enc, refresh_token_enc, token_expiry_iso)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (platform, platform_channel_id) DO UPDATE SET
			channel_title = EXCLUDED.channel_title,
			channel_url = EXCLUDED.channel_url,
			access_token_enc = EXCLUDED.access_token_enc,
			refresh_token_enc = EXCLUDED.refresh_token_enc,
			token_expiry_iso = EXCLUDED.token_expiry_iso
		WHERE channels.user_id = EXCLUDED.user_id
		RETURNING id, user_id, platform, platform_channel_id, channel_title,
		          channel_url, access_token_enc, refresh_token_enc, token_expiry_iso, created_at
	`
	saved := &models.Channel{}
	err := DB.Get(saved, query,
		ch.UserID, ch.Platform, ch.PlatformChannelID, ch.ChannelTitle,
		ch.ChannelURL, ch.AccessTokenEnc, ch.RefreshTokenEnc, ch.TokenExpiryISO)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// DeleteChannel removes the channel if it exists and is owned by the user.
// It reports whether a row was deleted; absent and not-owned are
// indistinguishable to the caller.
func DeleteChannel(userID, channelID int64) (bool, error) {
	query := `
		DELETE FROM channels
		WHERE id = $1 AND user_id = $2
	`
	res, err := DB.Exec(query, channelID, userID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
