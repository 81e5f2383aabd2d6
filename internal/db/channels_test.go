package db_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creatorhub/internal/db"
	"creatorhub/internal/models"
	"creatorhub/internal/test"
)

func TestUpsertChannel(t *testing.T) {
	channel := &models.Channel{
		UserID:            1,
		Platform:          "youtube",
		PlatformChannelID: "UCabc123",
		ChannelTitle:      "My Channel",
		ChannelURL:        "https://www.youtube.com/channel/UCabc123",
		AccessTokenEnc:    "enc-access",
		RefreshTokenEnc:   "enc-refresh",
		TokenExpiryISO:    "2030-01-01T00:00:00Z",
	}

	t.Run("insert returns saved row", func(t *testing.T) {
		_, mock := test.NewMockDB(t)
		rows := sqlmock.NewRows([]string{
			"id", "user_id", "platform", "platform_channel_id", "channel_title",
			"channel_url", "access_token_enc", "refresh_token_enc", "token_expiry_iso", "created_at",
		}).AddRow(int64(3), int64(1), "youtube", "UCabc123", "My Channel",
			"https://www.youtube.com/channel/UCabc123", "enc-access", "enc-refresh",
			"2030-01-01T00:00:00Z", time.Now())
		mock.ExpectQuery(`INSERT INTO channels`).
			WithArgs(int64(1), "youtube", "UCabc123", "My Channel",
				"https://www.youtube.com/channel/UCabc123", "enc-access", "enc-refresh",
				"2030-01-01T00:00:00Z").
			WillReturnRows(rows)

		saved, err := db.UpsertChannel(channel)
		require.NoError(t, err)
		assert.Equal(t, int64(3), saved.ID)
		assert.Equal(t, "UCabc123", saved.PlatformChannelID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("pair claimed by another user returns no rows", func(t *testing.T) {
		_, mock := test.NewMockDB(t)
		mock.ExpectQuery(`INSERT INTO channels`).
			WillReturnError(sql.ErrNoRows)

		_, err := db.UpsertChannel(channel)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, db.IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, db.IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, db.IsUniqueViolation(sql.ErrNoRows))
	assert.False(t, db.IsUniqueViolation(nil))
}

func TestDeleteChannel(t *testing.T) {
	t.Run("reports deletion", func(t *testing.T) {
		_, mock := test.NewMockDB(t)
		mock.ExpectExec(`DELETE FROM channels`).
			WithArgs(int64(5), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		deleted, err := db.DeleteChannel(1, 5)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("reports nothing deleted", func(t *testing.T) {
		_, mock := test.NewMockDB(t)
		mock.ExpectExec(`DELETE FROM channels`).
			WithArgs(int64(5), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		deleted, err := db.DeleteChannel(2, 5)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
