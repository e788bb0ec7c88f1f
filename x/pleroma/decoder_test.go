package pleroma

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/totegamma/unifedi/core"
	"github.com/totegamma/unifedi/internal/testutil"
)

const accountJSON = `{
	"id": "9hEkA5JsaY8CUERZrc",
	"username": "lain",
	"acct": "lain@lain.com",
	"display_name": "lain\n",
	"locked": false,
	"bot": false,
	"created_at": "2019-03-26T21:40:32.000Z",
	"note": "",
	"url": "https://lain.com/users/lain",
	"avatar": "https://lain.com/media/avatar.png",
	"avatar_static": "https://lain.com/media/avatar.png",
	"header": "https://lain.com/images/banner.png",
	"header_static": "https://lain.com/images/banner.png",
	"followers_count": 7,
	"following_count": 3,
	"statuses_count": 120,
	"emojis": [],
	"fields": [],
	"pleroma": {
		"ap_id": "https://lain.com/users/lain",
		"is_admin": true,
		"is_moderator": false,
		"hide_followers": false,
		"hide_follows": false,
		"tags": [],
		"favicon": null
	}
}`

const statusJSON = `{
	"id": "A1ffCzUoGCdsHCn2vI",
	"uri": "https://lain.com/objects/0b4b2f94",
	"url": "https://lain.com/notice/A1ffCzUoGCdsHCn2vI",
	"created_at": "2023-11-02T09:15:00.000Z",
	"account": ` + accountJSON + `,
	"content": "<p>hello <b>world</b></p>",
	"visibility": "public",
	"sensitive": false,
	"spoiler_text": "",
	"media_attachments": [],
	"mentions": [],
	"tags": [],
	"emojis": [],
	"reblogs_count": 0,
	"favourites_count": 4,
	"replies_count": 1,
	"in_reply_to_id": null,
	"in_reply_to_account_id": null,
	"reblog": null,
	"language": null,
	"poll": null,
	"pleroma": {
		"local": true,
		"conversation_id": 7421,
		"content": {"text/plain": "hello world"},
		"spoiler_text": {"text/plain": ""},
		"thread_muted": false,
		"emoji_reactions": [
			{"name": "👍", "count": 2, "me": true},
			{"name": "blobcat", "count": -1, "me": false, "url": "https://lain.com/emoji/blobcat.png"}
		]
	}
}`

func notificationJSON(t *testing.T, notificationType string) []byte {
	raw := `{
		"id": "107",
		"type": "mention",
		"created_at": "2023-11-02T09:20:00.000Z",
		"account": ` + accountJSON + `,
		"status": ` + statusJSON + `,
		"pleroma": {"is_seen": false, "is_muted": false}
	}`
	return testutil.SetField(t, raw, "type", notificationType)
}

func TestAccount(t *testing.T) {
	decoder := NewDecoder(core.WithStrict())

	account, err := decoder.Account([]byte(accountJSON))
	require.NoError(t, err)

	assert.Equal(t, "9hEkA5JsaY8CUERZrc", account.ID)
	assert.Equal(t, "lain", account.DisplayName)
	assert.Equal(t, "lain@lain.com", account.Acct)
	assert.Equal(t, uint64(120), account.StatusesCount)
	assert.True(t, account.CreatedAt.Equal(time.Date(2019, 3, 26, 21, 40, 32, 0, time.UTC)))
	assert.Nil(t, account.Discoverable)
}

func TestAccountRequiredFields(t *testing.T) {
	decoder := NewDecoder(core.WithStrict())

	for _, field := range []string{"display_name", "note", "url", "avatar", "header", "followers_count", "statuses_count"} {
		_, err := decoder.Account(testutil.DropField(t, accountJSON, field))
		var e *core.Error
		if assert.ErrorAs(t, err, &e, field) {
			assert.Equal(t, core.KindParse, e.Kind, field)
			assert.Equal(t, field, e.Field)
			assert.Equal(t, "account", e.Entity)
		}
	}

	_, err := decoder.Status(testutil.DropField(t, statusJSON, "replies_count"))
	var e *core.Error
	if assert.ErrorAs(t, err, &e) {
		assert.Equal(t, "replies_count", e.Field)
	}
}

func TestStatusExtensions(t *testing.T) {
	sink := &testutil.RecordingSink{}
	decoder := NewDecoder(core.WithWarningSink(sink))

	status, err := decoder.Status([]byte(statusJSON))
	require.NoError(t, err)

	assert.Equal(t, "A1ffCzUoGCdsHCn2vI", status.ID)
	assert.Equal(t, core.VisibilityPublic, status.Visibility)
	assert.Nil(t, status.Language)
	assert.Nil(t, status.Quote)
	if assert.NotNil(t, status.PlainContent) {
		assert.Equal(t, "hello world", *status.PlainContent)
	}

	if assert.Len(t, status.EmojiReactions, 2) {
		assert.Equal(t, core.Reaction{Name: "👍", Count: 2, Me: true}, status.EmojiReactions[0])
		assert.Equal(t, "blobcat", status.EmojiReactions[1].Name)
		assert.Equal(t, uint64(0), status.EmojiReactions[1].Count)
		if assert.NotNil(t, status.EmojiReactions[1].URL) {
			assert.Equal(t, "https://lain.com/emoji/blobcat.png", *status.EmojiReactions[1].URL)
		}
	}

	warnings := sink.Warnings()
	if assert.Len(t, warnings, 1) {
		assert.Equal(t, "pleroma.emoji_reactions.count", warnings[0].Field)
	}
}

func TestStatusQuote(t *testing.T) {
	decoder := NewDecoder()

	quoted := testutil.SetField(t, statusJSON, "id", "quoted")
	withQuote := testutil.SetField(t, statusJSON, "pleroma", map[string]any{
		"local": false,
		"quote": json.RawMessage(quoted),
	})

	status, err := decoder.Status(withQuote)
	require.NoError(t, err)
	if assert.NotNil(t, status.Quote) {
		assert.Equal(t, "quoted", status.Quote.ID)
	}
	assert.Nil(t, status.PlainContent)
	assert.Empty(t, status.EmojiReactions)
}

func TestNotificationEmojiReaction(t *testing.T) {
	decoder := NewDecoder()

	body := testutil.SetField(t, string(notificationJSON(t, "pleroma:emoji_reaction")), "emoji", "👍")
	notification, err := decoder.Notification(body)
	require.NoError(t, err)

	assert.Equal(t, core.NotificationTypeEmojiReaction, notification.Type)
	if assert.NotNil(t, notification.Emoji) {
		assert.Equal(t, "👍", *notification.Emoji)
	}
	if assert.NotNil(t, notification.Status) {
		assert.Equal(t, "A1ffCzUoGCdsHCn2vI", notification.Status.ID)
	}
	if assert.NotNil(t, notification.Account) {
		assert.Equal(t, "lain", notification.Account.Username)
	}
	assert.Nil(t, notification.Target)
}

func TestNotificationPoll(t *testing.T) {
	decoder := NewDecoder()

	notification, err := decoder.Notification(notificationJSON(t, "poll"))
	require.NoError(t, err)
	assert.Equal(t, core.NotificationTypePollExpired, notification.Type)
}

func TestNotificationMove(t *testing.T) {
	decoder := NewDecoder()

	body := testutil.DropField(t, string(notificationJSON(t, "move")), "status")
	body = testutil.SetField(t, string(body), "target", json.RawMessage(testutil.SetField(t, accountJSON, "id", "new-home")))

	notification, err := decoder.Notification(body)
	require.NoError(t, err)
	assert.Equal(t, core.NotificationTypeMove, notification.Type)
	assert.Nil(t, notification.Status)
	if assert.NotNil(t, notification.Target) {
		assert.Equal(t, "new-home", notification.Target.ID)
	}
}

func TestNotificationUnknownType(t *testing.T) {
	lenient := NewDecoder()
	notification, err := lenient.Notification(notificationJSON(t, "admin.sign_up"))
	require.NoError(t, err)
	assert.Equal(t, core.UnknownNotificationType("admin.sign_up"), notification.Type)
	assert.NotEqual(t, core.NotificationTypeAdminSignup, notification.Type)

	strict := NewDecoder(core.WithStrict())
	_, err = strict.Notification(notificationJSON(t, "admin.sign_up"))
	var e *core.Error
	if assert.ErrorAs(t, err, &e) {
		assert.Equal(t, core.KindUnknownVariant, e.Kind)
		assert.Equal(t, "type", e.Field)
		assert.Equal(t, "admin.sign_up", e.Fragment)
	}
}

func TestNotificationTypeTable(t *testing.T) {
	decoder := NewDecoder(core.WithStrict())

	expected := map[string]core.NotificationType{
		"follow":                 core.NotificationTypeFollow,
		"follow_request":         core.NotificationTypeFollowRequest,
		"mention":                core.NotificationTypeMention,
		"reblog":                 core.NotificationTypeReblog,
		"favourite":              core.NotificationTypeFavourite,
		"poll":                   core.NotificationTypePollExpired,
		"pleroma:emoji_reaction": core.NotificationTypeEmojiReaction,
		"update":                 core.NotificationTypeUpdate,
		"move":                   core.NotificationTypeMove,
	}
	assert.Len(t, notificationTypes.Spellings(), len(expected))

	for spelling, variant := range expected {
		notification, err := decoder.Notification(notificationJSON(t, spelling))
		if assert.NoError(t, err, spelling) {
			assert.Equal(t, variant, notification.Type, spelling)
		}

		encoded, ok := decoder.NotificationTypeWire(variant)
		assert.True(t, ok, spelling)
		assert.Equal(t, spelling, encoded)
	}

	for _, unsupported := range []core.NotificationType{
		core.NotificationTypePollVote,
		core.NotificationTypeStatus,
		core.NotificationTypeAdminSignup,
		core.NotificationTypeAdminReport,
	} {
		_, ok := decoder.NotificationTypeWire(unsupported)
		assert.False(t, ok, unsupported.String())
	}
}

func TestNotificationMonotoneUnknownField(t *testing.T) {
	decoder := NewDecoder()

	base := notificationJSON(t, "favourite")
	original, err := decoder.Notification(base)
	require.NoError(t, err)

	extended, err := decoder.Notification(testutil.SetField(t, string(base), "chat_message", map[string]any{"id": "1"}))
	require.NoError(t, err)
	assert.Equal(t, original, extended)
}

func TestAppData(t *testing.T) {
	decoder := NewDecoder()

	app, err := decoder.AppData([]byte(`{
		"id": "134",
		"name": "unifedi",
		"website": "https://unifedi.example",
		"redirect_uri": "https://unifedi.example/callback",
		"client_id": "LzjQ0_T3GNqeY5Ak5YrAgPwAbCjNHmrzLNFRzcf4lZI",
		"client_secret": "2qAs0ps6aFBGjr-vBJgvG5DQBDvVqg3aCZnHqZkAOJk",
		"vapid_key": "BHjP7R0JJxLtPC6yaAJQvqRmKKoLyMpPR_AYG9dYXkA="
	}`))
	require.NoError(t, err)

	assert.Equal(t, "134", app.ID)
	assert.Equal(t, "LzjQ0_T3GNqeY5Ak5YrAgPwAbCjNHmrzLNFRzcf4lZI", app.ClientID)
	assert.Equal(t, "2qAs0ps6aFBGjr-vBJgvG5DQBDvVqg3aCZnHqZkAOJk", app.ClientSecret)
	if assert.NotNil(t, app.Website) {
		assert.Equal(t, "https://unifedi.example", *app.Website)
	}
	assert.Nil(t, app.Scopes)
}

func TestTokenData(t *testing.T) {
	decoder := NewDecoder(core.WithStrict())

	token, err := decoder.TokenData([]byte(`{
		"token_type": "Bearer",
		"access_token": "-Mi9yZ3tBAgKxH8kU1HS8oQ2R8kfhT-8Iqm2pQ6-N3M",
		"refresh_token": "0bXTqBx6lD7aL0L-dU8U9qt7q3Jfgk0y2sLWGHG0yNg",
		"expires_in": 600,
		"scope": "read write",
		"created_at": 1699000000,
		"me": "https://lain.com/users/lain"
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Bearer", token.TokenType)
	if assert.NotNil(t, token.RefreshToken) {
		assert.Equal(t, "0bXTqBx6lD7aL0L-dU8U9qt7q3Jfgk0y2sLWGHG0yNg", *token.RefreshToken)
	}
	if assert.NotNil(t, token.ExpiresIn) {
		assert.Equal(t, int64(600), *token.ExpiresIn)
	}
	if assert.NotNil(t, token.CreatedAt) {
		assert.Equal(t, int64(1699000000), token.CreatedAt.Unix())
	}
}

func TestTokenDataMiscasedKeys(t *testing.T) {
	body := []byte(`{"token_type":"Bearer","access_token":"abc","Refresh_Token":"def"}`)

	_, err := NewDecoder(core.WithStrict()).TokenData(body)
	var e *core.Error
	if assert.ErrorAs(t, err, &e) {
		assert.Equal(t, core.KindParse, e.Kind)
		assert.Equal(t, "Refresh_Token", e.Field)
	}

	token, err := NewDecoder().TokenData(body)
	require.NoError(t, err)
	assert.Equal(t, "abc", token.AccessToken)
	assert.Nil(t, token.RefreshToken)
}

func TestAccountMiscasedExtensionKey(t *testing.T) {
	var account map[string]any
	require.NoError(t, json.Unmarshal([]byte(accountJSON), &account))
	extended := account["pleroma"].(map[string]any)
	extended["Is_Admin"] = true
	body, err := json.Marshal(account)
	require.NoError(t, err)

	_, err = NewDecoder(core.WithStrict()).Account(body)
	var e *core.Error
	if assert.ErrorAs(t, err, &e) {
		assert.Equal(t, "Is_Admin", e.Field)
		assert.Equal(t, "account", e.Entity)
	}
}

func TestIdentityProofsEmpty(t *testing.T) {
	decoder := NewDecoder()

	proofs, err := decoder.IdentityProofs([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, proofs)
}

func TestEncodeStatusParams(t *testing.T) {
	decoder := NewDecoder()

	quote := "A1ffCzUoGCdsHCn2vI"
	body, err := decoder.EncodeStatusParams(core.StatusParams{
		Status:     "quoting",
		QuoteID:    &quote,
		Visibility: &core.VisibilityDirect,
		MediaIDs:   []string{"m1"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"status": "quoting",
		"quote_id": "A1ffCzUoGCdsHCn2vI",
		"visibility": "direct",
		"media_ids": ["m1"]
	}`, string(body))
}
