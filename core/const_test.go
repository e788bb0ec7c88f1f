package core

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotificationTypeParse(t *testing.T) {
	for _, variant := range NotificationTypes {
		parsed, err := ParseNotificationType(variant.String())
		if assert.NoError(t, err) {
			assert.Equal(t, variant, parsed)
			assert.False(t, parsed.IsUnknown())
		}
	}

	_, err := ParseNotificationType("pleroma:chat_mention")
	assert.True(t, IsUnknownVariant(err))
}

func TestUnknownNeverEqualsKnown(t *testing.T) {
	for _, variant := range NotificationTypes {
		unknown := UnknownNotificationType(variant.String())
		assert.NotEqual(t, variant, unknown)
		assert.True(t, unknown.IsUnknown())
		assert.Equal(t, variant.String(), unknown.String())
	}

	assert.NotEqual(t, VisibilityPublic, UnknownVisibility("public"))
	assert.NotEqual(t, AttachmentTypeImage, UnknownAttachmentType("image"))
}

func TestVisibilityAndAttachmentParse(t *testing.T) {
	for _, v := range Visibilities {
		parsed, err := ParseVisibility(v.String())
		assert.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
	_, err := ParseVisibility("local")
	assert.True(t, IsUnknownVariant(err))

	for _, a := range AttachmentTypes {
		parsed, err := ParseAttachmentType(a.String())
		assert.NoError(t, err)
		assert.Equal(t, a, parsed)
	}
	_, err = ParseAttachmentType("document")
	assert.True(t, IsUnknownVariant(err))
}

func TestEnumJSON(t *testing.T) {
	n := Notification{
		ID:        "1",
		CreatedAt: time.Date(2023, 11, 2, 9, 15, 0, 0, time.UTC),
		Type:      UnknownNotificationType("severed_relationships"),
	}
	body, err := json.Marshal(n)
	if assert.NoError(t, err) {
		assert.JSONEq(t, `{"id":"1","created_at":"2023-11-02T09:15:00Z","type":"severed_relationships"}`, string(body))
	}

	body, err = json.Marshal(AttachmentTypeGifv)
	if assert.NoError(t, err) {
		assert.Equal(t, `"gifv"`, string(body))
	}
}

func TestFlavor(t *testing.T) {
	tests := map[string]Flavor{
		"mastodon": FlavorMastodon,
		"pleroma":  FlavorPleroma,
		"akkoma":   FlavorPleroma,
		"firefish": FlavorFirefish,
		"misskey":  FlavorFirefish,
		"calckey":  FlavorFirefish,
	}
	for spelling, flavor := range tests {
		parsed, err := ParseFlavor(spelling)
		assert.NoError(t, err, spelling)
		assert.Equal(t, flavor, parsed, spelling)
	}

	_, err := ParseFlavor("gotosocial")
	assert.True(t, IsUnknownVariant(err))

	assert.Equal(t, "Firefish", FlavorFirefish.DisplayName())
	assert.Equal(t, "Mastodon", fmt.Sprint(FlavorMastodon))
	assert.Equal(t, "Unknown", FlavorUnknown.DisplayName())
}

func TestOptions(t *testing.T) {
	assert.False(t, NewOptions().Strict())
	assert.True(t, NewOptions(WithStrict()).Strict())
	assert.False(t, NewOptions(WithStrict(), WithMode(ModeLenient)).Strict())

	// no sink configured
	NewOptions().Warn(Warning{Entity: "account"})
}
