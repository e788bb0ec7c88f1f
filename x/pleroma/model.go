package pleroma

import (
	"encoding/json"

	"github.com/totegamma/unifedi/internal/wire"
)

// Pleroma speaks the Mastodon client API with "pleroma" extension objects.
// https://docs-develop.pleroma.social/backend/development/API/differences_in_mastoapi_responses/

type account struct {
	ID             *string          `json:"id"`
	Username       *string          `json:"username"`
	Acct           *string          `json:"acct"`
	URL            *string          `json:"url"`
	DisplayName    *string          `json:"display_name"`
	Note           *string          `json:"note"`
	Avatar         *string          `json:"avatar"`
	AvatarStatic   *string          `json:"avatar_static"`
	Header         *string          `json:"header"`
	HeaderStatic   *string          `json:"header_static"`
	Locked         bool             `json:"locked"`
	Bot            bool             `json:"bot"`
	Discoverable   *bool            `json:"discoverable"`
	CreatedAt      *wire.Time       `json:"created_at"`
	LastStatusAt   *string          `json:"last_status_at"`
	FollowersCount *int64           `json:"followers_count"`
	FollowingCount *int64           `json:"following_count"`
	StatusesCount  *int64           `json:"statuses_count"`
	Moved          *account         `json:"moved"`
	Fields         []field          `json:"fields"`
	Emojis         []emoji          `json:"emojis"`
	Source         json.RawMessage  `json:"source"`
	Pleroma        *accountExtended `json:"pleroma"`
}

// accountExtended is read for strict-mode field checking only; none of it is projected.
type accountExtended struct {
	APID                  string          `json:"ap_id"`
	BackgroundImage       *string         `json:"background_image"`
	IsAdmin               bool            `json:"is_admin"`
	IsModerator           bool            `json:"is_moderator"`
	IsConfirmed           bool            `json:"is_confirmed"`
	IsSuggested           bool            `json:"is_suggested"`
	HideFavorites         bool            `json:"hide_favorites"`
	HideFollowers         bool            `json:"hide_followers"`
	HideFollows           bool            `json:"hide_follows"`
	HideFollowersCount    bool            `json:"hide_followers_count"`
	HideFollowsCount      bool            `json:"hide_follows_count"`
	SkipThreadContainment bool            `json:"skip_thread_containment"`
	Favicon               *string         `json:"favicon"`
	Birthday              *string         `json:"birthday"`
	Tags                  []string        `json:"tags"`
	Relationship          json.RawMessage `json:"relationship"`
	AcceptsChatMessages   *bool           `json:"accepts_chat_messages"`
}

type field struct {
	Name       string     `json:"name"`
	Value      string     `json:"value"`
	VerifiedAt *wire.Time `json:"verified_at"`
}

type emoji struct {
	Shortcode       string  `json:"shortcode"`
	URL             string  `json:"url"`
	StaticURL       string  `json:"static_url"`
	VisibleInPicker bool    `json:"visible_in_picker"`
	Category        *string `json:"category"`
}

type status struct {
	ID                 *string         `json:"id"`
	URI                *string         `json:"uri"`
	URL                *string         `json:"url"`
	Account            *account        `json:"account"`
	Content            *string         `json:"content"`
	Text               *string         `json:"text"`
	CreatedAt          *wire.Time      `json:"created_at"`
	EditedAt           *wire.Time      `json:"edited_at"`
	InReplyToID        *string         `json:"in_reply_to_id"`
	InReplyToAccountID *string         `json:"in_reply_to_account_id"`
	Reblog             *status         `json:"reblog"`
	MediaAttachments   []attachment    `json:"media_attachments"`
	Mentions           []mention       `json:"mentions"`
	Tags               []tag           `json:"tags"`
	Emojis             []emoji         `json:"emojis"`
	Visibility         *string         `json:"visibility"`
	FavouritesCount    *int64          `json:"favourites_count"`
	ReblogsCount       *int64          `json:"reblogs_count"`
	RepliesCount       *int64          `json:"replies_count"`
	Sensitive          bool            `json:"sensitive"`
	SpoilerText        *string         `json:"spoiler_text"`
	Language           *string         `json:"language"`
	Application        *application    `json:"application"`
	Poll               *poll           `json:"poll"`
	Card               json.RawMessage `json:"card"`
	Favourited         *bool           `json:"favourited"`
	Reblogged          *bool           `json:"reblogged"`
	Muted              *bool           `json:"muted"`
	Bookmarked         *bool           `json:"bookmarked"`
	Pinned             *bool           `json:"pinned"`
	Pleroma            *statusExtended `json:"pleroma"`
}

type statusExtended struct {
	Local                bool              `json:"local"`
	ConversationID       *int64            `json:"conversation_id"`
	DirectConversationID *int64            `json:"direct_conversation_id"`
	InReplyToAccountAcct *string           `json:"in_reply_to_account_acct"`
	Content              map[string]string `json:"content"`
	SpoilerText          map[string]string `json:"spoiler_text"`
	ExpiresAt            *wire.Time        `json:"expires_at"`
	ThreadMuted          bool              `json:"thread_muted"`
	EmojiReactions       []emojiReaction   `json:"emoji_reactions"`
	ParentVisible        *bool             `json:"parent_visible"`
	PinnedAt             *wire.Time        `json:"pinned_at"`
	Quote                *status           `json:"quote"`
	QuoteID              *string           `json:"quote_id"`
	QuoteURL             *string           `json:"quote_url"`
	QuoteVisible         *bool             `json:"quote_visible"`
	Context              json.RawMessage   `json:"context"`
}

type emojiReaction struct {
	Name       string   `json:"name"`
	Count      int64    `json:"count"`
	Me         bool     `json:"me"`
	URL        *string  `json:"url"`
	AccountIDs []string `json:"account_ids"`
}

type attachment struct {
	ID          *string         `json:"id"`
	Type        *string         `json:"type"`
	URL         string          `json:"url"`
	PreviewURL  *string         `json:"preview_url"`
	RemoteURL   *string         `json:"remote_url"`
	TextURL     *string         `json:"text_url"`
	Meta        json.RawMessage `json:"meta"`
	Description *string         `json:"description"`
	Blurhash    *string         `json:"blurhash"`
	Pleroma     json.RawMessage `json:"pleroma"`
}

type mention struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Acct     string `json:"acct"`
	URL      string `json:"url"`
}

type tag struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type application struct {
	Name    string  `json:"name"`
	Website *string `json:"website"`
}

type poll struct {
	ID          *string      `json:"id"`
	ExpiresAt   *wire.Time   `json:"expires_at"`
	Expired     bool         `json:"expired"`
	Multiple    bool         `json:"multiple"`
	VotesCount  int64        `json:"votes_count"`
	VotersCount *int64       `json:"voters_count"`
	Options     []pollOption `json:"options"`
	Emojis      []emoji      `json:"emojis"`
	Voted       *bool        `json:"voted"`
	OwnVotes    []int        `json:"own_votes"`
}

type pollOption struct {
	Title      string `json:"title"`
	VotesCount *int64 `json:"votes_count"`
}

type notification struct {
	ID        *string               `json:"id"`
	Type      *string               `json:"type"`
	CreatedAt *wire.Time            `json:"created_at"`
	Account   *account              `json:"account"`
	Status    *status               `json:"status"`
	Emoji     *string               `json:"emoji"`
	EmojiURL  *string               `json:"emoji_url"`
	Target    *account              `json:"target"`
	Pleroma   *notificationExtended `json:"pleroma"`
}

type notificationExtended struct {
	IsSeen  bool `json:"is_seen"`
	IsMuted bool `json:"is_muted"`
}

type relationship struct {
	ID                  *string `json:"id"`
	Following           bool    `json:"following"`
	ShowingReblogs      bool    `json:"showing_reblogs"`
	Notifying           bool    `json:"notifying"`
	Subscribing         bool    `json:"subscribing"`
	FollowedBy          bool    `json:"followed_by"`
	Blocking            bool    `json:"blocking"`
	BlockedBy           bool    `json:"blocked_by"`
	Muting              bool    `json:"muting"`
	MutingNotifications bool    `json:"muting_notifications"`
	Requested           bool    `json:"requested"`
	DomainBlocking      bool    `json:"domain_blocking"`
	Endorsed            bool    `json:"endorsed"`
	Note                string  `json:"note"`
}

type identityProof struct {
	Provider         *string    `json:"provider"`
	ProviderUsername *string    `json:"provider_username"`
	UpdatedAt        *wire.Time `json:"updated_at"`
	ProofURL         *string    `json:"proof_url"`
	ProfileURL       *string    `json:"profile_url"`
}

type appData struct {
	ID           *string `json:"id"`
	Name         *string `json:"name"`
	Website      *string `json:"website"`
	RedirectURI  *string `json:"redirect_uri"`
	ClientID     *string `json:"client_id"`
	ClientSecret *string `json:"client_secret"`
	VapidKey     *string `json:"vapid_key"`
}

type tokenData struct {
	ID           json.RawMessage    `json:"id"`
	AccessToken  *string            `json:"access_token"`
	TokenType    *string            `json:"token_type"`
	Scope        *string            `json:"scope"`
	CreatedAt    *wire.EpochSeconds `json:"created_at"`
	RefreshToken *string            `json:"refresh_token"`
	ExpiresIn    *int64             `json:"expires_in"`
	Me           *string            `json:"me"`
}

type statusParams struct {
	Status      string      `json:"status,omitempty"`
	InReplyToID *string     `json:"in_reply_to_id,omitempty"`
	MediaIDs    []string    `json:"media_ids,omitempty"`
	Sensitive   *bool       `json:"sensitive,omitempty"`
	SpoilerText *string     `json:"spoiler_text,omitempty"`
	Visibility  string      `json:"visibility,omitempty"`
	Language    *string     `json:"language,omitempty"`
	QuoteID     *string     `json:"quote_id,omitempty"`
	Poll        *pollParams `json:"poll,omitempty"`
}

type pollParams struct {
	Options   []string `json:"options"`
	ExpiresIn int64    `json:"expires_in"`
	Multiple  bool     `json:"multiple,omitempty"`
}
