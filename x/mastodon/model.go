package mastodon

import (
	"encoding/json"

	"github.com/totegamma/unifedi/internal/wire"
)

// Wire records follow https://docs.joinmastodon.org/entities/.
// Required fields are pointers so absence and null can be told apart from zero values.

type account struct {
	ID              *string           `json:"id"`
	Username        *string           `json:"username"`
	Acct            *string           `json:"acct"`
	URI             string            `json:"uri"`
	URL             *string           `json:"url"`
	DisplayName     *string           `json:"display_name"`
	Note            *string           `json:"note"`
	Avatar          *string           `json:"avatar"`
	AvatarStatic    *string           `json:"avatar_static"`
	Header          *string           `json:"header"`
	HeaderStatic    *string           `json:"header_static"`
	Locked          bool              `json:"locked"`
	Bot             bool              `json:"bot"`
	Group           bool              `json:"group"`
	Discoverable    *bool             `json:"discoverable"`
	Indexable       *bool             `json:"indexable"`
	Noindex         *bool             `json:"noindex"`
	HideCollections *bool             `json:"hide_collections"`
	Memorial        *bool             `json:"memorial"`
	Suspended       *bool             `json:"suspended"`
	Limited         *bool             `json:"limited"`
	CreatedAt       *wire.Time        `json:"created_at"`
	LastStatusAt    *string           `json:"last_status_at"`
	FollowersCount  *int64            `json:"followers_count"`
	FollowingCount  *int64            `json:"following_count"`
	StatusesCount   *int64            `json:"statuses_count"`
	Moved           *account          `json:"moved"`
	Fields          []field           `json:"fields"`
	Emojis          []emoji           `json:"emojis"`
	Roles           []json.RawMessage `json:"roles"`
	Role            json.RawMessage   `json:"role"`
	Source          json.RawMessage   `json:"source"`
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
	ID                 *string           `json:"id"`
	URI                *string           `json:"uri"`
	URL                *string           `json:"url"`
	Account            *account          `json:"account"`
	Content            *string           `json:"content"`
	Text               *string           `json:"text"`
	CreatedAt          *wire.Time        `json:"created_at"`
	EditedAt           *wire.Time        `json:"edited_at"`
	InReplyToID        *string           `json:"in_reply_to_id"`
	InReplyToAccountID *string           `json:"in_reply_to_account_id"`
	Reblog             *status           `json:"reblog"`
	MediaAttachments   []attachment      `json:"media_attachments"`
	Mentions           []mention         `json:"mentions"`
	Tags               []tag             `json:"tags"`
	Emojis             []emoji           `json:"emojis"`
	Visibility         *string           `json:"visibility"`
	FavouritesCount    *int64            `json:"favourites_count"`
	ReblogsCount       *int64            `json:"reblogs_count"`
	RepliesCount       *int64            `json:"replies_count"`
	Sensitive          bool              `json:"sensitive"`
	SpoilerText        *string           `json:"spoiler_text"`
	Language           *string           `json:"language"`
	Application        *application      `json:"application"`
	Poll               *poll             `json:"poll"`
	Card               json.RawMessage   `json:"card"`
	Filtered           []json.RawMessage `json:"filtered"`
	Favourited         *bool             `json:"favourited"`
	Reblogged          *bool             `json:"reblogged"`
	Muted              *bool             `json:"muted"`
	Bookmarked         *bool             `json:"bookmarked"`
	Pinned             *bool             `json:"pinned"`
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
	ID                         *string         `json:"id"`
	Type                       *string         `json:"type"`
	CreatedAt                  *wire.Time      `json:"created_at"`
	GroupKey                   *string         `json:"group_key"`
	Account                    *account        `json:"account"`
	Status                     *status         `json:"status"`
	Report                     *report         `json:"report"`
	RelationshipSeveranceEvent json.RawMessage `json:"relationship_severance_event"`
	ModerationWarning          json.RawMessage `json:"moderation_warning"`
}

// report is the subset of an admin report a notification projection reads.
type report struct {
	ID            string            `json:"id"`
	ActionTaken   bool              `json:"action_taken"`
	ActionTakenAt *wire.Time        `json:"action_taken_at"`
	Category      string            `json:"category"`
	Comment       string            `json:"comment"`
	Forwarded     bool              `json:"forwarded"`
	CreatedAt     *wire.Time        `json:"created_at"`
	StatusIDs     []string          `json:"status_ids"`
	RuleIDs       []string          `json:"rule_ids"`
	TargetAccount *account          `json:"target_account"`
	Rules         []json.RawMessage `json:"rules"`
}

type relationship struct {
	ID                  *string  `json:"id"`
	Following           bool     `json:"following"`
	ShowingReblogs      bool     `json:"showing_reblogs"`
	Notifying           bool     `json:"notifying"`
	Languages           []string `json:"languages"`
	FollowedBy          bool     `json:"followed_by"`
	Blocking            bool     `json:"blocking"`
	BlockedBy           bool     `json:"blocked_by"`
	Muting              bool     `json:"muting"`
	MutingNotifications bool     `json:"muting_notifications"`
	Requested           bool     `json:"requested"`
	RequestedBy         bool     `json:"requested_by"`
	DomainBlocking      bool     `json:"domain_blocking"`
	Endorsed            bool     `json:"endorsed"`
	Note                string   `json:"note"`
}

type identityProof struct {
	Provider         *string    `json:"provider"`
	ProviderUsername *string    `json:"provider_username"`
	UpdatedAt        *wire.Time `json:"updated_at"`
	ProofURL         *string    `json:"proof_url"`
	ProfileURL       *string    `json:"profile_url"`
}

// appData is the response of POST /api/v1/apps.
type appData struct {
	ID           *string  `json:"id"`
	Name         *string  `json:"name"`
	Website      *string  `json:"website"`
	RedirectURI  *string  `json:"redirect_uri"`
	RedirectURIs []string `json:"redirect_uris"`
	ClientID     *string  `json:"client_id"`
	ClientSecret *string  `json:"client_secret"`
	VapidKey     *string  `json:"vapid_key"`
	Scopes       []string `json:"scopes"`
}

// tokenData is the response of POST /oauth/token.
type tokenData struct {
	AccessToken  *string            `json:"access_token"`
	TokenType    *string            `json:"token_type"`
	Scope        *string            `json:"scope"`
	CreatedAt    *wire.EpochSeconds `json:"created_at"`
	RefreshToken *string            `json:"refresh_token"`
	ExpiresIn    *int64             `json:"expires_in"`
}

// statusParams is the body of POST /api/v1/statuses.
type statusParams struct {
	Status      string      `json:"status,omitempty"`
	InReplyToID *string     `json:"in_reply_to_id,omitempty"`
	MediaIDs    []string    `json:"media_ids,omitempty"`
	Sensitive   *bool       `json:"sensitive,omitempty"`
	SpoilerText *string     `json:"spoiler_text,omitempty"`
	Visibility  string      `json:"visibility,omitempty"`
	Language    *string     `json:"language,omitempty"`
	Poll        *pollParams `json:"poll,omitempty"`
}

type pollParams struct {
	Options   []string `json:"options"`
	ExpiresIn int64    `json:"expires_in"`
	Multiple  bool     `json:"multiple,omitempty"`
}
