package core

import (
	"time"
)

// Account is a user on any flavor.
type Account struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Acct           string    `json:"acct"` // username for local users, username@host for remote ones
	DisplayName    string    `json:"display_name"`
	Note           string    `json:"note"`
	URL            string    `json:"url"`
	Avatar         string    `json:"avatar"`
	AvatarStatic   string    `json:"avatar_static"`
	Header         string    `json:"header"`
	HeaderStatic   string    `json:"header_static"`
	FollowersCount uint64    `json:"followers_count"`
	FollowingCount uint64    `json:"following_count"`
	StatusesCount  uint64    `json:"statuses_count"`
	CreatedAt      time.Time `json:"created_at"`
	Bot            bool      `json:"bot"`
	Locked         bool      `json:"locked"`
	Discoverable   *bool     `json:"discoverable,omitempty"`
	Moved          *Account  `json:"moved,omitempty"`
	Fields         []Field   `json:"fields"`
	Emojis         []Emoji   `json:"emojis"`
}

type Field struct {
	Name       string     `json:"name"`
	Value      string     `json:"value"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
}

// Emoji is a custom emoji.
type Emoji struct {
	Shortcode       string  `json:"shortcode"`
	URL             string  `json:"url"`
	StaticURL       string  `json:"static_url"`
	VisibleInPicker bool    `json:"visible_in_picker"`
	Category        *string `json:"category,omitempty"`
}

// Status is a post.
type Status struct {
	ID                 string       `json:"id"`
	URI                string       `json:"uri"`
	URL                *string      `json:"url,omitempty"`
	Account            Account      `json:"account"`
	Content            string       `json:"content"`
	PlainContent       *string      `json:"plain_content,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
	EditedAt           *time.Time   `json:"edited_at,omitempty"`
	InReplyToID        *string      `json:"in_reply_to_id,omitempty"`
	InReplyToAccountID *string      `json:"in_reply_to_account_id,omitempty"`
	Reblog             *Status      `json:"reblog,omitempty"`
	Quote              *Status      `json:"quote,omitempty"`
	MediaAttachments   []Attachment `json:"media_attachments"`
	Mentions           []Mention    `json:"mentions"`
	Tags               []Tag        `json:"tags"`
	Emojis             []Emoji      `json:"emojis"`
	EmojiReactions     []Reaction   `json:"emoji_reactions"`
	Visibility         Visibility   `json:"visibility"`
	FavouritesCount    uint64       `json:"favourites_count"`
	ReblogsCount       uint64       `json:"reblogs_count"`
	RepliesCount       uint64       `json:"replies_count"`
	Sensitive          bool         `json:"sensitive"`
	SpoilerText        *string      `json:"spoiler_text,omitempty"`
	Language           *string      `json:"language,omitempty"`
	Application        *Application `json:"application,omitempty"`
	Poll               *Poll        `json:"poll,omitempty"`
	Pinned             *bool        `json:"pinned,omitempty"`
	Favourited         *bool        `json:"favourited,omitempty"`
	Reblogged          *bool        `json:"reblogged,omitempty"`
}

type Attachment struct {
	ID          string         `json:"id"`
	Type        AttachmentType `json:"type"`
	URL         string         `json:"url"`
	RemoteURL   *string        `json:"remote_url,omitempty"`
	PreviewURL  *string        `json:"preview_url,omitempty"`
	Description *string        `json:"description,omitempty"`
	Blurhash    *string        `json:"blurhash,omitempty"`
}

type Mention struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Acct     string `json:"acct"`
	URL      string `json:"url"`
}

type Tag struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Reaction is an emoji reaction aggregated over all reacting accounts.
type Reaction struct {
	Name      string  `json:"name"`
	Count     uint64  `json:"count"`
	Me        bool    `json:"me"`
	URL       *string `json:"url,omitempty"`
	StaticURL *string `json:"static_url,omitempty"`
}

// Application is the client a status was posted from.
type Application struct {
	Name    string  `json:"name"`
	Website *string `json:"website,omitempty"`
}

type Poll struct {
	ID         string       `json:"id"`
	ExpiresAt  *time.Time   `json:"expires_at,omitempty"`
	Expired    bool         `json:"expired"`
	Multiple   bool         `json:"multiple"`
	VotesCount uint64       `json:"votes_count"`
	Options    []PollOption `json:"options"`
	Voted      *bool        `json:"voted,omitempty"`
}

type PollOption struct {
	Title      string  `json:"title"`
	VotesCount *uint64 `json:"votes_count,omitempty"`
}

// Notification is an event addressed to the authenticated account.
type Notification struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Type      NotificationType `json:"type"`
	Account   *Account         `json:"account,omitempty"`
	Status    *Status          `json:"status,omitempty"`
	Target    *Account         `json:"target,omitempty"` // move and admin events
	Emoji     *string          `json:"emoji,omitempty"`  // reaction events
}

type Relationship struct {
	ID                  string `json:"id"`
	Following           bool   `json:"following"`
	FollowedBy          bool   `json:"followed_by"`
	Blocking            bool   `json:"blocking"`
	BlockedBy           bool   `json:"blocked_by"`
	Muting              bool   `json:"muting"`
	MutingNotifications bool   `json:"muting_notifications"`
	Requested           bool   `json:"requested"`
	DomainBlocking      bool   `json:"domain_blocking"`
	ShowingReblogs      bool   `json:"showing_reblogs"`
	Endorsed            bool   `json:"endorsed"`
	Notifying           bool   `json:"notifying"`
	Note                string `json:"note"`
}

// IdentityProof is a third-party verification (ex: keybase) that an account
// controls an external identity.
type IdentityProof struct {
	Provider         string    `json:"provider"`
	ProviderUsername string    `json:"provider_username"`
	UpdatedAt        time.Time `json:"updated_at"`
	ProofURL         string    `json:"proof_url"`
	ProfileURL       string    `json:"profile_url"`
}

// StatusParams is the unified payload for creating a status.
type StatusParams struct {
	Status      string
	InReplyToID *string
	MediaIDs    []string
	Sensitive   *bool
	SpoilerText *string
	Visibility  *Visibility
	Language    *string
	QuoteID     *string
	Poll        *PollParams
}

type PollParams struct {
	Options   []string
	ExpiresIn int64 // seconds
	Multiple  bool
}
