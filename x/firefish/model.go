package firefish

import (
	"encoding/json"

	"github.com/totegamma/unifedi/internal/wire"
)

// Firefish speaks the Misskey API: POST-only endpoints under /api with camelCase bodies.
// https://firefish.dev/firefish/firefish/-/tree/develop/packages/backend/src/models/schema

// user covers both UserLite and UserDetailed; the detailed fields are absent on lite records.
type user struct {
	ID             *string         `json:"id"`
	Name           *string         `json:"name"`
	Username       *string         `json:"username"`
	Host           *string         `json:"host"`
	AvatarURL      *string         `json:"avatarUrl"`
	AvatarBlurhash *string         `json:"avatarBlurhash"`
	AvatarColor    *string         `json:"avatarColor"`
	IsAdmin        bool            `json:"isAdmin"`
	IsModerator    bool            `json:"isModerator"`
	IsBot          bool            `json:"isBot"`
	IsCat          bool            `json:"isCat"`
	SpeakAsCat     bool            `json:"speakAsCat"`
	IsIndexable    *bool           `json:"isIndexable"`
	Emojis         []emoji         `json:"emojis"`
	OnlineStatus   *string         `json:"onlineStatus"`
	Instance       json.RawMessage `json:"instance"`
	AlsoKnownAs    []string        `json:"alsoKnownAs"`
	MovedToURI     *string         `json:"movedToUri"`

	URL            *string    `json:"url"`
	URI            *string    `json:"uri"`
	CreatedAt      *wire.Time `json:"createdAt"`
	UpdatedAt      *wire.Time `json:"updatedAt"`
	LastFetchedAt  *wire.Time `json:"lastFetchedAt"`
	BannerURL      *string    `json:"bannerUrl"`
	BannerBlurhash *string    `json:"bannerBlurhash"`
	BannerColor    *string    `json:"bannerColor"`
	IsLocked       bool       `json:"isLocked"`
	IsSilenced     bool       `json:"isSilenced"`
	IsSuspended    bool       `json:"isSuspended"`
	IsExplorable   *bool      `json:"isExplorable"`
	Description    *string    `json:"description"`
	Location       *string    `json:"location"`
	Birthday       *string    `json:"birthday"`
	Lang           *string    `json:"lang"`
	Fields         []field    `json:"fields"`
	FollowersCount int64      `json:"followersCount"`
	FollowingCount int64      `json:"followingCount"`
	NotesCount     int64      `json:"notesCount"`
	PinnedNoteIDs  []string   `json:"pinnedNoteIds"`
	PinnedNotes    []note     `json:"pinnedNotes"`
	PublicReaction *bool      `json:"publicReactions"`
	FfVisibility   *string    `json:"ffVisibility"`

	IsFollowing                    *bool `json:"isFollowing"`
	IsFollowed                     *bool `json:"isFollowed"`
	HasPendingFollowRequestFromYou *bool `json:"hasPendingFollowRequestFromYou"`
	HasPendingFollowRequestToYou   *bool `json:"hasPendingFollowRequestToYou"`
	IsBlocking                     *bool `json:"isBlocking"`
	IsBlocked                      *bool `json:"isBlocked"`
	IsMuted                        *bool `json:"isMuted"`
	IsRenoteMuted                  *bool `json:"isRenoteMuted"`
}

type field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type emoji struct {
	Name   string  `json:"name"`
	URL    string  `json:"url"`
	Width  *int64  `json:"width"`
	Height *int64  `json:"height"`
	Type   *string `json:"type"`
}

type note struct {
	ID             *string          `json:"id"`
	CreatedAt      *wire.Time       `json:"createdAt"`
	UpdatedAt      *wire.Time       `json:"updatedAt"`
	UserID         *string          `json:"userId"`
	User           *user            `json:"user"`
	Text           *string          `json:"text"`
	CW             *string          `json:"cw"`
	Visibility     *string          `json:"visibility"`
	VisibleUserIDs []string         `json:"visibleUserIds"`
	LocalOnly      bool             `json:"localOnly"`
	Lang           *string          `json:"lang"`
	RenoteCount    int64            `json:"renoteCount"`
	RepliesCount   int64            `json:"repliesCount"`
	Reactions      map[string]int64 `json:"reactions"`
	ReactionEmojis []emoji          `json:"reactionEmojis"`
	Emojis         []emoji          `json:"emojis"`
	Tags           []string         `json:"tags"`
	FileIDs        []string         `json:"fileIds"`
	Files          []driveFile      `json:"files"`
	ReplyID        *string          `json:"replyId"`
	RenoteID       *string          `json:"renoteId"`
	Reply          *note            `json:"reply"`
	Renote         *note            `json:"renote"`
	Mentions       []string         `json:"mentions"`
	URI            *string          `json:"uri"`
	URL            *string          `json:"url"`
	MyReaction     *string          `json:"myReaction"`
	Poll           *poll            `json:"poll"`
	ChannelID      *string          `json:"channelId"`
	Channel        json.RawMessage  `json:"channel"`
}

type driveFile struct {
	ID           *string         `json:"id"`
	CreatedAt    *wire.Time      `json:"createdAt"`
	Name         string          `json:"name"`
	Type         *string         `json:"type"`
	MD5          string          `json:"md5"`
	Size         int64           `json:"size"`
	IsSensitive  bool            `json:"isSensitive"`
	Blurhash     *string         `json:"blurhash"`
	Properties   json.RawMessage `json:"properties"`
	URL          string          `json:"url"`
	ThumbnailURL *string         `json:"thumbnailUrl"`
	Comment      *string         `json:"comment"`
	FolderID     *string         `json:"folderId"`
	Folder       json.RawMessage `json:"folder"`
	UserID       *string         `json:"userId"`
	User         json.RawMessage `json:"user"`
}

type poll struct {
	ExpiresAt *wire.Time   `json:"expiresAt"`
	Multiple  bool         `json:"multiple"`
	Choices   []pollChoice `json:"choices"`
}

type pollChoice struct {
	Text    string `json:"text"`
	Votes   int64  `json:"votes"`
	IsVoted bool   `json:"isVoted"`
}

type notification struct {
	ID         *string         `json:"id"`
	CreatedAt  *wire.Time      `json:"createdAt"`
	IsRead     bool            `json:"isRead"`
	Type       *string         `json:"type"`
	UserID     *string         `json:"userId"`
	User       *user           `json:"user"`
	NoteID     *string         `json:"noteId"`
	Note       *note           `json:"note"`
	Reaction   *string         `json:"reaction"`
	Choice     *int64          `json:"choice"`
	Invitation json.RawMessage `json:"invitation"`
	Body       *string         `json:"body"`
	Header     *string         `json:"header"`
	Icon       *string         `json:"icon"`
}

// relation is the users/relation response.
type relation struct {
	ID                             *string `json:"id"`
	IsFollowing                    bool    `json:"isFollowing"`
	HasPendingFollowRequestFromYou bool    `json:"hasPendingFollowRequestFromYou"`
	HasPendingFollowRequestToYou   bool    `json:"hasPendingFollowRequestToYou"`
	IsFollowed                     bool    `json:"isFollowed"`
	IsBlocking                     bool    `json:"isBlocking"`
	IsBlocked                      bool    `json:"isBlocked"`
	IsMuted                        bool    `json:"isMuted"`
	IsRenoteMuted                  bool    `json:"isRenoteMuted"`
}

type app struct {
	ID           *string   `json:"id"`
	Name         *string   `json:"name"`
	CallbackURL  *string   `json:"callbackUrl"`
	Permission   *[]string `json:"permission"`
	Secret       *string   `json:"secret"`
	IsAuthorized *bool     `json:"isAuthorized"`
}

// token is the auth/session/userkey response. user is not projected.
type token struct {
	AccessToken *string         `json:"accessToken"`
	User        json.RawMessage `json:"user"`
}

type noteCreate struct {
	Text       *string     `json:"text,omitempty"`
	CW         *string     `json:"cw,omitempty"`
	Visibility string      `json:"visibility,omitempty"`
	ReplyID    *string     `json:"replyId,omitempty"`
	RenoteID   *string     `json:"renoteId,omitempty"`
	FileIDs    []string    `json:"fileIds,omitempty"`
	Lang       *string     `json:"lang,omitempty"`
	Poll       *pollCreate `json:"poll,omitempty"`
}

type pollCreate struct {
	Choices      []string `json:"choices"`
	Multiple     bool     `json:"multiple,omitempty"`
	ExpiredAfter int64    `json:"expiredAfter,omitempty"` // milliseconds
}
