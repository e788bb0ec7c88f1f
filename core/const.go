package core

import (
	"encoding/json"
)

// NotificationType is the unified notification kind.
// The zero value is not a valid variant.
type NotificationType struct {
	name    string
	unknown bool
}

var (
	NotificationTypeFollow        = NotificationType{name: "follow"}
	NotificationTypeFollowRequest = NotificationType{name: "follow_request"}
	NotificationTypeMention       = NotificationType{name: "mention"}
	NotificationTypeReblog        = NotificationType{name: "reblog"}
	NotificationTypeFavourite     = NotificationType{name: "favourite"}
	NotificationTypePollVote      = NotificationType{name: "poll_vote"}
	NotificationTypePollExpired   = NotificationType{name: "poll_expired"}
	NotificationTypeEmojiReaction = NotificationType{name: "emoji_reaction"}
	NotificationTypeStatus        = NotificationType{name: "status"}
	NotificationTypeUpdate        = NotificationType{name: "update"}
	NotificationTypeMove          = NotificationType{name: "move"}
	NotificationTypeAdminSignup   = NotificationType{name: "admin.sign_up"}
	NotificationTypeAdminReport   = NotificationType{name: "admin.report"}
)

// NotificationTypes lists every known variant.
var NotificationTypes = []NotificationType{
	NotificationTypeFollow,
	NotificationTypeFollowRequest,
	NotificationTypeMention,
	NotificationTypeReblog,
	NotificationTypeFavourite,
	NotificationTypePollVote,
	NotificationTypePollExpired,
	NotificationTypeEmojiReaction,
	NotificationTypeStatus,
	NotificationTypeUpdate,
	NotificationTypeMove,
	NotificationTypeAdminSignup,
	NotificationTypeAdminReport,
}

// UnknownNotificationType keeps an unrecognized wire spelling.
// It never compares equal to a known variant, even with the same spelling.
func UnknownNotificationType(raw string) NotificationType {
	return NotificationType{name: raw, unknown: true}
}

// ParseNotificationType parses a unified spelling.
func ParseNotificationType(s string) (NotificationType, error) {
	for _, t := range NotificationTypes {
		if t.name == s {
			return t, nil
		}
	}
	return NotificationType{}, NewUnknownVariantError("type", s)
}

func (t NotificationType) String() string {
	return t.name
}

func (t NotificationType) IsUnknown() bool {
	return t.unknown
}

func (t NotificationType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.name)
}

// Visibility is the unified status visibility.
type Visibility struct {
	name    string
	unknown bool
}

var (
	VisibilityPublic   = Visibility{name: "public"}
	VisibilityUnlisted = Visibility{name: "unlisted"}
	VisibilityPrivate  = Visibility{name: "private"}
	VisibilityDirect   = Visibility{name: "direct"}
)

var Visibilities = []Visibility{
	VisibilityPublic,
	VisibilityUnlisted,
	VisibilityPrivate,
	VisibilityDirect,
}

func UnknownVisibility(raw string) Visibility {
	return Visibility{name: raw, unknown: true}
}

func ParseVisibility(s string) (Visibility, error) {
	for _, v := range Visibilities {
		if v.name == s {
			return v, nil
		}
	}
	return Visibility{}, NewUnknownVariantError("visibility", s)
}

func (v Visibility) String() string {
	return v.name
}

func (v Visibility) IsUnknown() bool {
	return v.unknown
}

func (v Visibility) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.name)
}

// AttachmentType is the unified media kind.
type AttachmentType struct {
	name    string
	unknown bool
}

var (
	AttachmentTypeImage = AttachmentType{name: "image"}
	AttachmentTypeGifv  = AttachmentType{name: "gifv"}
	AttachmentTypeVideo = AttachmentType{name: "video"}
	AttachmentTypeAudio = AttachmentType{name: "audio"}
	AttachmentTypeOther = AttachmentType{name: "unknown"}
)

var AttachmentTypes = []AttachmentType{
	AttachmentTypeImage,
	AttachmentTypeGifv,
	AttachmentTypeVideo,
	AttachmentTypeAudio,
	AttachmentTypeOther,
}

func UnknownAttachmentType(raw string) AttachmentType {
	return AttachmentType{name: raw, unknown: true}
}

func ParseAttachmentType(s string) (AttachmentType, error) {
	for _, a := range AttachmentTypes {
		if a.name == s {
			return a, nil
		}
	}
	return AttachmentType{}, NewUnknownVariantError("type", s)
}

func (a AttachmentType) String() string {
	return a.name
}

func (a AttachmentType) IsUnknown() bool {
	return a.unknown
}

func (a AttachmentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.name)
}

// Flavor identifies a backend server family.
type Flavor int

const (
	FlavorUnknown Flavor = iota
	FlavorMastodon
	FlavorPleroma
	FlavorFirefish
)

// DisplayName is the stable flavor name. Firefish token data carries it as
// the token type so the transport can pick the authorization scheme.
func (f Flavor) DisplayName() string {
	switch f {
	case FlavorMastodon:
		return "Mastodon"
	case FlavorPleroma:
		return "Pleroma"
	case FlavorFirefish:
		return "Firefish"
	default:
		return "Unknown"
	}
}

func (f Flavor) String() string {
	return f.DisplayName()
}

// ParseFlavor accepts the lower-case config spelling of a flavor.
func ParseFlavor(s string) (Flavor, error) {
	switch s {
	case "mastodon":
		return FlavorMastodon, nil
	case "pleroma", "akkoma":
		return FlavorPleroma, nil
	case "firefish", "misskey", "calckey":
		return FlavorFirefish, nil
	default:
		return FlavorUnknown, NewUnknownVariantError("flavor", s)
	}
}
