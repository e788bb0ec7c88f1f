package firefish

import (
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"github.com/totegamma/unifedi/core"
	"github.com/totegamma/unifedi/internal/wire"
)

// reply and mention both land on Mention; mention is listed first so it is
// the spelling used when encoding.
var notificationTypes = wire.NewTable("type", core.UnknownNotificationType,
	wire.Entry[core.NotificationType]{Variant: core.NotificationTypeFollow, Wire: "follow"},
	wire.Entry[core.NotificationType]{Variant: core.NotificationTypeFollowRequest, Wire: "receiveFollowRequest"},
	wire.Entry[core.NotificationType]{Variant: core.NotificationTypeMention, Wire: "mention"},
	wire.Entry[core.NotificationType]{Variant: core.NotificationTypeMention, Wire: "reply"},
	wire.Entry[core.NotificationType]{Variant: core.NotificationTypeReblog, Wire: "renote"},
	wire.Entry[core.NotificationType]{Variant: core.NotificationTypeFavourite, Wire: "favourite"},
	wire.Entry[core.NotificationType]{Variant: core.NotificationTypePollVote, Wire: "pollVote"},
	wire.Entry[core.NotificationType]{Variant: core.NotificationTypePollExpired, Wire: "pollEnded"},
	wire.Entry[core.NotificationType]{Variant: core.NotificationTypeEmojiReaction, Wire: "reaction"},
)

var visibilities = wire.NewTable("visibility", core.UnknownVisibility,
	wire.Entry[core.Visibility]{Variant: core.VisibilityPublic, Wire: "public"},
	wire.Entry[core.Visibility]{Variant: core.VisibilityUnlisted, Wire: "home"},
	wire.Entry[core.Visibility]{Variant: core.VisibilityPrivate, Wire: "followers"},
	wire.Entry[core.Visibility]{Variant: core.VisibilityDirect, Wire: "specified"},
)

// attachmentType maps a drive file mime type. Mime types are open-ended, so
// nothing here is an unknown variant.
func attachmentType(mime string) core.AttachmentType {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return core.AttachmentTypeImage
	case strings.HasPrefix(mime, "video/"):
		return core.AttachmentTypeVideo
	case strings.HasPrefix(mime, "audio/"):
		return core.AttachmentTypeAudio
	default:
		return core.AttachmentTypeOther
	}
}

type converter struct {
	opts core.Options
	now  func() time.Time
}

func (c converter) account(u *user) (core.Account, error) {
	const entity = "account"

	id, err := wire.Required(entity, "id", u.ID)
	if err != nil {
		return core.Account{}, err
	}
	username, err := wire.Required(entity, "username", u.Username)
	if err != nil {
		return core.Account{}, err
	}

	acct := username
	if u.Host != nil && *u.Host != "" {
		acct = username + "@" + *u.Host
	}

	// name is null or empty until the user sets one
	displayName := username
	if u.Name != nil && *u.Name != "" {
		displayName = *u.Name
	}

	// profile page, else the actor uri; local users carry neither
	url := wire.Deref(u.URL)
	if url == "" {
		url = wire.Deref(u.URI)
	}

	// UserLite carries no createdAt; such accounts keep the zero time.
	var createdAt time.Time
	if u.CreatedAt != nil {
		createdAt = u.CreatedAt.Time
	}

	discoverable := u.IsExplorable
	if discoverable == nil {
		discoverable = u.IsIndexable
	}

	fields := make([]core.Field, 0, len(u.Fields))
	for _, f := range u.Fields {
		fields = append(fields, core.Field{Name: f.Name, Value: f.Value})
	}

	avatar := wire.Deref(u.AvatarURL)
	header := wire.Deref(u.BannerURL)

	return core.Account{
		ID:             id,
		Username:       username,
		Acct:           acct,
		DisplayName:    wire.TrimDisplayName(displayName),
		Note:           wire.Deref(u.Description),
		URL:            url,
		Avatar:         avatar,
		AvatarStatic:   avatar,
		Header:         header,
		HeaderStatic:   header,
		FollowersCount: wire.Count(c.opts, entity, "followersCount", u.FollowersCount),
		FollowingCount: wire.Count(c.opts, entity, "followingCount", u.FollowingCount),
		StatusesCount:  wire.Count(c.opts, entity, "notesCount", u.NotesCount),
		CreatedAt:      createdAt,
		Bot:            u.IsBot,
		Locked:         u.IsLocked,
		Discoverable:   discoverable,
		Fields:         fields,
		Emojis:         emojis(u.Emojis),
	}, nil
}

func emojis(es []emoji) []core.Emoji {
	result := make([]core.Emoji, 0, len(es))
	for _, e := range es {
		result = append(result, core.Emoji{
			Shortcode: e.Name,
			URL:       e.URL,
			StaticURL: e.URL,
		})
	}
	return result
}

// status projects a note. A pure renote (no text, files or poll of its own)
// becomes Reblog; a renote with its own body is a quote.
func (c converter) status(n *note) (core.Status, error) {
	const entity = "status"

	id, err := wire.Required(entity, "id", n.ID)
	if err != nil {
		return core.Status{}, err
	}
	createdAt, err := wire.Required(entity, "createdAt", n.CreatedAt)
	if err != nil {
		return core.Status{}, err
	}
	wireUser, err := wire.Required(entity, "user", n.User)
	if err != nil {
		return core.Status{}, err
	}
	wireVisibility, err := wire.Required(entity, "visibility", n.Visibility)
	if err != nil {
		return core.Status{}, err
	}

	author, err := c.account(&wireUser)
	if err != nil {
		return core.Status{}, err
	}
	visibility, err := visibilities.Decode(c.opts, entity, wireVisibility)
	if err != nil {
		return core.Status{}, err
	}

	var reblog, quote *core.Status
	if n.Renote != nil {
		r, err := c.status(n.Renote)
		if err != nil {
			return core.Status{}, err
		}
		if n.Text == nil && len(n.Files) == 0 && n.Poll == nil {
			reblog = &r
		} else {
			quote = &r
		}
	}

	var inReplyToAccountID *string
	if n.Reply != nil {
		inReplyToAccountID = n.Reply.UserID
	}

	sensitive := false
	attachments := make([]core.Attachment, 0, len(n.Files))
	for i := range n.Files {
		a, err := c.attachment(&n.Files[i])
		if err != nil {
			return core.Status{}, err
		}
		sensitive = sensitive || n.Files[i].IsSensitive
		attachments = append(attachments, a)
	}

	// mentions only carry user ids
	mentions := make([]core.Mention, 0, len(n.Mentions))
	for _, userID := range n.Mentions {
		mentions = append(mentions, core.Mention{ID: userID})
	}

	tags := make([]core.Tag, 0, len(n.Tags))
	for _, t := range n.Tags {
		tags = append(tags, core.Tag{Name: t})
	}

	var p *core.Poll
	if n.Poll != nil {
		converted := c.poll(id, n.Poll)
		p = &converted
	}

	// uri, else url; local notes carry neither and keep an empty URI
	uri := wire.Deref(n.URI)
	if uri == "" {
		uri = wire.Deref(n.URL)
	}

	return core.Status{
		ID:                 id,
		URI:                uri,
		URL:                n.URL,
		Account:            author,
		Content:            wire.Deref(n.Text),
		PlainContent:       n.Text,
		CreatedAt:          createdAt.Time,
		EditedAt:           n.UpdatedAt.Ptr(),
		InReplyToID:        n.ReplyID,
		InReplyToAccountID: inReplyToAccountID,
		Reblog:             reblog,
		Quote:              quote,
		MediaAttachments:   attachments,
		Mentions:           mentions,
		Tags:               tags,
		Emojis:             emojis(n.Emojis),
		EmojiReactions:     c.reactions(n),
		Visibility:         visibility,
		ReblogsCount:       wire.Count(c.opts, entity, "renoteCount", n.RenoteCount),
		RepliesCount:       wire.Count(c.opts, entity, "repliesCount", n.RepliesCount),
		Sensitive:          sensitive,
		SpoilerText:        n.CW,
		Language:           n.Lang,
		Poll:               p,
	}, nil
}

// reactionName turns ":blobcat@.:" into "blobcat" and ":blobcat@host:" into
// "blobcat@host". Unicode reactions pass through.
func reactionName(key string) string {
	if len(key) < 2 || !strings.HasPrefix(key, ":") || !strings.HasSuffix(key, ":") {
		return key
	}
	return strings.TrimSuffix(key[1:len(key)-1], "@.")
}

// reactions flattens the reaction map, most used first and then by name.
func (c converter) reactions(n *note) []core.Reaction {
	urls := make(map[string]string, len(n.ReactionEmojis)+len(n.Emojis))
	for _, e := range n.Emojis {
		urls[e.Name] = e.URL
	}
	for _, e := range n.ReactionEmojis {
		urls[e.Name] = e.URL
	}

	result := make([]core.Reaction, 0, len(n.Reactions))
	for key, count := range n.Reactions {
		name := reactionName(key)
		r := core.Reaction{
			Name:  name,
			Count: wire.Count(c.opts, "status", "reactions", count),
			Me:    n.MyReaction != nil && *n.MyReaction == key,
		}
		if url, ok := urls[name]; ok {
			r.URL = &url
		}
		result = append(result, r)
	}

	slices.SortFunc(result, func(a, b core.Reaction) int {
		if a.Count != b.Count {
			if a.Count > b.Count {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
	return result
}

func (c converter) attachment(f *driveFile) (core.Attachment, error) {
	const entity = "attachment"

	id, err := wire.Required(entity, "id", f.ID)
	if err != nil {
		return core.Attachment{}, err
	}
	mime, err := wire.Required(entity, "type", f.Type)
	if err != nil {
		return core.Attachment{}, err
	}

	return core.Attachment{
		ID:          id,
		Type:        attachmentType(mime),
		URL:         f.URL,
		PreviewURL:  f.ThumbnailURL,
		Description: f.Comment,
		Blurhash:    f.Blurhash,
	}, nil
}

// poll has no id of its own on Firefish, it borrows the note's.
func (c converter) poll(noteID string, p *poll) core.Poll {
	var total uint64
	voted := false
	options := make([]core.PollOption, 0, len(p.Choices))
	for _, choice := range p.Choices {
		votes := wire.Count(c.opts, "poll", "choices.votes", choice.Votes)
		total += votes
		voted = voted || choice.IsVoted
		options = append(options, core.PollOption{Title: choice.Text, VotesCount: &votes})
	}

	expiresAt := p.ExpiresAt.Ptr()
	return core.Poll{
		ID:         noteID,
		ExpiresAt:  expiresAt,
		Expired:    expiresAt != nil && !expiresAt.After(c.now()),
		Multiple:   p.Multiple,
		VotesCount: total,
		Options:    options,
		Voted:      &voted,
	}
}

func (c converter) notification(n *notification) (core.Notification, error) {
	const entity = "notification"

	id, err := wire.Required(entity, "id", n.ID)
	if err != nil {
		return core.Notification{}, err
	}
	wireType, err := wire.Required(entity, "type", n.Type)
	if err != nil {
		return core.Notification{}, err
	}
	createdAt, err := wire.Required(entity, "createdAt", n.CreatedAt)
	if err != nil {
		return core.Notification{}, err
	}

	t, err := notificationTypes.Decode(c.opts, entity, wireType)
	if err != nil {
		return core.Notification{}, err
	}

	// system notifications such as pollEnded have no user
	var acc *core.Account
	if n.User != nil {
		converted, err := c.account(n.User)
		if err != nil {
			return core.Notification{}, err
		}
		acc = &converted
	}

	var st *core.Status
	if n.Note != nil {
		converted, err := c.status(n.Note)
		if err != nil {
			return core.Notification{}, err
		}
		st = &converted
	}

	return core.Notification{
		ID:        id,
		CreatedAt: createdAt.Time,
		Type:      t,
		Account:   acc,
		Status:    st,
		Emoji:     n.Reaction,
	}, nil
}

func (c converter) relationship(r *relation) (core.Relationship, error) {
	id, err := wire.Required("relationship", "id", r.ID)
	if err != nil {
		return core.Relationship{}, err
	}

	return core.Relationship{
		ID:             id,
		Following:      r.IsFollowing,
		FollowedBy:     r.IsFollowed,
		Blocking:       r.IsBlocking,
		BlockedBy:      r.IsBlocked,
		Muting:         r.IsMuted,
		Requested:      r.HasPendingFollowRequestFromYou,
		ShowingReblogs: r.IsFollowing && !r.IsRenoteMuted,
	}, nil
}

// appData projects an app/create response. The app id doubles as the OAuth
// client id, and there is no website.
func (c converter) appData(a *app) (core.AppData, error) {
	const entity = "app"

	id, err := wire.Required(entity, "id", a.ID)
	if err != nil {
		return core.AppData{}, err
	}
	name, err := wire.Required(entity, "name", a.Name)
	if err != nil {
		return core.AppData{}, err
	}
	secret, err := wire.Required(entity, "secret", a.Secret)
	if err != nil {
		return core.AppData{}, err
	}
	permission, err := wire.Required(entity, "permission", a.Permission)
	if err != nil {
		return core.AppData{}, err
	}
	if permission == nil {
		permission = []string{}
	}

	return core.AppData{
		ID:           id,
		Name:         name,
		RedirectURI:  a.CallbackURL,
		ClientID:     id,
		ClientSecret: secret,
		Scopes:       permission,
	}, nil
}

// tokenData keeps the flavor name as token type so the transport can pick
// the authorization scheme.
func (c converter) tokenData(t *token) (core.TokenData, error) {
	accessToken, err := wire.Required("token", "accessToken", t.AccessToken)
	if err != nil {
		return core.TokenData{}, err
	}

	return core.TokenData{
		AccessToken: accessToken,
		TokenType:   core.FlavorFirefish.DisplayName(),
	}, nil
}

// noteCreate builds a notes/create body. Quotes go out as renoteId; a reply
// and a quote together are sent as is and left for the server to judge.
func (c converter) noteCreate(p core.StatusParams) (noteCreate, error) {
	result := noteCreate{
		CW:       p.SpoilerText,
		ReplyID:  p.InReplyToID,
		RenoteID: p.QuoteID,
		FileIDs:  p.MediaIDs,
		Lang:     p.Language,
	}
	if p.Status != "" {
		text := p.Status
		result.Text = &text
	}

	if p.Visibility != nil {
		v, ok := visibilities.Encode(*p.Visibility)
		if !ok {
			err := core.NewUnknownVariantError("visibility", p.Visibility.String())
			err.Entity = "status_params"
			return noteCreate{}, err
		}
		result.Visibility = v
	}

	if p.Poll != nil {
		result.Poll = &pollCreate{
			Choices:      p.Poll.Options,
			Multiple:     p.Poll.Multiple,
			ExpiredAfter: p.Poll.ExpiresIn * 1000,
		}
	}

	return result, nil
}
