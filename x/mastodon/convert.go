package mastodon

import (
	"github.com/totegamma/unifedi/core"
	"github.com/totegamma/unifedi/internal/wire"
)

// poll is the only poll notification Mastodon sends, and it means "a poll you
// voted in or created has ended". PollVote therefore has no Mastodon spelling.
var notificationTypes = wire.NewTable("type", core.UnknownNotificationType,
	wire.Entry[core.NotificationType]{Variant: core.NotificationTypeFollow, Wire: "follow"},
	wire.Entry[core.NotificationType]{Variant: core.NotificationTypeFollowRequest, Wire: "follow_request"},
	wire.Entry[core.NotificationType]{Variant: core.NotificationTypeMention, Wire: "mention"},
	wire.Entry[core.NotificationType]{Variant: core.NotificationTypeReblog, Wire: "reblog"},
	wire.Entry[core.NotificationType]{Variant: core.NotificationTypeFavourite, Wire: "favourite"},
	wire.Entry[core.NotificationType]{Variant: core.NotificationTypePollExpired, Wire: "poll"},
	wire.Entry[core.NotificationType]{Variant: core.NotificationTypeStatus, Wire: "status"},
	wire.Entry[core.NotificationType]{Variant: core.NotificationTypeUpdate, Wire: "update"},
	wire.Entry[core.NotificationType]{Variant: core.NotificationTypeMove, Wire: "move"},
	wire.Entry[core.NotificationType]{Variant: core.NotificationTypeAdminSignup, Wire: "admin.sign_up"},
	wire.Entry[core.NotificationType]{Variant: core.NotificationTypeAdminReport, Wire: "admin.report"},
)

var visibilities = wire.NewTable("visibility", core.UnknownVisibility,
	wire.Entry[core.Visibility]{Variant: core.VisibilityPublic, Wire: "public"},
	wire.Entry[core.Visibility]{Variant: core.VisibilityUnlisted, Wire: "unlisted"},
	wire.Entry[core.Visibility]{Variant: core.VisibilityPrivate, Wire: "private"},
	wire.Entry[core.Visibility]{Variant: core.VisibilityDirect, Wire: "direct"},
)

var attachmentTypes = wire.NewTable("type", core.UnknownAttachmentType,
	wire.Entry[core.AttachmentType]{Variant: core.AttachmentTypeImage, Wire: "image"},
	wire.Entry[core.AttachmentType]{Variant: core.AttachmentTypeGifv, Wire: "gifv"},
	wire.Entry[core.AttachmentType]{Variant: core.AttachmentTypeVideo, Wire: "video"},
	wire.Entry[core.AttachmentType]{Variant: core.AttachmentTypeAudio, Wire: "audio"},
	wire.Entry[core.AttachmentType]{Variant: core.AttachmentTypeOther, Wire: "unknown"},
)

type converter struct {
	opts core.Options
}

func (c converter) account(a *account) (core.Account, error) {
	const entity = "account"

	id, err := wire.Required(entity, "id", a.ID)
	if err != nil {
		return core.Account{}, err
	}
	username, err := wire.Required(entity, "username", a.Username)
	if err != nil {
		return core.Account{}, err
	}
	acct, err := wire.Required(entity, "acct", a.Acct)
	if err != nil {
		return core.Account{}, err
	}
	createdAt, err := wire.Required(entity, "created_at", a.CreatedAt)
	if err != nil {
		return core.Account{}, err
	}
	err = wire.CheckRequired(entity,
		wire.Field{Name: "display_name", Missing: a.DisplayName == nil},
		wire.Field{Name: "note", Missing: a.Note == nil},
		wire.Field{Name: "url", Missing: a.URL == nil},
		wire.Field{Name: "avatar", Missing: a.Avatar == nil},
		wire.Field{Name: "avatar_static", Missing: a.AvatarStatic == nil},
		wire.Field{Name: "header", Missing: a.Header == nil},
		wire.Field{Name: "header_static", Missing: a.HeaderStatic == nil},
		wire.Field{Name: "followers_count", Missing: a.FollowersCount == nil},
		wire.Field{Name: "following_count", Missing: a.FollowingCount == nil},
		wire.Field{Name: "statuses_count", Missing: a.StatusesCount == nil},
	)
	if err != nil {
		return core.Account{}, err
	}

	var moved *core.Account
	if a.Moved != nil {
		m, err := c.account(a.Moved)
		if err != nil {
			return core.Account{}, err
		}
		moved = &m
	}

	fields := make([]core.Field, 0, len(a.Fields))
	for _, f := range a.Fields {
		fields = append(fields, core.Field{Name: f.Name, Value: f.Value, VerifiedAt: f.VerifiedAt.Ptr()})
	}

	return core.Account{
		ID:             id,
		Username:       username,
		Acct:           acct,
		DisplayName:    wire.TrimDisplayName(*a.DisplayName),
		Note:           *a.Note,
		URL:            *a.URL,
		Avatar:         *a.Avatar,
		AvatarStatic:   *a.AvatarStatic,
		Header:         *a.Header,
		HeaderStatic:   *a.HeaderStatic,
		FollowersCount: wire.Count(c.opts, entity, "followers_count", *a.FollowersCount),
		FollowingCount: wire.Count(c.opts, entity, "following_count", *a.FollowingCount),
		StatusesCount:  wire.Count(c.opts, entity, "statuses_count", *a.StatusesCount),
		CreatedAt:      createdAt.Time,
		Bot:            a.Bot,
		Locked:         a.Locked,
		Discoverable:   a.Discoverable,
		Moved:          moved,
		Fields:         fields,
		Emojis:         emojis(a.Emojis),
	}, nil
}

func emojis(es []emoji) []core.Emoji {
	result := make([]core.Emoji, 0, len(es))
	for _, e := range es {
		result = append(result, core.Emoji{
			Shortcode:       e.Shortcode,
			URL:             e.URL,
			StaticURL:       e.StaticURL,
			VisibleInPicker: e.VisibleInPicker,
			Category:        e.Category,
		})
	}
	return result
}

func (c converter) status(s *status) (core.Status, error) {
	const entity = "status"

	id, err := wire.Required(entity, "id", s.ID)
	if err != nil {
		return core.Status{}, err
	}
	uri, err := wire.Required(entity, "uri", s.URI)
	if err != nil {
		return core.Status{}, err
	}
	content, err := wire.Required(entity, "content", s.Content)
	if err != nil {
		return core.Status{}, err
	}
	createdAt, err := wire.Required(entity, "created_at", s.CreatedAt)
	if err != nil {
		return core.Status{}, err
	}
	wireAccount, err := wire.Required(entity, "account", s.Account)
	if err != nil {
		return core.Status{}, err
	}
	wireVisibility, err := wire.Required(entity, "visibility", s.Visibility)
	if err != nil {
		return core.Status{}, err
	}
	err = wire.CheckRequired(entity,
		wire.Field{Name: "favourites_count", Missing: s.FavouritesCount == nil},
		wire.Field{Name: "reblogs_count", Missing: s.ReblogsCount == nil},
		wire.Field{Name: "replies_count", Missing: s.RepliesCount == nil},
	)
	if err != nil {
		return core.Status{}, err
	}

	author, err := c.account(&wireAccount)
	if err != nil {
		return core.Status{}, err
	}
	visibility, err := visibilities.Decode(c.opts, entity, wireVisibility)
	if err != nil {
		return core.Status{}, err
	}

	var reblog *core.Status
	if s.Reblog != nil {
		r, err := c.status(s.Reblog)
		if err != nil {
			return core.Status{}, err
		}
		reblog = &r
	}

	attachments := make([]core.Attachment, 0, len(s.MediaAttachments))
	for i := range s.MediaAttachments {
		a, err := c.attachment(&s.MediaAttachments[i])
		if err != nil {
			return core.Status{}, err
		}
		attachments = append(attachments, a)
	}

	mentions := make([]core.Mention, 0, len(s.Mentions))
	for _, m := range s.Mentions {
		mentions = append(mentions, core.Mention{ID: m.ID, Username: m.Username, Acct: m.Acct, URL: m.URL})
	}

	tags := make([]core.Tag, 0, len(s.Tags))
	for _, t := range s.Tags {
		tags = append(tags, core.Tag{Name: t.Name, URL: t.URL})
	}

	var app *core.Application
	if s.Application != nil {
		app = &core.Application{Name: s.Application.Name, Website: s.Application.Website}
	}

	var p *core.Poll
	if s.Poll != nil {
		converted, err := c.poll(s.Poll)
		if err != nil {
			return core.Status{}, err
		}
		p = &converted
	}

	return core.Status{
		ID:                 id,
		URI:                uri,
		URL:                s.URL,
		Account:            author,
		Content:            content,
		PlainContent:       s.Text,
		CreatedAt:          createdAt.Time,
		EditedAt:           s.EditedAt.Ptr(),
		InReplyToID:        s.InReplyToID,
		InReplyToAccountID: s.InReplyToAccountID,
		Reblog:             reblog,
		MediaAttachments:   attachments,
		Mentions:           mentions,
		Tags:               tags,
		Emojis:             emojis(s.Emojis),
		EmojiReactions:     []core.Reaction{},
		Visibility:         visibility,
		FavouritesCount:    wire.Count(c.opts, entity, "favourites_count", *s.FavouritesCount),
		ReblogsCount:       wire.Count(c.opts, entity, "reblogs_count", *s.ReblogsCount),
		RepliesCount:       wire.Count(c.opts, entity, "replies_count", *s.RepliesCount),
		Sensitive:          s.Sensitive,
		SpoilerText:        s.SpoilerText,
		Language:           s.Language,
		Application:        app,
		Poll:               p,
		Pinned:             s.Pinned,
		Favourited:         s.Favourited,
		Reblogged:          s.Reblogged,
	}, nil
}

func (c converter) attachment(a *attachment) (core.Attachment, error) {
	const entity = "attachment"

	id, err := wire.Required(entity, "id", a.ID)
	if err != nil {
		return core.Attachment{}, err
	}
	wireType, err := wire.Required(entity, "type", a.Type)
	if err != nil {
		return core.Attachment{}, err
	}
	t, err := attachmentTypes.Decode(c.opts, entity, wireType)
	if err != nil {
		return core.Attachment{}, err
	}

	return core.Attachment{
		ID:          id,
		Type:        t,
		URL:         a.URL,
		RemoteURL:   a.RemoteURL,
		PreviewURL:  a.PreviewURL,
		Description: a.Description,
		Blurhash:    a.Blurhash,
	}, nil
}

func (c converter) poll(p *poll) (core.Poll, error) {
	const entity = "poll"

	id, err := wire.Required(entity, "id", p.ID)
	if err != nil {
		return core.Poll{}, err
	}

	options := make([]core.PollOption, 0, len(p.Options))
	for _, o := range p.Options {
		options = append(options, core.PollOption{
			Title:      o.Title,
			VotesCount: wire.OptionalCount(c.opts, entity, "options.votes_count", o.VotesCount),
		})
	}

	return core.Poll{
		ID:         id,
		ExpiresAt:  p.ExpiresAt.Ptr(),
		Expired:    p.Expired,
		Multiple:   p.Multiple,
		VotesCount: wire.Count(c.opts, entity, "votes_count", p.VotesCount),
		Options:    options,
		Voted:      p.Voted,
	}, nil
}

// notification projects n. Target is taken from the report of an admin.report
// notification; Mastodon carries no other target account.
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
	createdAt, err := wire.Required(entity, "created_at", n.CreatedAt)
	if err != nil {
		return core.Notification{}, err
	}
	wireAccount, err := wire.Required(entity, "account", n.Account)
	if err != nil {
		return core.Notification{}, err
	}

	t, err := notificationTypes.Decode(c.opts, entity, wireType)
	if err != nil {
		return core.Notification{}, err
	}

	acc, err := c.account(&wireAccount)
	if err != nil {
		return core.Notification{}, err
	}

	var st *core.Status
	if n.Status != nil {
		converted, err := c.status(n.Status)
		if err != nil {
			return core.Notification{}, err
		}
		st = &converted
	}

	var target *core.Account
	if n.Report != nil && n.Report.TargetAccount != nil {
		converted, err := c.account(n.Report.TargetAccount)
		if err != nil {
			return core.Notification{}, err
		}
		target = &converted
	}

	return core.Notification{
		ID:        id,
		CreatedAt: createdAt.Time,
		Type:      t,
		Account:   &acc,
		Status:    st,
		Target:    target,
	}, nil
}

func (c converter) relationship(r *relationship) (core.Relationship, error) {
	id, err := wire.Required("relationship", "id", r.ID)
	if err != nil {
		return core.Relationship{}, err
	}

	return core.Relationship{
		ID:                  id,
		Following:           r.Following,
		FollowedBy:          r.FollowedBy,
		Blocking:            r.Blocking,
		BlockedBy:           r.BlockedBy,
		Muting:              r.Muting,
		MutingNotifications: r.MutingNotifications,
		Requested:           r.Requested,
		DomainBlocking:      r.DomainBlocking,
		ShowingReblogs:      r.ShowingReblogs,
		Endorsed:            r.Endorsed,
		Notifying:           r.Notifying,
		Note:                r.Note,
	}, nil
}

func (c converter) identityProof(p *identityProof) (core.IdentityProof, error) {
	const entity = "identity_proof"

	provider, err := wire.Required(entity, "provider", p.Provider)
	if err != nil {
		return core.IdentityProof{}, err
	}
	providerUsername, err := wire.Required(entity, "provider_username", p.ProviderUsername)
	if err != nil {
		return core.IdentityProof{}, err
	}
	updatedAt, err := wire.Required(entity, "updated_at", p.UpdatedAt)
	if err != nil {
		return core.IdentityProof{}, err
	}
	proofURL, err := wire.Required(entity, "proof_url", p.ProofURL)
	if err != nil {
		return core.IdentityProof{}, err
	}
	profileURL, err := wire.Required(entity, "profile_url", p.ProfileURL)
	if err != nil {
		return core.IdentityProof{}, err
	}

	return core.IdentityProof{
		Provider:         provider,
		ProviderUsername: providerUsername,
		UpdatedAt:        updatedAt.Time,
		ProofURL:         proofURL,
		ProfileURL:       profileURL,
	}, nil
}

func (c converter) appData(a *appData) (core.AppData, error) {
	const entity = "app"

	id, err := wire.Required(entity, "id", a.ID)
	if err != nil {
		return core.AppData{}, err
	}
	name, err := wire.Required(entity, "name", a.Name)
	if err != nil {
		return core.AppData{}, err
	}
	clientID, err := wire.Required(entity, "client_id", a.ClientID)
	if err != nil {
		return core.AppData{}, err
	}
	clientSecret, err := wire.Required(entity, "client_secret", a.ClientSecret)
	if err != nil {
		return core.AppData{}, err
	}

	return core.AppData{
		ID:           id,
		Name:         name,
		Website:      a.Website,
		RedirectURI:  a.RedirectURI,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scopes:       a.Scopes,
	}, nil
}

func (c converter) tokenData(t *tokenData) (core.TokenData, error) {
	const entity = "token"

	accessToken, err := wire.Required(entity, "access_token", t.AccessToken)
	if err != nil {
		return core.TokenData{}, err
	}
	tokenType, err := wire.Required(entity, "token_type", t.TokenType)
	if err != nil {
		return core.TokenData{}, err
	}

	return core.TokenData{
		AccessToken:  accessToken,
		TokenType:    tokenType,
		RefreshToken: t.RefreshToken,
		Scope:        t.Scope,
		CreatedAt:    t.CreatedAt.Ptr(),
		ExpiresIn:    t.ExpiresIn,
	}, nil
}

// statusParams drops QuoteID, which Mastodon's create endpoint does not accept.
func (c converter) statusParams(p core.StatusParams) (statusParams, error) {
	result := statusParams{
		Status:      p.Status,
		InReplyToID: p.InReplyToID,
		MediaIDs:    p.MediaIDs,
		Sensitive:   p.Sensitive,
		SpoilerText: p.SpoilerText,
		Language:    p.Language,
	}

	if p.Visibility != nil {
		v, ok := visibilities.Encode(*p.Visibility)
		if !ok {
			err := core.NewUnknownVariantError("visibility", p.Visibility.String())
			err.Entity = "status_params"
			return statusParams{}, err
		}
		result.Visibility = v
	}

	if p.Poll != nil {
		result.Poll = &pollParams{
			Options:   p.Poll.Options,
			ExpiresIn: p.Poll.ExpiresIn,
			Multiple:  p.Poll.Multiple,
		}
	}

	return result, nil
}
