// Package unifedi decodes Mastodon, Pleroma and Firefish API responses into
// one model.
package unifedi

import (
	"github.com/totegamma/unifedi/core"
	"github.com/totegamma/unifedi/x/firefish"
	"github.com/totegamma/unifedi/x/mastodon"
	"github.com/totegamma/unifedi/x/pleroma"
)

// NewDecoder returns the decoder for flavor.
func NewDecoder(flavor core.Flavor, opts ...core.Option) (core.Decoder, error) {
	switch flavor {
	case core.FlavorMastodon:
		return mastodon.NewDecoder(opts...), nil
	case core.FlavorPleroma:
		return pleroma.NewDecoder(opts...), nil
	case core.FlavorFirefish:
		return firefish.NewDecoder(opts...), nil
	default:
		return nil, core.NewUnknownVariantError("flavor", flavor.DisplayName())
	}
}

func provideDecoder(flavor core.Flavor, opts []core.Option) (core.Decoder, error) {
	return NewDecoder(flavor, opts...)
}

// Entities lists the names DecodeEntity accepts.
var Entities = []string{
	"account", "accounts",
	"status", "statuses",
	"notification", "notifications",
	"relationship",
	"identity_proofs",
	"app",
	"token",
}

// DecodeEntity decodes body as the named entity.
func DecodeEntity(decoder core.Decoder, entity string, body []byte) (any, error) {
	switch entity {
	case "account":
		return decoder.Account(body)
	case "accounts":
		return decoder.Accounts(body)
	case "status":
		return decoder.Status(body)
	case "statuses":
		return decoder.Statuses(body)
	case "notification":
		return decoder.Notification(body)
	case "notifications":
		return decoder.Notifications(body)
	case "relationship":
		return decoder.Relationship(body)
	case "identity_proofs":
		return decoder.IdentityProofs(body)
	case "app":
		return decoder.AppData(body)
	case "token":
		return decoder.TokenData(body)
	default:
		return nil, core.NewUnknownVariantError("entity", entity)
	}
}
