//go:build wireinject

package unifedi

import (
	"github.com/google/wire"

	"github.com/totegamma/unifedi/client"
	"github.com/totegamma/unifedi/core"
	"github.com/totegamma/unifedi/x/oauth"
)

var oauthServiceProvider = wire.NewSet(oauth.NewService, provideDecoder)

func SetupDecoder(flavor core.Flavor, opts []core.Option) (core.Decoder, error) {
	wire.Build(provideDecoder)
	return nil, nil
}

func SetupOAuthService(client client.Client, flavor core.Flavor, opts []core.Option) (oauth.Service, error) {
	wire.Build(oauthServiceProvider)
	return nil, nil
}
