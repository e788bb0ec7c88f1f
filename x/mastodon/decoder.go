package mastodon

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/totegamma/unifedi/core"
	"github.com/totegamma/unifedi/internal/wire"
)

type decoder struct {
	opts core.Options
	conv converter
}

// NewDecoder creates a decoder for Mastodon-compatible servers.
func NewDecoder(opts ...core.Option) core.Decoder {
	o := core.NewOptions(opts...)
	return &decoder{opts: o, conv: converter{opts: o}}
}

func (d *decoder) Flavor() core.Flavor {
	return core.FlavorMastodon
}

func (d *decoder) Account(body []byte) (core.Account, error) {
	var a account
	if err := wire.Decode(body, &a, d.opts, "account"); err != nil {
		return core.Account{}, err
	}
	result, err := d.conv.account(&a)
	return result, core.WithEntity(err, "account")
}

func (d *decoder) Accounts(body []byte) ([]core.Account, error) {
	var list []account
	if err := wire.Decode(body, &list, d.opts, "account"); err != nil {
		return nil, err
	}
	result := make([]core.Account, 0, len(list))
	for i := range list {
		a, err := d.conv.account(&list[i])
		if err != nil {
			return nil, core.WithEntity(err, "account")
		}
		result = append(result, a)
	}
	return result, nil
}

func (d *decoder) Status(body []byte) (core.Status, error) {
	var s status
	if err := wire.Decode(body, &s, d.opts, "status"); err != nil {
		return core.Status{}, err
	}
	result, err := d.conv.status(&s)
	return result, core.WithEntity(err, "status")
}

func (d *decoder) Statuses(body []byte) ([]core.Status, error) {
	var list []status
	if err := wire.Decode(body, &list, d.opts, "status"); err != nil {
		return nil, err
	}
	result := make([]core.Status, 0, len(list))
	for i := range list {
		s, err := d.conv.status(&list[i])
		if err != nil {
			return nil, core.WithEntity(err, "status")
		}
		result = append(result, s)
	}
	return result, nil
}

func (d *decoder) Notification(body []byte) (core.Notification, error) {
	var n notification
	if err := wire.Decode(body, &n, d.opts, "notification"); err != nil {
		return core.Notification{}, err
	}
	result, err := d.conv.notification(&n)
	return result, core.WithEntity(err, "notification")
}

func (d *decoder) Notifications(body []byte) ([]core.Notification, error) {
	var list []notification
	if err := wire.Decode(body, &list, d.opts, "notification"); err != nil {
		return nil, err
	}
	result := make([]core.Notification, 0, len(list))
	for i := range list {
		n, err := d.conv.notification(&list[i])
		if err != nil {
			return nil, core.WithEntity(err, "notification")
		}
		result = append(result, n)
	}
	return result, nil
}

func (d *decoder) Relationship(body []byte) (core.Relationship, error) {
	var r relationship
	if err := wire.Decode(body, &r, d.opts, "relationship"); err != nil {
		return core.Relationship{}, err
	}
	result, err := d.conv.relationship(&r)
	return result, core.WithEntity(err, "relationship")
}

func (d *decoder) IdentityProofs(body []byte) ([]core.IdentityProof, error) {
	var list []identityProof
	if err := wire.Decode(body, &list, d.opts, "identity_proof"); err != nil {
		return nil, err
	}
	result := make([]core.IdentityProof, 0, len(list))
	for i := range list {
		p, err := d.conv.identityProof(&list[i])
		if err != nil {
			return nil, core.WithEntity(err, "identity_proof")
		}
		result = append(result, p)
	}
	return result, nil
}

func (d *decoder) AppData(body []byte) (core.AppData, error) {
	var a appData
	if err := wire.Decode(body, &a, d.opts, "app"); err != nil {
		return core.AppData{}, err
	}
	result, err := d.conv.appData(&a)
	return result, core.WithEntity(err, "app")
}

func (d *decoder) TokenData(body []byte) (core.TokenData, error) {
	var t tokenData
	if err := wire.Decode(body, &t, d.opts, "token"); err != nil {
		return core.TokenData{}, err
	}
	result, err := d.conv.tokenData(&t)
	return result, core.WithEntity(err, "token")
}

func (d *decoder) EncodeStatusParams(params core.StatusParams) ([]byte, error) {
	p, err := d.conv.statusParams(params)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(p)
	if err != nil {
		return nil, core.NewOwnError("failed to encode status params", errors.WithStack(err))
	}
	return body, nil
}

func (d *decoder) NotificationTypeWire(t core.NotificationType) (string, bool) {
	return notificationTypes.Encode(t)
}
