package core

// Decoder translates one flavor's wire format into the unified model.
// Implementations hold only their Options and are safe for concurrent use.
type Decoder interface {
	Flavor() Flavor

	Account(body []byte) (Account, error)
	Accounts(body []byte) ([]Account, error)
	Status(body []byte) (Status, error)
	Statuses(body []byte) ([]Status, error)
	Notification(body []byte) (Notification, error)
	Notifications(body []byte) ([]Notification, error)
	Relationship(body []byte) (Relationship, error)
	IdentityProofs(body []byte) ([]IdentityProof, error)
	AppData(body []byte) (AppData, error)
	TokenData(body []byte) (TokenData, error)

	// EncodeStatusParams renders a create-status request body.
	EncodeStatusParams(params StatusParams) ([]byte, error)
	// NotificationTypeWire returns the canonical wire spelling of t, if the flavor has one.
	NotificationTypeWire(t NotificationType) (string, bool)
}
