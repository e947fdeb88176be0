package model

//go:generate go run github.com/dmarkham/enumer -type Kind -trimprefix Kind -transform lower -json -output kind.gen.go

// Kind identifies one of the three vault record kinds. It is used for
// routing and audit and is never persisted.
type Kind int

const (
	KindAPIKey Kind = iota
	KindPassword
	KindNote
)

// SecretPlaceholder is the fixed-length mask rendered in place of a secret
// value while its record is not toggled visible.
const SecretPlaceholder = "********"

// Record is the store-facing view of a vault record. The setters have
// pointer receivers, so only *APIKey, *Password and *Note satisfy it.
type Record interface {
	GetID() string
	SetID(id string)
	GetOwner() string
	SetOwner(ownerID string)
	GetTags() []string
	RecordKind() Kind
}

// CustomField is a single user-defined label/value pair. Order within a
// record is user-significant and preserved verbatim.
type CustomField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
