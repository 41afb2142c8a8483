package model

// Kind identifies an entity kind handled by the lookup layer.
type Kind string

const (
	KindPlace  Kind = "place"
	KindRegion Kind = "region"
)

func (k Kind) String() string {
	return string(k)
}

// KeyNamespace returns the prefix used for fast store keys of this kind,
// e.g. "placeName".
func (k Kind) KeyNamespace() string {
	return string(k) + "Name"
}
