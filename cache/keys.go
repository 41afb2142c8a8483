package cache

import (
	"strings"

	"github.com/goliatone/go-lookup-cache/model"
)

// KeySeparator defines the delimiter used between cache key segments.
const KeySeparator = ":"

// KeyBuilder builds fast store keys for named entities.
//
// Keys are derived from names, not ids: two entities of one kind sharing a
// name share a key and the last promotion wins.
type KeyBuilder interface {
	NameKey(kind model.Kind, name string) string
}

type defaultKeyBuilder struct {
	prefix string
}

// NewKeyBuilder creates a KeyBuilder producing "<kind>Name:<name>" keys,
// optionally preceded by "<prefix>:". Surrounding separators in prefix are
// trimmed.
func NewKeyBuilder(prefix string) KeyBuilder {
	return &defaultKeyBuilder{prefix: strings.Trim(prefix, KeySeparator)}
}

func (b *defaultKeyBuilder) NameKey(kind model.Kind, name string) string {
	key := kind.KeyNamespace() + KeySeparator + name
	if b.prefix == "" {
		return key
	}
	return b.prefix + KeySeparator + key
}
