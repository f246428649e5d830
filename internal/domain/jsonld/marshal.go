package jsonld

import "encoding/json"

// Marshal encodes v for a <script type="application/ld+json"> block.
// encoding/json escapes <, > and & so the payload cannot close the tag,
// and struct field order keeps the bytes stable across calls.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}
