package schema

import "errors"

// Document pairs raw schema bytes with the location they were read from,
// so parse errors can name the offending document. Location is a file
// path, an fs.FS entry name, or a caller-supplied label for in-memory
// schemas.
type Document struct {
	location string
	raw      []byte
}

// NewDocument wraps schema bytes for parsing. An empty location is
// labeled "<inline>".
func NewDocument(location string, raw []byte) (Document, error) {
	if len(raw) == 0 {
		return Document{}, errors.New("schema: raw document is empty")
	}
	if location == "" {
		location = "<inline>"
	}

	clone := append([]byte(nil), raw...)
	return Document{location: location, raw: clone}, nil
}

// Raw returns a defensive copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the identifier parse errors are reported under.
func (d Document) Location() string {
	return d.location
}
