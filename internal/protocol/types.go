package protocol

import "fmt"

// Tag is the first byte of every request.
type Tag byte

const (
	TagIcon  Tag = 'i' // set the input-language icon; payload "eng" or "han"
	TagLang  Tag = 'l' // query the current language; no payload
	TagHanja Tag = 'h' // hanja lookup; payload is the hangul key
	TagEmoji Tag = 'e' // emoji picker; no payload
)

// Tags lists every known tag.
var Tags = []Tag{TagIcon, TagLang, TagHanja, TagEmoji}

func (t Tag) String() string {
	switch t {
	case TagIcon:
		return "icon"
	case TagLang:
		return "lang"
	case TagHanja:
		return "hanja"
	case TagEmoji:
		return "emoji"
	}
	return fmt.Sprintf("unknown(%#02x)", byte(t))
}

// Request is one decoded connection payload.
type Request struct {
	Tag     Tag
	Payload []byte
}

// Bytes returns the wire form of r.
func (r Request) Bytes() []byte {
	out := make([]byte, 0, 1+len(r.Payload))
	out = append(out, byte(r.Tag))
	return append(out, r.Payload...)
}
