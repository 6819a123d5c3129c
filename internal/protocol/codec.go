// Package protocol is the wire format of the kime window socket.
//
// A client connects, writes one tag byte followed by a raw payload, and
// shuts down its write side. The daemon answers with raw bytes (possibly
// none) and closes the connection. There is no framing and no status code:
// an empty response is a valid answer.
package protocol

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrEmpty means the client sent nothing before closing.
	ErrEmpty = errors.New("empty request")
	// ErrNotUTF8 means a payload that must be text is not valid UTF-8.
	ErrNotUTF8 = errors.New("payload is not valid UTF-8")
)

// Decode splits data into tag and payload. Unknown tags are not an error here.
func Decode(data []byte) (Request, error) {
	if len(data) == 0 {
		return Request{}, ErrEmpty
	}
	return Request{Tag: Tag(data[0]), Payload: data[1:]}, nil
}

// Encode writes the wire form of req to w.
func Encode(w io.Writer, req Request) error {
	if _, err := w.Write(req.Bytes()); err != nil {
		return fmt.Errorf("failed to write request: %w", err)
	}
	return nil
}

// IconPayload strips at most one trailing newline.
func IconPayload(p []byte) []byte {
	return bytes.TrimSuffix(p, []byte("\n"))
}

// HanjaKey validates p as UTF-8 and trims trailing whitespace.
func HanjaKey(p []byte) (string, error) {
	if !utf8.Valid(p) {
		return "", ErrNotUTF8
	}
	return strings.TrimRightFunc(string(p), unicode.IsSpace), nil
}

// ParseArg builds a request from a command-line argument: the first byte is
// the tag and the rest is the payload, with "\n" unescaped so a shell user
// can reproduce what an input method sends.
func ParseArg(arg string) (Request, error) {
	if arg == "" {
		return Request{}, ErrEmpty
	}
	payload := strings.ReplaceAll(arg[1:], `\n`, "\n")
	return Request{Tag: Tag(arg[0]), Payload: []byte(payload)}, nil
}
