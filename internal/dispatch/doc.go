// Package dispatch turns one decoded socket request into its response.
//
// The dispatcher runs on the event loop goroutine, so it may touch the icon
// state and start a picker session without locking. Each request ends in one
// of three ways: a response is written, nothing is written, or the request is
// logged and dropped. None of them affect the next connection.
//
// Tags:
//   - 'i' sets the language icon ("eng" or "han", one trailing newline allowed)
//   - 'l' answers with the current three byte language code
//   - 'h' looks up a hangul key and lets the user pick a hanja
//   - 'e' lets the user pick an emoji
//
// Which tags are served depends on the service mode; a disabled tag is
// handled like an unknown one.
//
// Lookup misses follow the configured miss policy:
//   - silent: no response
//   - echo: the trimmed key is sent back
//   - search: a picker over every hanja entry, filtered by the key
package dispatch
