// Package icon holds the current input-language register.
package icon

import "bytes"

// Lang is the input language shown by the indicator.
type Lang int

const (
	Eng Lang = iota
	Han
)

// Code returns the three byte wire code.
func (l Lang) Code() string {
	if l == Han {
		return "han"
	}
	return "eng"
}

func (l Lang) String() string { return l.Code() }

// ParseLang accepts exactly "eng" or "han".
func ParseLang(b []byte) (Lang, bool) {
	switch {
	case bytes.Equal(b, []byte("eng")):
		return Eng, true
	case bytes.Equal(b, []byte("han")):
		return Han, true
	}
	return Eng, false
}

//go:generate mockgen -destination=mocks/mock_indicator.go -package=mocks github.com/mattjoyce/hanpick/internal/icon Indicator

// Indicator displays the current language somewhere outside the daemon.
type Indicator interface {
	Show(lang Lang)
}

// State is the single language cell. It is touched only from the event loop
// goroutine, so it carries no lock.
type State struct {
	lang      Lang
	indicator Indicator
}

// NewState starts in Eng. A nil indicator is allowed.
func NewState(ind Indicator) *State {
	return &State{lang: Eng, indicator: ind}
}

// Set stores lang and tells the indicator.
func (s *State) Set(lang Lang) {
	s.lang = lang
	if s.indicator != nil {
		s.indicator.Show(lang)
	}
}

// Get returns the current language.
func (s *State) Get() Lang {
	return s.lang
}

// Code returns the current three byte code.
func (s *State) Code() string {
	return s.lang.Code()
}
