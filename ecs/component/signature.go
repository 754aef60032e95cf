package component

import "time"

// Signature is the hidden press-and-hold message on one card.
type Signature struct {
	Message      string
	Hint         string
	Hold         time.Duration
	TypeInterval time.Duration

	Holding   bool
	HoldStart time.Time

	Revealed    bool
	HintVisible bool
	Typed       int
	NextType    time.Time
}

// Text returns the typed prefix.
func (s Signature) Text() string {
	runes := []rune(s.Message)
	n := s.Typed
	if n > len(runes) {
		n = len(runes)
	}
	return string(runes[:n])
}

var SignatureComponent = NewComponent[Signature]()
