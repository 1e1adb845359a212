package common

import (
	"bytes"
	"errors"
	"fmt"
)

const (
	// DefaultEndpoint is the well-known socket path both roles use unless
	// configured otherwise
	DefaultEndpoint = "cross_worlds_unix_socket"

	// DefaultText is the message text the client delivers
	DefaultText = "From client"

	// DefaultBufferSize is the capacity of the server's receive buffer
	DefaultBufferSize = 32
)

// ErrMessageMismatch indicates the received bytes do not match the
// expected message text
var ErrMessageMismatch = errors.New("message mismatch")

// --------------------------------------------------------------------------
// Message
// --------------------------------------------------------------------------

// Message is the fixed probe payload. On the wire it is the message text
// followed by a single NUL terminator; verification covers only the text
// bytes, so trailing buffer content is ignored.
type Message struct {
	text string
}

// NewMessage creates a message with the given text
func NewMessage(text string) Message {
	return Message{text: text}
}

// NewDefaultMessage creates the default probe message
func NewDefaultMessage() Message {
	return NewMessage(DefaultText)
}

// Text returns the message text without the terminator
func (m Message) Text() string {
	return m.text
}

// WireBytes returns the bytes written to the socket: the text plus one
// NUL terminator
func (m Message) WireBytes() []byte {
	b := make([]byte, 0, len(m.text)+1)
	b = append(b, m.text...)
	b = append(b, 0)
	return b
}

// WireLen returns the number of bytes WireBytes produces
func (m Message) WireLen() int {
	return len(m.text) + 1
}

// Verify performs a length-bounded comparison of the leading text bytes
// of buf against the message text. It returns ErrMessageMismatch (wrapped
// with a diagnostic) if buf is shorter than the text or differs in any of
// the leading bytes.
func (m Message) Verify(buf []byte) error {
	want := []byte(m.text)
	if len(buf) < len(want) {
		return fmt.Errorf("%w: received %d bytes, expected at least %d", ErrMessageMismatch, len(buf), len(want))
	}
	if !bytes.Equal(buf[:len(want)], want) {
		return fmt.Errorf("%w: got %q, want %q", ErrMessageMismatch, buf[:len(want)], want)
	}
	return nil
}
