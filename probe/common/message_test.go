package common

import (
	"errors"
	"testing"
)

// TestMessageWireBytes tests the wire encoding: text plus one NUL terminator
func TestMessageWireBytes(t *testing.T) {
	msg := NewDefaultMessage()

	wire := msg.WireBytes()
	if len(wire) != len(DefaultText)+1 {
		t.Errorf("wire length is %d, want %d", len(wire), len(DefaultText)+1)
	}
	if msg.WireLen() != len(wire) {
		t.Errorf("WireLen() is %d, want %d", msg.WireLen(), len(wire))
	}
	if string(wire[:len(DefaultText)]) != DefaultText {
		t.Errorf("wire text is %q, want %q", wire[:len(DefaultText)], DefaultText)
	}
	if wire[len(wire)-1] != 0 {
		t.Errorf("wire terminator is %#x, want NUL", wire[len(wire)-1])
	}
}

// TestMessageVerify tests the length-bounded comparison of the leading text bytes
func TestMessageVerify(t *testing.T) {
	msg := NewDefaultMessage()

	tests := []struct {
		name    string
		buf     []byte
		wantErr bool
	}{
		{
			name: "exact wire bytes",
			buf:  msg.WireBytes(),
		},
		{
			name: "text without terminator",
			buf:  []byte(DefaultText),
		},
		{
			name: "full receive buffer with trailing zeros",
			buf:  append(msg.WireBytes(), make([]byte, DefaultBufferSize-msg.WireLen())...),
		},
		{
			name: "trailing junk after the text is ignored",
			buf:  append([]byte(DefaultText), []byte("garbage")...),
		},
		{
			name:    "first byte differs",
			buf:     []byte("Xrom client\x00"),
			wantErr: true,
		},
		{
			name:    "last text byte differs",
			buf:     []byte("From clienX\x00"),
			wantErr: true,
		},
		{
			name:    "different message",
			buf:     []byte("From server\x00"),
			wantErr: true,
		},
		{
			name:    "shorter than the text",
			buf:     []byte("From cli"),
			wantErr: true,
		},
		{
			name:    "empty buffer",
			buf:     []byte{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := msg.Verify(tt.buf)
			if tt.wantErr {
				if !errors.Is(err, ErrMessageMismatch) {
					t.Errorf("Verify(%q) = %v, want ErrMessageMismatch", tt.buf, err)
				}
			} else if err != nil {
				t.Errorf("Verify(%q) = %v, want nil", tt.buf, err)
			}
		})
	}
}

// TestServerConfigValidate tests the buffer capacity invariant
func TestServerConfigValidate(t *testing.T) {
	wireLen := len(DefaultText) + 1

	tests := []struct {
		name       string
		bufferSize int
		wantErr    bool
	}{
		{name: "default buffer", bufferSize: DefaultBufferSize},
		{name: "one byte headroom", bufferSize: wireLen + 1},
		{name: "buffer equals wire length", bufferSize: wireLen, wantErr: true},
		{name: "buffer below wire length", bufferSize: wireLen - 1, wantErr: true},
		{name: "zero buffer", bufferSize: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := ServerConfig{
				Endpoint:     DefaultEndpoint,
				ExpectedText: DefaultText,
				BufferSize:   tt.bufferSize,
			}
			err := config.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("Validate() with buffer %d = nil, want error", tt.bufferSize)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() with buffer %d = %v, want nil", tt.bufferSize, err)
			}
		})
	}
}

// TestInitLoggers tests log level parsing via the public entry point
func TestInitLoggers(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "warning", "error"} {
		if err := InitLoggers(level); err != nil {
			t.Errorf("InitLoggers(%q) = %v, want nil", level, err)
		}
	}
	if err := InitLoggers("verbose"); err == nil {
		t.Error("InitLoggers(\"verbose\") = nil, want error")
	}
}
