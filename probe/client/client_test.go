package client

import (
	"bytes"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/crossworlds/sockprobe/probe/common"
	"github.com/crossworlds/sockprobe/probe/transport/unix"
)

// testClientConfig returns a client config pointed at a socket path inside
// the test's temp dir
func testClientConfig(t *testing.T) common.ClientConfig {
	t.Helper()
	return common.ClientConfig{
		Endpoint: filepath.Join(t.TempDir(), "probe.sock"),
		Text:     common.DefaultText,
		LogLevel: "error",
	}
}

// acceptOnce listens on the unix socket and returns a channel that yields
// the bytes of a single read from the first accepted connection
func acceptOnce(t *testing.T, endpoint string) chan []byte {
	t.Helper()

	listener, err := net.Listen("unix", endpoint)
	if err != nil {
		t.Fatalf("failed to listen on %s: %v", endpoint, err)
	}
	t.Cleanup(func() { listener.Close() })

	dataCh := make(chan []byte, 1)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			dataCh <- nil
			return
		}
		defer conn.Close()

		buf := make([]byte, common.DefaultBufferSize)
		n, _ := conn.Read(buf)
		dataCh <- buf[:n]
	}()
	return dataCh
}

// TestSendDeliversWireBytes tests that the client writes text plus NUL in one call
func TestSendDeliversWireBytes(t *testing.T) {
	config := testClientConfig(t)
	dataCh := acceptOnce(t, config.Endpoint)

	c := NewProbeClient(config, unix.NewUnixClientTransport())
	if err := c.Send(); err != nil {
		t.Fatalf("Send() = %v, want nil", err)
	}

	want := common.NewDefaultMessage().WireBytes()
	got := <-dataCh
	if !bytes.Equal(got, want) {
		t.Errorf("server received %q, want %q", got, want)
	}
}

// TestSendCustomText tests delivery of a non-default message text
func TestSendCustomText(t *testing.T) {
	config := testClientConfig(t)
	config.Text = "hello probe"
	dataCh := acceptOnce(t, config.Endpoint)

	c := NewProbeClient(config, unix.NewUnixClientTransport())
	if err := c.Send(); err != nil {
		t.Fatalf("Send() = %v, want nil", err)
	}

	want := append([]byte(config.Text), 0)
	got := <-dataCh
	if !bytes.Equal(got, want) {
		t.Errorf("server received %q, want %q", got, want)
	}
}

// TestSendConnectFailure tests that the single connect attempt fails fast
// when no server is listening
func TestSendConnectFailure(t *testing.T) {
	config := testClientConfig(t)

	c := NewProbeClient(config, unix.NewUnixClientTransport())

	start := time.Now()
	if err := c.Send(); err == nil {
		t.Fatal("Send() = nil without a server, want connect failure")
	}
	// A single attempt with no retries returns quickly
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Send() took %s, expected an immediate failure", elapsed)
	}
}

// TestSendWaitForSocket tests that the wait option blocks until the socket
// path appears and then connects with a single attempt
func TestSendWaitForSocket(t *testing.T) {
	config := testClientConfig(t)
	config.WaitForEndpoint = true
	config.TimeoutSecond = 5

	// Bring the server up only after a delay
	dataCh := make(chan []byte, 1)
	go func() {
		time.Sleep(200 * time.Millisecond)

		listener, err := net.Listen("unix", config.Endpoint)
		if err != nil {
			dataCh <- nil
			return
		}
		defer listener.Close()

		conn, err := listener.Accept()
		if err != nil {
			dataCh <- nil
			return
		}
		defer conn.Close()

		buf := make([]byte, common.DefaultBufferSize)
		n, _ := conn.Read(buf)
		dataCh <- buf[:n]
	}()

	c := NewProbeClient(config, unix.NewUnixClientTransport())
	if err := c.Send(); err != nil {
		t.Fatalf("Send() with wait = %v, want nil", err)
	}

	want := common.NewDefaultMessage().WireBytes()
	if got := <-dataCh; !bytes.Equal(got, want) {
		t.Errorf("server received %q, want %q", got, want)
	}
}

// TestSendWaitTimeout tests that waiting gives up when the socket never appears
func TestSendWaitTimeout(t *testing.T) {
	config := testClientConfig(t)
	config.WaitForEndpoint = true
	config.TimeoutSecond = 1

	c := NewProbeClient(config, unix.NewUnixClientTransport())
	if err := c.Send(); err == nil {
		t.Error("Send() = nil with absent endpoint, want wait timeout")
	}
}
