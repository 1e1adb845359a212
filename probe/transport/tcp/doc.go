// Package tcp implements the probe transport for TCP sockets as an
// alternate to the default Unix domain socket transport, useful when the
// two roles run on different hosts. The connectors support NoDelay,
// KeepAlive, Linger and buffer-size socket options on the client side.
package tcp
