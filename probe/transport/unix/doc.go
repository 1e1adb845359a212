// Package unix implements the probe transport for Unix domain sockets, the
// default transport of the tool. It extends the base transport with Unix
// socket-specific connectors while inheriting the single-shot control flow
// from the base package.
//
// Key Components:
//
//   - serverConnector: Binds the socket path. A stale path from an earlier
//     run makes the bind fail unless force-bind is enabled, which removes
//     it first. Cleanup unlinks the path after a successful run; automatic
//     unlink-on-close of the net package is disabled so the path's
//     lifetime is fully controlled by configuration.
//
//   - clientConnector: Dials the socket path with a single attempt and can
//     optionally block beforehand until the path appears, using a
//     filesystem watch on the parent directory.
package unix
