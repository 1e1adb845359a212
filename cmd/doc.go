// Package cmd implements the command-line interface for sockprobe. It
// provides a hierarchical command structure with one command per probe role.
//
// The package is organized into several subpackages:
//
//   - serve: The receiving role (bind, accept one connection, verify)
//   - send: The probing role (connect once, deliver the message)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See sockprobe -help for a list of all commands.
package cmd
