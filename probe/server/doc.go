// Package server implements the receiving role of a probe run: bind the
// endpoint, accept exactly one connection, read once into a bounded buffer,
// verify the received bytes against the expected message and, on success,
// remove the endpoint so a subsequent run can bind again. Control flow is
// strictly sequential and every failure terminates the run immediately.
package server
