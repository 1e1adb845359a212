// Package client implements the probing role: connect to the endpoint with
// a single attempt and deliver the fixed message in one write.
package client
