// Package server provides the HTTP transport for the keyturn engine.
package server
