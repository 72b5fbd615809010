// Package utils provides loose value conversion helpers shared by handlers
// and adapters, for values arriving as query strings, JSON numbers or
// database columns.
package utils
