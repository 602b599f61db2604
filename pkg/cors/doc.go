// Package cors provides net/http middleware for Cross-Origin Resource
// Sharing with a fixed origin allow-list and credentials mode.
package cors
