// Package server holds the HTTP server configuration.
//
// The main application entry point handles the actual server startup; this
// package only defines the configuration structure: the listen port, the
// API key protecting the endpoints, the names of the two dump objects the
// server compares, and the cache lifetime for parsed dumps.
package server
