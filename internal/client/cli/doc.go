// Package cli provides the interactive foo-rum feed client.
//
// It wires configuration, the SQLite-backed store, the auth and feed
// services, and a REPL that stands in for the web client's pages: the
// feed, the post editor and the sign-in / sign-up modal.
//
// Key features:
//   - Sign in / sign up / sign out, with a pending indicator while the
//     simulated round trip runs
//   - Publish posts and view the feed, newest first
//   - Placeholder post and editor actions that ask for a session first
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
