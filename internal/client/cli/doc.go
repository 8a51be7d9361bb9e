// Package cli provides the interactive StudyTrack command-line client.
//
// It wires configuration, local session storage, the REST API client, and an
// interactive REPL whose commands are dispatched through a navigation table.
// Every protected destination passes the login guard before its view runs;
// anonymous navigation is redirected to the login screen.
//
// Key features:
//   - Register / Login / Logout with client-side form validation
//   - Subjects with per-subject file upload, rename, download, and delete
//   - Daily learning tasks with an inline edit flow
//   - Account management and a persisted light/dark theme
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Navigator, and runREPL for details.
package cli
