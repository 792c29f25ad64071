// Package cli provides the interactive Booka command-line client.
//
// It wires configuration, the local token store, the API client, the two
// state containers, and an interactive REPL. Typical flow: restore a
// persisted session if one exists, then execute user commands.
//
// Key features:
//   - Register / Login / Logout / Whoami
//   - List, add, update, and delete books (with optional cover photo)
//   - Show a single book from the local list
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
