// Package cli is the interactive admin client for the portfolio API.
//
// It wires configuration, the local session database, the REST client and
// the admin state container, then runs a REPL on top of them. A saved session
// is restored at startup; a background watcher pings the server so the prompt
// can show whether it is reachable.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
