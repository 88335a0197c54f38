// Package cli provides the interactive compintel command-line client.
//
// It wires configuration, the local credential store, the API gateway, the
// session store, and the per-resource services into a REPL. Typical flow:
// bootstrap the session from the persisted credential, then execute user
// commands until exit.
//
// Key features:
//   - Login / Register / Logout against the backend
//   - Dashboard overview with derived stats
//   - Side-by-side competitor comparison with recent activity
//   - Competitors: list, detail, add, remove, trigger scrape
//   - Updates feed with filters, mark-as-reviewed
//   - Trends, notifications, preference management
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
