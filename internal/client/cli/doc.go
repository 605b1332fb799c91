// Package cli provides the interactive tjslctl admin console.
//
// It wires configuration, the local credential store, the authenticated API
// client, and an interactive REPL that manages the public site's content:
// news, programs, UMKM partners, awards, oil prices, the Instagram feed,
// work areas, and site settings.
//
// Typical flow: prompt for credentials if no stored token is valid, then
// execute resource commands of the form "<resource> <verb> [args]" until
// the user exits. The REPL is started via App.Run(ctx), which blocks until
// the user exits.
package cli
