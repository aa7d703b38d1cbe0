// Package cli provides the interactive LotteRich command-line client.
//
// It wires configuration, the REST API services, the persisted session and
// an interactive REPL. Typical flow: restore the saved session if a valid
// token is on disk, then execute user commands against the cached ticket
// collection and the published draw history.
//
// Key features:
//   - Register / Login / Logout, plus the OTP password-reset flow
//   - Browse the ticket collection: search, filters, pagination, similarity
//   - Add / Edit / Delete tickets with client-side validation
//   - Export the collection as CSV, PDF or chart images
//   - Check numbers against the draw history and view statistics
//   - Draw administration for admin accounts
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
