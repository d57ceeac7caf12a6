// Package cli provides the interactive skillfit command-line client.
//
// It wires configuration, the persisted session, API services and an
// interactive REPL. Every screen change goes through the router, so the
// role rules that guard the screens apply to typed paths as well as to
// commands. The guard only spares users dead-end screens; the backend checks
// roles on every request.
//
// Key features:
//   - Sign in / sign up / password reset / sign out
//   - Resume upload workflow: choose a file, pick or type a job description,
//     run the analysis and view the results
//   - Scan history and course recommendations
//   - Admin dashboard, course catalogue and student roster
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
