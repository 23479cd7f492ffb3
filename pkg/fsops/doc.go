// Package fsops provides direct, unbuffered filesystem operations over
// the host OS: existence and type predicates, attribute access,
// copy/move/delete including recursive variants, creation primitives,
// and scoped temporary resources.
//
// Organization:
//   - query: existence and type predicates
//   - attrs: timestamps, ownership, permissions, aggregate attributes
//   - copy/move/delete: single-entry and recursive transfer operations
//   - create: file, directory, link, and temp creation primitives
//   - temp: scope-bound temporary directories and files
//
// Every operation is a synchronous call into the OS with no caching,
// locking, or retries; results always reflect on-disk state at call
// time. Partial failure in recursive operations is not rolled back.
package fsops
