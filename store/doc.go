// Package store implements the staged-mutation config store.
//
// A Store separates three kinds of state: the loaded configuration (key/value
// map plus annotation list, read by Open), pending edits (AddEditedValue,
// AddEditedAnnotation), and pending removals (PendValueRemoval,
// PendAnnotationRemoval). Nothing touches the loaded state until
// ApplyModified reconciles it: edits overlay loaded entries, removals prune
// afterwards (so a removal staged together with an edit of the same key
// wins), and every staging area is cleared.
//
// Save serializes only the loaded state; staged edits are excluded unless
// SaveOptions.ApplyFirst is set. This non-destructive edit/apply/save
// pipeline is the core contract of the package.
//
// Expected conditions — a missing key on removal, a duplicate on add — are
// reported as sentinel errors (ErrNotFound, ErrExists) checked with
// errors.Is, never as panics. Recoverable parse problems during Open are
// logged through the injected logging.Sink and skipped.
package store
