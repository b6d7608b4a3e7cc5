// Package organizer drives the year-sorting pipeline: validate the root,
// take the per-root run lock, scan the tree, resolve each candidate's year,
// relocate files beneath four-digit year directories, and finally prune the
// source directories the moves emptied.
//
// The pipeline is strictly sequential and single-threaded. The plan is fully
// computed from a read-only snapshot before the first mutation, per-file
// failures accumulate in the Result instead of aborting the batch, and only
// pre-scan environment problems surface as errors from Run. Year directories
// already present at the root are pruned from scanning, which makes repeated
// runs idempotent.
//
// The package also owns the error taxonomy for the whole run; callers
// classify failures with errors.Is against the exported sentinels.
package organizer
