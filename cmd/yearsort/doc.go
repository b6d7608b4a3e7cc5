// Package main hosts the yearsort CLI entrypoint.
//
// The single Cobra command binds flags into an explicit settings object,
// wires structured logging to stderr, and hands the run to the organizer
// pipeline. Everything the command prints on stdout comes from the renderer:
// live per-action lines, the destination tree, tables, or a JSON document,
// depending on the selected format.
//
// Keep this package thin: behavior belongs in the internal packages, and the
// command layer only translates flags and renders results.
package main
