// Package parser turns one physical line of .cfg text into key/value pairs.
//
// A line is truncated at the first literal occurrence of the comment marker,
// then split on semicolons into pair fragments ("all values on one line"
// mode). Each fragment is split on the configured pair separator, limited to
// two parts, so the separator may reappear inside the value. Malformed
// fragments are reported back to the caller without aborting the line.
//
// Syntax holds the process-wide customization (comment marker, separators,
// quoting) and validates that no two separators collide. AnnotationLine
// recognizes the dedicated "@annotation a, b, c" declaration; such lines are
// never fed to Line.
package parser
