// Package output renders scaffold progress for humans.
//
// The Console prints one line per ensured path as the scaffold runs, then a
// summary with the resolved project root, counts and the blueprint's next
// steps. Styles come from the styles subpackage. Color is dropped when
// NO_COLOR is set, when the writer is not a terminal, or when the terminal
// reports no color support; next steps are rendered as markdown through
// glamour only when color is on.
package output
