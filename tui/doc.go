// Package tui is the interactive header browser.
//
// The left pane lists the files found by a [workspace.Lister] as a tree. The
// right pane shows the rendered header of the open file with its parse
// diagnostics and lint issues, and the bottom line shows the latest log
// message. Headers are edited as a YAML form in the user's editor.
//
//	up/k, down/j   move
//	enter          open the selected file
//	e              edit the header in $EDITOR
//	s              save
//	r              reload the listing
//	q, ctrl+c      quit
package tui
