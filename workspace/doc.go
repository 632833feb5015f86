// Package workspace finds the source files whose headers can be edited.
//
// A [Lister] walks a directory for files with a C or C++ extension
// ([DefaultExtensions]). [BuildTree] arranges the result by directory for
// display, and [LastDir] remembers the directory between runs. A [Watcher]
// signals when files appear or disappear so a listing can be refreshed.
package workspace
