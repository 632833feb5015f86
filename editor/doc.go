// Package editor reads, edits and writes the header of a single source file.
//
// [ReadFile] and [WriteFile] move whole files across the disk boundary,
// keeping a UTF-8 byte order mark and CRLF line endings intact. A [Session]
// holds the [header.Record] of the open file and applies the edit operations
// of the browser; [Format] and [Init] rewrite files without a session. The
// YAML form ([EncodeForm], [DecodeForm], [Form]) lets any text editor act as
// the record's input form.
package editor
