// Package header converts between the structured header comment at the top of
// a source file and a [Record].
//
// A header looks like this:
//
//	// Team Name [website]
//	// filename.ext
//	//
//	// Description, wrapped at 80 characters. Sentences that were wrapped
//	// across lines are joined again when the header is parsed.
//	//
//	// AUTHORS
//	// [50%] First Last (first.l@digipen.edu)
//	//   - Contribution description point
//	// [50%] First Last (first.l@digipen.edu)
//	//   - Contribution description point
//	//
//	// Copyright (c) 2024 DigiPen, All rights reserved.
//
// The copyright line ends the header. [Split] cuts a file at that line,
// [Parse] reads the header into a [Record], [Render] writes it back, and
// [Combine] puts the new header in front of the body again:
//
//	head, body := header.Split(text)
//	rec, diags := header.Parse(head)
//	rec.TeamName = "Alpha"
//	out := header.Combine(header.Render(rec, "foo.h", 2024), body)
//
// Parsing never fails. Lines it cannot read are skipped and returned as
// [Diagnostics]. Rendering is total. [Wrap] is the word wrapper used for the
// description, exposed for reuse.
//
// The template parameters (comment marker, email domain, copyright holder,
// wrap width) are held by [Style]. The package-level functions use
// [DefaultStyle].
package header
