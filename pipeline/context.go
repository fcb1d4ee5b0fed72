// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

import "github.com/dexlang-go/dexcore/dexerr"

// AddContext rebases err's source region onto block, if it carries one,
// subtracting the block's own offset in the enclosing file, then appends a
// textual highlight of the region within the block's text. An err with no
// region is returned unchanged.
func AddContext(blockText string, blockOffset int, err dexerr.Err) dexerr.Err {
	if err.Region == nil {
		return err
	}
	rebased := err.Rebase(blockOffset)
	return rebased.AppendMessage(highlightRegion(blockText, *rebased.Region))
}

// highlightRegion renders the byte range [r.Start, r.Stop) of text as a
// highlight appended to an error message. Regions are byte offsets, not
// character offsets; callers must ensure UTF-8 boundary safety when a
// region crosses a multi-byte rune — this core's own passes only ever emit
// regions at identifier boundaries, which are always ASCII.
func highlightRegion(text string, r dexerr.Region) string {
	start, stop := r.Start, r.Stop
	if start < 0 {
		start = 0
	}
	if stop > len(text) {
		stop = len(text)
	}
	if start >= stop || start > len(text) {
		return ""
	}
	return "\n--- highlight ---\n" + text[start:stop]
}

// AddDebugContext appends ctx to err's message if and only if err's kind is
// CompilerErr. A type error or any other user-facing kind is returned
// unchanged — it must not be polluted with pipeline-internal pretty
// prints.
func AddDebugContext(ctx string, err dexerr.Err) dexerr.Err {
	if err.Kind != dexerr.CompilerErr {
		return err
	}
	return err.AppendMessage("\n=== context ===\n" + ctx)
}
