// Package document reads and writes edit buffers as single-byte encoded
// text.
//
// The code space of the editor is one byte wide, so documents are stored
// in a single-byte character map (ISO 8859-1 by default). CRLF line endings
// are folded to LF on decode; Encode writes LF.
package document
