// FILE: lixenwraith/inifile/doc.go

// Package inifile reads and writes INI-style documents while keeping everything the
// caller did not touch: comments, unknown lines, section order and key order.
//
// Features:
//   - Typed accessors for strings, integers, booleans, characters, currency,
//     floats, date-times and hex-pair binary data
//   - Reads never fail on missing data, they return the caller's default
//   - Writes create sections and keys on demand
//   - The file is rewritten only when something changed
//   - Pluggable storage with atomic file replace and legacy code pages
//   - Struct binding, TOML/YAML/JSON export and merge
//
// File format:
//
//	key=value before any header belongs to the headerless section
//
//	[server]
//	host=example.com
//	;comments are kept
//	port=8080
//
// Quick Start:
//
//	doc, err := inifile.Open("app.ini")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer doc.Close()
//
//	host := doc.ReadString("server", "host", "localhost")
//	port := doc.ReadInteger("server", "port", 8080)
//	doc.WriteBool("server", "tls", true)
//
// Close saves the document only if a write or delete changed it. Flush saves
// without closing.
//
// Binary values are stored as uppercase hex pairs joined by commas ("0A,FF").
// ReadBinary returns 0 for an absent value, the number of bytes copied on
// success, and -1 with ErrCorruptBinary when the text is not hex.
//
// Thread Safety:
// A Document guards its model with a read-write mutex. Nothing coordinates
// separate processes writing the same file.
package inifile
