// Package archive builds and expands zip archives with maximum deflate
// compression.
//
// Archive contents are described by the [Content] sum type: [File] adds a
// single file under a chosen name, [Directory] adds a whole tree under a
// prefix, and [Buffer] adds in-memory bytes. [Zip] dispatches over the
// variants with a single type switch.
package archive
