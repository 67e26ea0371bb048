// Package sqlscript prepares user-supplied SQL scripts for execution.
// It strips line comments while respecting quoted literals, removes a
// leading UTF-8 byte order mark, and loads script files with transparent
// decompression of gzip, bzip2, xz, and zstandard archives.
package sqlscript
