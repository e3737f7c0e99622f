package tablescrub

import (
	"path/filepath"
	"strings"
)

// FileType represents supported chunk file formats.
type FileType int

const (
	// FileTypeCSV represents CSV file type
	FileTypeCSV FileType = iota
	// FileTypeTSV represents TSV file type
	FileTypeTSV
	// FileTypeParquet represents Parquet file type
	FileTypeParquet
	// FileTypeXLSX represents Excel XLSX file type
	FileTypeXLSX
	// FileTypeUnsupported represents unsupported file type
	FileTypeUnsupported
)

// File extensions
const (
	// extCSV is the CSV file extension
	extCSV = ".csv"
	// extTSV is the TSV file extension
	extTSV = ".tsv"
	// extParquet is the Parquet file extension
	extParquet = ".parquet"
	// extXLSX is the Excel XLSX file extension
	extXLSX = ".xlsx"
	// extGZ is the gzip compression extension
	extGZ = ".gz"
	// extBZ2 is the bzip2 compression extension
	extBZ2 = ".bz2"
	// extXZ is the xz compression extension
	extXZ = ".xz"
	// extZSTD is the zstd compression extension
	extZSTD = ".zst"
)

// compressionExts lists the recognized compression extensions.
var compressionExts = []string{extGZ, extBZ2, extXZ, extZSTD}

// detectFileType determines the base file type after removing any
// compression extension.
func detectFileType(path string) FileType {
	base := strings.ToLower(removeCompressionExtension(path))
	switch filepath.Ext(base) {
	case extCSV:
		return FileTypeCSV
	case extTSV:
		return FileTypeTSV
	case extParquet:
		return FileTypeParquet
	case extXLSX:
		return FileTypeXLSX
	default:
		return FileTypeUnsupported
	}
}

// removeCompressionExtension strips a trailing compression extension
// from a file path if present.
func removeCompressionExtension(path string) string {
	lower := strings.ToLower(path)
	for _, ext := range compressionExts {
		if strings.HasSuffix(lower, ext) {
			return path[:len(path)-len(ext)]
		}
	}
	return path
}

// isSupportedFile checks if the file has a supported extension.
func isSupportedFile(path string) bool {
	return detectFileType(path) != FileTypeUnsupported
}

// chunkNameFromPath derives the chunk identifier from a file path:
// the base name with compression and file type extensions removed.
func chunkNameFromPath(path string) string {
	fileName := filepath.Base(removeCompressionExtension(path))
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}
