package tablescrub

// OutputFormat represents the output file format
type OutputFormat int

const (
	// OutputFormatCSV represents CSV output format
	OutputFormatCSV OutputFormat = iota
	// OutputFormatTSV represents TSV output format
	OutputFormatTSV
)

// String returns the string representation of OutputFormat
func (f OutputFormat) String() string {
	switch f {
	case OutputFormatCSV:
		return "csv"
	case OutputFormatTSV:
		return "tsv"
	default:
		return "csv"
	}
}

// Extension returns the file extension for the format
func (f OutputFormat) Extension() string {
	switch f {
	case OutputFormatCSV:
		return extCSV
	case OutputFormatTSV:
		return extTSV
	default:
		return extCSV
	}
}

// CompressionType represents the compression type
type CompressionType int

const (
	// CompressionNone represents no compression
	CompressionNone CompressionType = iota
	// CompressionGZ represents gzip compression
	CompressionGZ
	// CompressionBZ2 represents bzip2 compression (read side only)
	CompressionBZ2
	// CompressionXZ represents xz compression
	CompressionXZ
	// CompressionZSTD represents zstd compression
	CompressionZSTD
)

// String returns the string representation of CompressionType
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGZ:
		return "gz"
	case CompressionBZ2:
		return "bz2"
	case CompressionXZ:
		return "xz"
	case CompressionZSTD:
		return "zst"
	default:
		return "none"
	}
}

// Extension returns the file extension for the compression type,
// empty for no compression.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionGZ:
		return extGZ
	case CompressionBZ2:
		return extBZ2
	case CompressionXZ:
		return extXZ
	case CompressionZSTD:
		return extZSTD
	default:
		return ""
	}
}

// ParseCompressionType resolves a compression name as used in
// configuration ("none", "gz", "bz2", "xz", "zst").
func ParseCompressionType(name string) (CompressionType, bool) {
	switch name {
	case "", "none":
		return CompressionNone, true
	case "gz", "gzip":
		return CompressionGZ, true
	case "bz2", "bzip2":
		return CompressionBZ2, true
	case "xz":
		return CompressionXZ, true
	case "zst", "zstd":
		return CompressionZSTD, true
	default:
		return CompressionNone, false
	}
}

// ParseOutputFormat resolves an output format name ("csv", "tsv").
func ParseOutputFormat(name string) (OutputFormat, bool) {
	switch name {
	case "", "csv":
		return OutputFormatCSV, true
	case "tsv":
		return OutputFormatTSV, true
	default:
		return OutputFormatCSV, false
	}
}

// DumpOptions represents options for writing output artifacts
type DumpOptions struct {
	// format is the output file format
	format OutputFormat
	// compression is the compression type
	compression CompressionType
	// indexLabel, when non-empty, prepends a column holding each
	// row's identifier. Reject reports use it so consumers can trace
	// rows back to original chunk positions.
	indexLabel string
}

// NewDumpOptions creates new DumpOptions with default values (CSV
// format, no compression, no index column)
func NewDumpOptions() DumpOptions {
	return DumpOptions{
		format:      OutputFormatCSV,
		compression: CompressionNone,
	}
}

// WithFormat sets the output format
func (o DumpOptions) WithFormat(format OutputFormat) DumpOptions {
	o.format = format
	return o
}

// WithCompression sets the compression type
func (o DumpOptions) WithCompression(compression CompressionType) DumpOptions {
	o.compression = compression
	return o
}

// WithIndexLabel sets the name of the prepended row identifier column
func (o DumpOptions) WithIndexLabel(label string) DumpOptions {
	o.indexLabel = label
	return o
}

// Format returns the output format
func (o DumpOptions) Format() OutputFormat {
	return o.format
}

// Compression returns the compression type
func (o DumpOptions) Compression() CompressionType {
	return o.compression
}

// IndexLabel returns the row identifier column name, empty if disabled
func (o DumpOptions) IndexLabel() string {
	return o.indexLabel
}

// FileExtension returns the complete file extension including
// compression
func (o DumpOptions) FileExtension() string {
	return o.format.Extension() + o.compression.Extension()
}
