package source

// FileID indexes FileSet.files; ids are never reused.
type FileID uint32

// FileFlags records how the content was obtained and normalized.
type FileFlags uint8

const (
	FileVirtual        FileFlags = 1 << iota // stdin or an in-memory test source
	FileHadBOM                               // UTF-8 BOM снят при загрузке
	FileNormalizedCRLF                       // \r\n заменены на \n
)

// File is one loaded source. Content is already normalized, so spans and
// LineIdx refer to the bytes the lexer sees.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of every '\n'
	Hash    [32]byte // sha256 of Content, the check-cache key
	Flags   FileFlags
}

// Virtual reports whether the file has no path on disk.
func (f *File) Virtual() bool { return f.Flags&FileVirtual != 0 }

// LineCol is a 1-based line and column; columns count bytes.
type LineCol struct {
	Line uint32
	Col  uint32
}
