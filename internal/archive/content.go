package archive

// Content is one item added to an archive. The set of variants is closed:
// File, Directory and Buffer.
type Content interface {
	isContent()
}

// File adds the file at Source as the entry Name.
type File struct {
	Source string
	Name   string
}

// Directory adds every regular file below Source, with entry names prefixed
// by Prefix. An empty Prefix places the tree at the archive root.
type Directory struct {
	Source string
	Prefix string
}

// Buffer adds Data as the entry Name.
type Buffer struct {
	Name string
	Data []byte
}

func (File) isContent()      {}
func (Directory) isContent() {}
func (Buffer) isContent()    {}
