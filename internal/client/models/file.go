package models

// FileHandle is a resume chosen by the user, held in memory until it is
// sent for analysis.
type FileHandle struct {
	Name string
	MIME string
	Data []byte
}

// Empty reports whether there is nothing to upload.
func (f FileHandle) Empty() bool {
	return f.Name == "" || len(f.Data) == 0
}
