package models

// FileItem is a file record attached to a subject. FilePath is optional;
// not every backend revision returns it.
type FileItem struct {
	ID       int64  `json:"id"`
	Filename string `json:"filename"`
	FilePath string `json:"filePath,omitempty"`
}
