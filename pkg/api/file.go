package api

// File represents file metadata within a folder. URL points at the stored
// content; the client surfaces metadata only and never downloads it.
type File struct {
	ID           ID     `json:"id"`
	Name         string `json:"name"`
	FolderID     ID     `json:"folder"`
	URL          string `json:"file"`
	CommentCount int    `json:"commentCount,omitempty"`
}
