package api

import "time"

// Comment represents a comment on a folder or a file. Exactly one of
// FolderID and FileID is set, depending on which thread it belongs to.
type Comment struct {
	ID            ID        `json:"id"`
	FolderID      ID        `json:"folderId,omitempty"`
	FileID        ID        `json:"fileId,omitempty"`
	OwnerID       ID        `json:"ownerId"`
	OwnerUsername string    `json:"ownerUsername"`
	Text          string    `json:"text"`
	PostedAt      time.Time `json:"postedAt"`
}

// PostCommentRequest represents POST /folder-comments
type PostCommentRequest struct {
	FolderID ID     `json:"folder"`
	Text     string `json:"text"`
}

// PostFileCommentRequest represents POST /file-comments
type PostFileCommentRequest struct {
	FileID ID     `json:"file"`
	Text   string `json:"text"`
}
