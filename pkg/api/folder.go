package api

// FolderDescriptor holds the minimal fields needed to decide access policy
// for a folder without fetching its content. Feed and listing endpoints
// return descriptors embedded in Folder values.
type FolderDescriptor struct {
	ID       ID   `json:"id"`
	IsPublic bool `json:"isPublic"`
	OwnerID  ID   `json:"ownerId"`
}

// Folder represents folder detail as returned by GET /folders/{id}
type Folder struct {
	ID            ID     `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	OwnerID       ID     `json:"ownerId"`
	OwnerUsername string `json:"ownerUsername"`
	ParentID      ID     `json:"parentId,omitempty"`
	IsPublic      bool   `json:"isPublic"`
	ListedInFeed  bool   `json:"listedInFeed"`
	FolderCode    string `json:"folderCode,omitempty"`
	ViewCount     int    `json:"viewCount"`
	LikeCount     int    `json:"likeCount"`
	Liked         bool   `json:"liked"`
}

// Descriptor extracts the access-policy fields from a folder.
func (f *Folder) Descriptor() FolderDescriptor {
	return FolderDescriptor{
		ID:       f.ID,
		IsPublic: f.IsPublic,
		OwnerID:  f.OwnerID,
	}
}

// CreateFolderRequest represents POST /folders
type CreateFolderRequest struct {
	Name         string `json:"name"`
	ParentID     ID     `json:"parentId,omitempty"`
	IsPublic     bool   `json:"isPublic"`
	ListedInFeed bool   `json:"listedInFeed"`
	Secret       string `json:"password,omitempty"`
}

// UpdateFolderRequest represents PATCH /folders/{id}. Pointer fields are
// omitted when nil so unrelated attributes stay untouched.
type UpdateFolderRequest struct {
	Name         *string `json:"name,omitempty"`
	IsPublic     *bool   `json:"isPublic,omitempty"`
	ListedInFeed *bool   `json:"listedInFeed,omitempty"`
	Secret       *string `json:"password,omitempty"`
}

// LikeResponse represents the result of a like toggle
type LikeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}
