package api

// UserSummary is the profile snapshot cached at login time. It is not
// refreshed until the next login; a stale copy is tolerated.
type UserSummary struct {
	ID             ID     `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	ProfilePhoto   string `json:"profilePhoto,omitempty"`
	FollowersCount int    `json:"followersCount,omitempty"`
	Following      bool   `json:"following,omitempty"`
}

// FollowResponse represents the result of a follow toggle
type FollowResponse struct {
	Following      bool `json:"following"`
	FollowersCount int  `json:"followersCount"`
}
