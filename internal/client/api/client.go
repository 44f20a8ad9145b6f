package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	pkgapi "github.com/sharebox/sharebox/pkg/api"
)

// SessionState is the slice of the session store the client needs: the
// current access token for request decoration, and teardown on rejection.
type SessionState interface {
	// AccessToken returns the current access token, or "" when absent
	AccessToken() string

	// Clear drops tokens and user together. Called synchronously when the
	// server rejects the access token, before the failing call returns.
	Clear()
}

// Client is the single chokepoint for outbound calls to the sharebox API
type Client struct {
	httpClient *http.Client
	session    SessionState
	baseURL    string
}

// NewClient creates a new API client. A zero timeout falls back to 30s.
func NewClient(baseURL string, session SessionState, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		session: session,
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Token exchanges credentials for a token pair. A rejection maps to
// ErrInvalidCredentials and never touches the session.
func (c *Client) Token(ctx context.Context, req pkgapi.TokenRequest) (*pkgapi.TokenResponse, error) {
	var resp pkgapi.TokenResponse
	err := c.doAnonymous(ctx, http.MethodPost, "/token", nil, req, &resp)
	if err != nil {
		if IsStatus(err, http.StatusUnauthorized) || IsStatus(err, http.StatusBadRequest) {
			return nil, fmt.Errorf("token request: %w", ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	return &resp, nil
}

// Register creates a new account
func (c *Client) Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error) {
	var resp pkgapi.RegisterResponse
	if err := c.doSession(ctx, http.MethodPost, "/accounts/register", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// UsernameSuggestions returns alternatives for a desired username
func (c *Client) UsernameSuggestions(ctx context.Context, username string) ([]string, error) {
	var resp pkgapi.SuggestionsResponse
	q := url.Values{"username": {username}}
	if err := c.doSession(ctx, http.MethodGet, "/accounts/username-suggestions", q, nil, &resp); err != nil {
		return nil, fmt.Errorf("username suggestions request failed: %w", err)
	}
	return resp.Suggestions, nil
}

// Profile returns the profile of the bearer identified by the session token
func (c *Client) Profile(ctx context.Context) (*pkgapi.UserSummary, error) {
	return c.profile(ctx, "")
}

// ProfileWithToken returns the profile for an explicit access token. Used
// during the login handshake, before the token pair is committed to the
// session store.
func (c *Client) ProfileWithToken(ctx context.Context, accessToken string) (*pkgapi.UserSummary, error) {
	return c.profile(ctx, accessToken)
}

func (c *Client) profile(ctx context.Context, token string) (*pkgapi.UserSummary, error) {
	var resp pkgapi.UserSummary
	var err error
	if token != "" {
		err = c.do(ctx, http.MethodGet, "/accounts/profile", nil, nil, &resp, token, false)
	} else {
		err = c.doSession(ctx, http.MethodGet, "/accounts/profile", nil, nil, &resp)
	}
	if err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	return &resp, nil
}

// Folder fetches folder detail. secret is forwarded as the password query
// parameter when non-empty; a 403 maps to ErrAccessDenied.
func (c *Client) Folder(ctx context.Context, id pkgapi.ID, secret string) (*pkgapi.Folder, error) {
	var resp pkgapi.Folder
	q := url.Values{}
	if secret != "" {
		q.Set("password", secret)
	}
	path := fmt.Sprintf("/folders/%s", id)
	if err := c.doSession(ctx, http.MethodGet, path, q, nil, &resp); err != nil {
		return nil, fmt.Errorf("folder request failed: %w", err)
	}
	return &resp, nil
}

// Subfolders lists the children of a folder
func (c *Client) Subfolders(ctx context.Context, parent pkgapi.ID, secret string) ([]pkgapi.Folder, error) {
	q := url.Values{"parent": {parent.String()}}
	if secret != "" {
		q.Set("password", secret)
	}
	return c.folderList(ctx, "/folders", q)
}

// SearchFolders runs a folder search by name
func (c *Client) SearchFolders(ctx context.Context, query string) ([]pkgapi.Folder, error) {
	return c.folderList(ctx, "/folders", url.Values{"search": {query}})
}

// Feed lists public folders listed in the feed
func (c *Client) Feed(ctx context.Context) ([]pkgapi.Folder, error) {
	return c.folderList(ctx, "/folders/feed", nil)
}

// FollowingFeed lists feed folders owned by followed users
func (c *Client) FollowingFeed(ctx context.Context) ([]pkgapi.Folder, error) {
	return c.folderList(ctx, "/folders/following-feed", nil)
}

// LikedFolders lists folders the current user has liked
func (c *Client) LikedFolders(ctx context.Context) ([]pkgapi.Folder, error) {
	return c.folderList(ctx, "/folders/liked", nil)
}

// MyFolders lists the current user's own top-level folders
func (c *Client) MyFolders(ctx context.Context) ([]pkgapi.Folder, error) {
	return c.folderList(ctx, "/folders/my-folders", nil)
}

// UserFolders lists another user's public folders
func (c *Client) UserFolders(ctx context.Context, id pkgapi.ID) ([]pkgapi.Folder, error) {
	return c.folderList(ctx, fmt.Sprintf("/accounts/users/%s/folders", id), nil)
}

func (c *Client) folderList(ctx context.Context, path string, q url.Values) ([]pkgapi.Folder, error) {
	var resp []pkgapi.Folder
	if err := c.doSession(ctx, http.MethodGet, path, q, nil, &resp); err != nil {
		return nil, fmt.Errorf("folder list request failed: %w", err)
	}
	return resp, nil
}

// CreateFolder creates a folder owned by the current user
func (c *Client) CreateFolder(ctx context.Context, req pkgapi.CreateFolderRequest) (*pkgapi.Folder, error) {
	var resp pkgapi.Folder
	if err := c.doSession(ctx, http.MethodPost, "/folders", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("create folder request failed: %w", err)
	}
	return &resp, nil
}

// UpdateFolder patches folder attributes
func (c *Client) UpdateFolder(ctx context.Context, id pkgapi.ID, req pkgapi.UpdateFolderRequest) (*pkgapi.Folder, error) {
	var resp pkgapi.Folder
	path := fmt.Sprintf("/folders/%s", id)
	if err := c.doSession(ctx, http.MethodPatch, path, nil, req, &resp); err != nil {
		return nil, fmt.Errorf("update folder request failed: %w", err)
	}
	return &resp, nil
}

// DeleteFolder removes a folder permanently
func (c *Client) DeleteFolder(ctx context.Context, id pkgapi.ID) error {
	path := fmt.Sprintf("/folders/%s", id)
	if err := c.doSession(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete folder request failed: %w", err)
	}
	return nil
}

// ToggleLike toggles the current user's like on a folder
func (c *Client) ToggleLike(ctx context.Context, id pkgapi.ID) (*pkgapi.LikeResponse, error) {
	var resp pkgapi.LikeResponse
	path := fmt.Sprintf("/folders/%s/like", id)
	if err := c.doSession(ctx, http.MethodPost, path, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("like request failed: %w", err)
	}
	return &resp, nil
}

// User fetches another user's public profile
func (c *Client) User(ctx context.Context, id pkgapi.ID) (*pkgapi.UserSummary, error) {
	var resp pkgapi.UserSummary
	path := fmt.Sprintf("/accounts/users/%s", id)
	if err := c.doSession(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("user request failed: %w", err)
	}
	return &resp, nil
}

// ToggleFollow toggles the current user's follow of another user
func (c *Client) ToggleFollow(ctx context.Context, id pkgapi.ID) (*pkgapi.FollowResponse, error) {
	var resp pkgapi.FollowResponse
	path := fmt.Sprintf("/accounts/users/%s/follow", id)
	if err := c.doSession(ctx, http.MethodPost, path, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("follow request failed: %w", err)
	}
	return &resp, nil
}

// Conversations lists the current user's chat inbox
func (c *Client) Conversations(ctx context.Context) ([]pkgapi.Conversation, error) {
	var resp []pkgapi.Conversation
	if err := c.doSession(ctx, http.MethodGet, "/accounts/chats", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("conversations request failed: %w", err)
	}
	return resp, nil
}

// Messages lists the direct conversation with another user
func (c *Client) Messages(ctx context.Context, userID pkgapi.ID) ([]pkgapi.Message, error) {
	var resp []pkgapi.Message
	path := fmt.Sprintf("/accounts/chats/%s", userID)
	if err := c.doSession(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("messages request failed: %w", err)
	}
	return resp, nil
}

// SendMessage sends a direct message to another user
func (c *Client) SendMessage(ctx context.Context, userID pkgapi.ID, text string) (*pkgapi.Message, error) {
	var resp pkgapi.Message
	path := fmt.Sprintf("/accounts/chats/%s", userID)
	req := pkgapi.SendMessageRequest{Text: text}
	if err := c.doSession(ctx, http.MethodPost, path, nil, req, &resp); err != nil {
		return nil, fmt.Errorf("send message request failed: %w", err)
	}
	return &resp, nil
}

// Files lists a folder's files. The folder's verified secret rides along
// the same way it does for the folder itself.
func (c *Client) Files(ctx context.Context, folder pkgapi.ID, secret string) ([]pkgapi.File, error) {
	var resp []pkgapi.File
	q := url.Values{"folder": {folder.String()}}
	if secret != "" {
		q.Set("password", secret)
	}
	if err := c.doSession(ctx, http.MethodGet, "/files", q, nil, &resp); err != nil {
		return nil, fmt.Errorf("files request failed: %w", err)
	}
	return resp, nil
}

// File fetches file metadata. A file in a private folder needs the folder
// secret; a 403 maps to ErrAccessDenied.
func (c *Client) File(ctx context.Context, id pkgapi.ID, secret string) (*pkgapi.File, error) {
	var resp pkgapi.File
	q := url.Values{}
	if secret != "" {
		q.Set("password", secret)
	}
	path := fmt.Sprintf("/files/%s", id)
	if err := c.doSession(ctx, http.MethodGet, path, q, nil, &resp); err != nil {
		return nil, fmt.Errorf("file request failed: %w", err)
	}
	return &resp, nil
}

// FileComments lists a file's comment thread
func (c *Client) FileComments(ctx context.Context, fileID pkgapi.ID) ([]pkgapi.Comment, error) {
	var resp []pkgapi.Comment
	q := url.Values{"file": {fileID.String()}}
	if err := c.doSession(ctx, http.MethodGet, "/file-comments", q, nil, &resp); err != nil {
		return nil, fmt.Errorf("file comments request failed: %w", err)
	}
	return resp, nil
}

// PostFileComment posts a comment on a file
func (c *Client) PostFileComment(ctx context.Context, req pkgapi.PostFileCommentRequest) (*pkgapi.Comment, error) {
	var resp pkgapi.Comment
	if err := c.doSession(ctx, http.MethodPost, "/file-comments", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("post file comment request failed: %w", err)
	}
	return &resp, nil
}

// FolderComments lists a folder's comment thread
func (c *Client) FolderComments(ctx context.Context, folderID pkgapi.ID) ([]pkgapi.Comment, error) {
	var resp []pkgapi.Comment
	q := url.Values{"folder": {folderID.String()}}
	if err := c.doSession(ctx, http.MethodGet, "/folder-comments", q, nil, &resp); err != nil {
		return nil, fmt.Errorf("comments request failed: %w", err)
	}
	return resp, nil
}

// PostComment posts a comment on a folder
func (c *Client) PostComment(ctx context.Context, req pkgapi.PostCommentRequest) (*pkgapi.Comment, error) {
	var resp pkgapi.Comment
	if err := c.doSession(ctx, http.MethodPost, "/folder-comments", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("post comment request failed: %w", err)
	}
	return &resp, nil
}

// doSession performs a request decorated with the session's access token
// when one is present, unauthenticated otherwise.
func (c *Client) doSession(ctx context.Context, method, path string, query url.Values, body, result interface{}) error {
	token := ""
	if c.session != nil {
		token = c.session.AccessToken()
	}
	return c.do(ctx, method, path, query, body, result, token, token != "")
}

// doAnonymous performs a request with no credentials attached regardless of
// session state. The credential exchange goes through here so a rejection
// can never tear down an existing session.
func (c *Client) doAnonymous(ctx context.Context, method, path string, query url.Values, body, result interface{}) error {
	return c.do(ctx, method, path, query, body, result, "", false)
}

// do performs an HTTP request. No retries, no backoff — failures are the
// caller's to handle. fromSession marks the token as session-owned: only
// then does a 401 trigger session teardown.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, result interface{}, token string, fromSession bool) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized && fromSession {
		// Teardown happens before the caller sees the error, so every call
		// issued afterwards observes the cleared session.
		c.session.Clear()
		return fmt.Errorf("%w (server returned 401)", ErrUnauthorized)
	}

	if resp.StatusCode == http.StatusForbidden {
		if msg := decodeErrorMessage(respBody); msg != "" {
			return fmt.Errorf("%w: %s", ErrAccessDenied, msg)
		}
		return fmt.Errorf("%w (server returned 403)", ErrAccessDenied)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{
			StatusCode: resp.StatusCode,
			Message:    decodeErrorMessage(respBody),
		}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// decodeErrorMessage extracts the server's error envelope, falling back to
// the raw body when it is not JSON.
func decodeErrorMessage(body []byte) string {
	var errResp pkgapi.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Message != "" {
			return errResp.Message
		}
		return errResp.Error
	}
	if len(body) == 0 {
		return ""
	}
	return string(bytes.TrimSpace(body))
}
