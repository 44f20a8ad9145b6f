package guard

// View names a navigable destination
type View string

// The client's destinations. Everything past login/register requires an
// authenticated session.
const (
	ViewLogin     View = "login"
	ViewRegister  View = "register"
	ViewFeed      View = "feed"
	ViewFollowing View = "following"
	ViewLiked     View = "liked"
	ViewDashboard View = "dashboard"
	ViewFolder    View = "folder"
	ViewFile      View = "file"
	ViewProfile   View = "profile"
	ViewChats     View = "chats"
	ViewChatRoom  View = "chat-room"
	ViewSearch    View = "search"
)

var protected = map[View]bool{
	ViewFeed:      true,
	ViewFollowing: true,
	ViewLiked:     true,
	ViewDashboard: true,
	ViewFolder:    true,
	ViewFile:      true,
	ViewProfile:   true,
	ViewChats:     true,
	ViewChatRoom:  true,
	ViewSearch:    true,
}

// SessionChecker is the single session fact the guard depends on
type SessionChecker interface {
	IsAuthenticated() bool
}

// Decision is the outcome of a guard check. When Allowed is false the
// caller must render RedirectTo instead, replacing history so the blocked
// view cannot be reached by navigating back.
type Decision struct {
	RedirectTo     View
	Allowed        bool
	ReplaceHistory bool
}

// Guard gates rendering of views that require an authenticated session.
// Decisions are pure and synchronous: no I/O, no suspension.
type Guard struct {
	session SessionChecker
}

// New creates a route guard over the given session
func New(session SessionChecker) *Guard {
	return &Guard{session: session}
}

// Protected reports whether a view requires authentication
func Protected(view View) bool {
	return protected[view]
}

// Allow reports whether the current session may render the view
func (g *Guard) Allow(view View) bool {
	if !protected[view] {
		return true
	}
	return g.session.IsAuthenticated()
}

// Check resolves a navigation request into a decision
func (g *Guard) Check(view View) Decision {
	if g.Allow(view) {
		return Decision{Allowed: true}
	}
	return Decision{
		Allowed:        false,
		RedirectTo:     ViewLogin,
		ReplaceHistory: true,
	}
}
