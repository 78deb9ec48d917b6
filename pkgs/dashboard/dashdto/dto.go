package dashdto

////////////////////////////////////////////////////////////////////////////////
// Aggregate View Model
////////////////////////////////////////////////////////////////////////////////

// ViewModel is the aggregate handed to the templates. One instance is built
// per page view; each aggregation stage fills in exactly one field.
type ViewModel struct {
	User      Profile
	Posts     []Post
	Followers []Follower
	Messages  []Message
}

// Profile represents the configured account for the sidebar
type Profile struct {
	Name          string
	ScreenName    string
	AvatarURL     string
	BackgroundURL string
	FollowerCount int
}

// Author identifies who wrote a post. For a reshare this is the original
// author, never the resharing account.
type Author struct {
	Name       string
	ScreenName string
	AvatarURL  string
}

// Post represents one timeline entry for display
type Post struct {
	TimeElapsed string
	Author      Author
	Text        string
	LikeCount   int
	RepostCount int
}

// Follower represents one entry of the followers column
type Follower struct {
	Name       string
	ScreenName string
	AvatarURL  string
	Following  bool
}

// Counterpart is the other party of a direct message
type Counterpart struct {
	Name       string
	ScreenName string
	AvatarURL  string
}

// Message represents one direct message, received or sent. Exactly one of
// From/To is set. Timestamp is the raw unix time used for merge ordering and
// is not rendered.
type Message struct {
	Timestamp   int64
	TimeElapsed string
	Text        string
	From        *Counterpart
	To          *Counterpart
}
