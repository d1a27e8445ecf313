package domain

import "time"

// MaxPostImages is the largest number of image references a post may carry.
const MaxPostImages = 4

type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	Images    []string  `json:"images"`
	CreatedAt time.Time `json:"createdAt"`
	// Likes holds the ids of users who liked the post, each at most once.
	Likes     []string   `json:"likes"`
	Comments  []Comment  `json:"comments"`
	Shares    int        `json:"shares"`
	Edited    bool       `json:"edited,omitempty"`
	Revisions []Revision `json:"revisions,omitempty"`
}

type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Revision records one edit of a post as a patch from the previous content.
type Revision struct {
	At   time.Time `json:"at"`
	Diff string    `json:"diff"`
}

// LikedBy reports whether the user with the given id liked p.
func (p Post) LikedBy(id string) bool {
	for _, l := range p.Likes {
		if l == id {
			return true
		}
	}
	return false
}
