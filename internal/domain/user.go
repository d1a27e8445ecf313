package domain

import "time"

type User struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Name       string    `json:"name"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Password   string    `json:"password"`
	Avatar     string    `json:"avatar"`
	CoverImage string    `json:"coverImage,omitempty"`
	Bio        string    `json:"bio"`
	Location   string    `json:"location"`
	Website    string    `json:"website"`
	JoinDate   time.Time `json:"joinDate"`
	// Followers and Following hold user ids and are kept symmetric:
	// b is in a.Following exactly when a is in b.Followers.
	Followers []string `json:"followers"`
	Following []string `json:"following"`
}

// Profile is the outward view of a User. It never carries credentials.
type Profile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Username   string    `json:"username"`
	Avatar     string    `json:"avatar"`
	CoverImage string    `json:"coverImage,omitempty"`
	Bio        string    `json:"bio"`
	Location   string    `json:"location"`
	Website    string    `json:"website"`
	JoinDate   time.Time `json:"joinDate"`
	Followers  int       `json:"followers"`
	Following  int       `json:"following"`
}

func (u User) Profile() Profile {
	return Profile{
		ID:         u.ID,
		Name:       u.Name,
		Username:   u.Username,
		Avatar:     u.Avatar,
		CoverImage: u.CoverImage,
		Bio:        u.Bio,
		Location:   u.Location,
		Website:    u.Website,
		JoinDate:   u.JoinDate,
		Followers:  len(u.Followers),
		Following:  len(u.Following),
	}
}

// Follows reports whether u follows the user with the given id.
func (u User) Follows(id string) bool {
	for _, f := range u.Following {
		if f == id {
			return true
		}
	}
	return false
}

type FollowState string

const (
	StateFollowing    FollowState = "following"
	StateNotFollowing FollowState = "not-following"
)
