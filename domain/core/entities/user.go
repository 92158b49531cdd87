package entities

// User is a record in the upstream store's /users collection. Users are
// looked up by exact name and created on demand when an event names an
// unknown creator.
type User struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
}

// FindUserByName returns the first user with an exact (case-sensitive)
// name match, mirroring the upsert-by-name lookup contract.
func FindUserByName(users []User, name string) (User, bool) {
	for _, u := range users {
		if u.Name == name {
			return u, true
		}
	}
	return User{}, false
}
