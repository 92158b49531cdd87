package entities

// Category is a record in the upstream store's /categories collection.
// The sync core never creates or deletes categories.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
