package schema

// BlogPostTable represents the 'core.blogpost' table
type BlogPostTable struct {
	Table     string
	ID        string
	Title     string
	Excerpt   string
	Body      string
	Slug      string
	AuthorID  string
	Status    string
	CreatedAt string
	UpdatedAt string
}

// BlogPost is the schema definition for core.blogpost
var BlogPost = BlogPostTable{
	Table:     "core.blogpost",
	ID:        "id",
	Title:     "title",
	Excerpt:   "excerpt",
	Body:      "body",
	Slug:      "slug",
	AuthorID:  "authorid",
	Status:    "status",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t BlogPostTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Excerpt, t.Body, t.Slug, t.AuthorID,
		t.Status, t.CreatedAt, t.UpdatedAt,
	}
}
