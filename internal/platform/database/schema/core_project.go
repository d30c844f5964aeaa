package schema

// ProjectTable represents the 'core.project' table
type ProjectTable struct {
	Table       string
	ID          string
	Title       string
	Description string
	ImageURL    string
	ProjectURL  string
	Categories  string
	AuthorID    string
	Status      string
	Featured    string
	Likes       string
	Comments    string
	CreatedAt   string
	ApprovedAt  string
}

// Project is the schema definition for core.project
var Project = ProjectTable{
	Table:       "core.project",
	ID:          "id",
	Title:       "title",
	Description: "description",
	ImageURL:    "imageurl",
	ProjectURL:  "projecturl",
	Categories:  "categories",
	AuthorID:    "authorid",
	Status:      "status",
	Featured:    "featured",
	Likes:       "likes",
	Comments:    "comments",
	CreatedAt:   "createdat",
	ApprovedAt:  "approvedat",
}

// Columns returns all standard column names
func (t ProjectTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Description, t.ImageURL, t.ProjectURL, t.Categories,
		t.AuthorID, t.Status, t.Featured, t.Likes, t.Comments, t.CreatedAt,
		t.ApprovedAt,
	}
}
