package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table     string
	ID        string
	Name      string
	Email     string
	AvatarURL string
	Role      string
	Bio       string
	Website   string
	Social    string
	CreatedAt string
	UpdatedAt string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:     "users.account",
	ID:        "id",
	Name:      "name",
	Email:     "email",
	AvatarURL: "avatarurl",
	Role:      "role",
	Bio:       "bio",
	Website:   "website",
	Social:    "social",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Email, t.AvatarURL, t.Role, t.Bio,
		t.Website, t.Social, t.CreatedAt, t.UpdatedAt,
	}
}
