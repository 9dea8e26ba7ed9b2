package user

// User is a catalog editor. Only editors can create, update or delete shoes.
type User struct {
	ID        int    `json:"userId"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Name      string `json:"name"`
	CreatedAt string `json:"createAt,omitempty"`
	UpdatedAt string `json:"updateAt,omitempty"`
}
