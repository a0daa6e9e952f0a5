// Package model holds the row types of the social schema and their external
// projections. Types carry foreign-key ids only; related rows are loaded by
// the social service.
package model

// User is a row of the "user" table. Username and email are unique.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

func (u User) Serialize() map[string]any {
	return map[string]any{
		"id":        u.ID,
		"username":  u.Username,
		"firstname": u.Firstname,
		"lastname":  u.Lastname,
		"email":     u.Email,
	}
}
