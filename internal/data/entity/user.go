package entity

// User is an anonymous account. There is no login; devices hold the
// user_id string and present it with every request.
type User struct {
	BaseSimple
	UserID string `db:"user_id"`
}
