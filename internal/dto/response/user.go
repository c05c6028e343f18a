package response

type UserResponse struct {
	UserID string `json:"user_id"`
}
