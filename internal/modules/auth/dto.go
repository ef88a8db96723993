package auth

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserPublic struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
