package types

// UserPublic is the wire shape of a member, distinct from the storage row.
type UserPublic struct {
	ID            uint     `json:"id"`
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	WalletAddress string   `json:"wallet_address"`
	UserType      UserType `json:"user_type"`
	Organization  *string  `json:"organization"`
	Bio           *string  `json:"bio"`
	CreatedAt     string   `json:"created_at"`
}

type SignUpRequest struct {
	Username      string   `json:"username" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	WalletAddress string   `json:"wallet_address" binding:"required"`
	UserType      UserType `json:"user_type" binding:"required"`
	Organization  *string  `json:"organization"`
	Bio           *string  `json:"bio"`
}

type SignUpResponse struct {
	User    UserPublic `json:"user"`
	Message string     `json:"message"`
}
