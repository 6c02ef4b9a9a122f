package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stellar-europe/community-hub/internal/logger"
	"github.com/stellar-europe/community-hub/internal/models"
	"github.com/stellar-europe/community-hub/internal/repositories"
	"github.com/stellar-europe/community-hub/internal/types"
)

func userPublic(user *models.User) types.UserPublic {
	// Unrecognized stored roles read as the default role. Corrupted rows
	// are repaired on the way out, not surfaced.
	userType, err := types.ParseUserType(user.UserType)

	if err != nil {
		logger.Warn.Printf("user %d has unrecognized role %q, substituting %s", user.ID, user.UserType, types.DefaultUserType)
		userType = types.DefaultUserType
	}

	return types.UserPublic{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		WalletAddress: user.WalletAddress,
		UserType:      userType,
		Organization:  user.Organization,
		Bio:           user.Bio,
		CreatedAt:     user.CreatedAt.Format(time.RFC3339),
	}
}

// Signup registers a new member. Email and wallet address must both be
// unused; the unique indexes on those columns are the backstop for two
// concurrent signups passing the pre-checks together.
func Signup(ctx *gin.Context) {
	var req types.SignUpRequest

	if err := ctx.BindJSON(&req); err != nil {
		logger.Warn.Printf("signup: failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// The wire enum is closed; anything else never reaches storage.
	if !req.UserType.Valid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user type"})
		return
	}

	fmt.Printf("New signup request: username=%s email=%s wallet=%s type=%s\n",
		req.Username, req.Email, req.WalletAddress, req.UserType)
	logger.Info.Printf("signup request username=%s email=%s wallet_address=%s user_type=%s",
		req.Username, req.Email, req.WalletAddress, req.UserType)

	existing, err := repositories.FindUserByEmail(req.Email)

	if err != nil {
		internalError(ctx, "signup.find_by_email", err)
		return
	}

	if existing != nil {
		fmt.Printf("Signup rejected: email already exists (%s)\n", req.Email)
		logger.Info.Printf("signup conflict email=%s", req.Email)
		ctx.JSON(http.StatusConflict, gin.H{"error": "User with this email already exists"})
		return
	}

	existing, err = repositories.FindUserByWalletAddress(req.WalletAddress)

	if err != nil {
		internalError(ctx, "signup.find_by_wallet", err)
		return
	}

	if existing != nil {
		fmt.Printf("Signup rejected: wallet address already exists (%s)\n", req.WalletAddress)
		logger.Info.Printf("signup conflict wallet_address=%s", req.WalletAddress)
		ctx.JSON(http.StatusConflict, gin.H{"error": "User with this wallet address already exists"})
		return
	}

	newUser := models.User{
		Username:      req.Username,
		Email:         req.Email,
		WalletAddress: req.WalletAddress,
		UserType:      req.UserType.Storage(),
		Organization:  req.Organization,
		Bio:           req.Bio,
	}

	if err := repositories.CreateUser(&newUser); err != nil {
		internalError(ctx, "signup.create_user", err)
		return
	}

	fmt.Printf("Signup success: id=%d username=%s\n", newUser.ID, newUser.Username)
	logger.Info.Printf("signup success user_id=%d username=%s", newUser.ID, newUser.Username)

	ctx.JSON(http.StatusCreated, types.SignUpResponse{
		User:    userPublic(&newUser),
		Message: "User created successfully!",
	})
}
