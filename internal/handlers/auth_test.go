package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stellar-europe/community-hub/internal/models"
	"github.com/stellar-europe/community-hub/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSignup() types.SignUpRequest {
	return types.SignUpRequest{
		Username:      "alice",
		Email:         "a@x.com",
		WalletAddress: "GABCDEFGHIJKLMNOPQRSTUVWXYZ234567ABCDEFGHIJKLMNOPQRSTUVW",
		UserType:      types.UserTypeAmbassador,
	}
}

func TestSignup_Success(t *testing.T) {
	setupTestDB(t)
	r := setupTestRouter()

	w := performJSON(t, r, http.MethodPost, "/api/signup", validSignup())

	require.Equal(t, http.StatusCreated, w.Code)

	var resp types.SignUpResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, types.UserTypeAmbassador, resp.User.UserType)
	assert.Equal(t, "User created successfully!", resp.Message)
	assert.NotZero(t, resp.User.ID)
	assert.NotEmpty(t, resp.User.CreatedAt)
}

func TestSignup_RoleRoundTrip(t *testing.T) {
	setupTestDB(t)
	r := setupTestRouter()

	req := validSignup()
	req.UserType = types.UserTypeChapterLead
	req.Organization = strPtr("Stellar Berlin")

	w := performJSON(t, r, http.MethodPost, "/api/signup", req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp types.SignUpResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, types.UserTypeChapterLead, resp.User.UserType)
	require.NotNil(t, resp.User.Organization)
	assert.Equal(t, "Stellar Berlin", *resp.User.Organization)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	setupTestDB(t)
	r := setupTestRouter()

	first := performJSON(t, r, http.MethodPost, "/api/signup", validSignup())
	require.Equal(t, http.StatusCreated, first.Code)

	// Same email, everything else fresh.
	dup := validSignup()
	dup.Username = "bob"
	dup.WalletAddress = "GBBCDEFGHIJKLMNOPQRSTUVWXYZ234567ABCDEFGHIJKLMNOPQRSTUVW"

	w := performJSON(t, r, http.MethodPost, "/api/signup", dup)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email already exists")
}

func TestSignup_DuplicateWallet(t *testing.T) {
	setupTestDB(t)
	r := setupTestRouter()

	first := performJSON(t, r, http.MethodPost, "/api/signup", validSignup())
	require.Equal(t, http.StatusCreated, first.Code)

	// Fresh email, same wallet.
	dup := validSignup()
	dup.Username = "bob"
	dup.Email = "b@x.com"

	w := performJSON(t, r, http.MethodPost, "/api/signup", dup)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "wallet address already exists")
}

func TestSignup_RepeatedIdenticalRequest(t *testing.T) {
	setupTestDB(t)
	r := setupTestRouter()

	first := performJSON(t, r, http.MethodPost, "/api/signup", validSignup())
	require.Equal(t, http.StatusCreated, first.Code)

	second := performJSON(t, r, http.MethodPost, "/api/signup", validSignup())
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestSignup_InvalidUserType(t *testing.T) {
	setupTestDB(t)
	r := setupTestRouter()

	body := map[string]interface{}{
		"username":       "alice",
		"email":          "a@x.com",
		"wallet_address": "GABCDEFGHIJKLMNOPQRSTUVWXYZ234567ABCDEFGHIJKLMNOPQRSTUVW",
		"user_type":      "Wizard",
	}

	w := performJSON(t, r, http.MethodPost, "/api/signup", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignup_MissingFields(t *testing.T) {
	setupTestDB(t)
	r := setupTestRouter()

	w := performJSON(t, r, http.MethodPost, "/api/signup", map[string]interface{}{
		"username": "alice",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserPublic_UnknownRoleFallsBack(t *testing.T) {
	user := &models.User{
		Username:      "carol",
		Email:         "c@x.com",
		WalletAddress: "GC...",
		UserType:      "Overlord",
	}

	public := userPublic(user)

	assert.Equal(t, types.DefaultUserType, public.UserType)
}
