package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stellar-europe/community-hub/db"
	"github.com/stellar-europe/community-hub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Event{}))

	db.DB = gdb
}

func seedUser(t *testing.T, email, wallet string) models.User {
	t.Helper()

	user := models.User{
		Username:      "alice",
		Email:         email,
		WalletAddress: wallet,
		UserType:      "Ambassador",
	}
	require.NoError(t, CreateUser(&user))
	return user
}

func seedEvent(t *testing.T, title string, date time.Time, areas []string) models.Event {
	t.Helper()

	event := models.Event{
		Title:            title,
		Description:      "desc",
		EventType:        "Meetup",
		Date:             date,
		Location:         "Berlin",
		ContactEmail:     "events@x.com",
		OrganizerID:      1,
		TargetAudience:   "Developers",
		QuarterlyGoals:   "Goals",
		StrategicPurpose: "Purpose",
	}
	require.NoError(t, CreateEvent(&event, areas))
	return event
}

func TestFindUser_NotFoundIsNilNil(t *testing.T) {
	setupTestDB(t)

	user, err := FindUserByEmail("missing@x.com")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = FindUserByWalletAddress("GMISSING")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = FindUserByID(42)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestFindUser_ByUniqueFields(t *testing.T) {
	setupTestDB(t)
	created := seedUser(t, "a@x.com", "GAAA")

	byEmail, err := FindUserByEmail("a@x.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.ID, byEmail.ID)

	byWallet, err := FindUserByWalletAddress("GAAA")
	require.NoError(t, err)
	require.NotNil(t, byWallet)
	assert.Equal(t, created.ID, byWallet.ID)

	byID, err := FindUserByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "alice", byID.Username)
	assert.False(t, byID.CreatedAt.IsZero())
}

func TestCreateEvent_FocusAreaColumn(t *testing.T) {
	setupTestDB(t)

	withAreas := seedEvent(t, "A", time.Now(), []string{"Community Participation"})
	empty := seedEvent(t, "B", time.Now(), nil)

	stored, err := FindEventByID(withAreas.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, []string{"Community Participation"}, FocusAreaStrings(stored))

	// nil areas are stored as an empty array, not NULL.
	stored, err = FindEventByID(empty.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Empty(t, FocusAreaStrings(stored))
}

func TestListEvents_DefaultsAndOrder(t *testing.T) {
	setupTestDB(t)

	base := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	seedEvent(t, "third", base.AddDate(0, 2, 0), nil)
	seedEvent(t, "first", base, nil)
	seedEvent(t, "second", base.AddDate(0, 1, 0), nil)

	events, err := ListEvents(nil, nil)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "first", events[0].Title)
	assert.Equal(t, "second", events[1].Title)
	assert.Equal(t, "third", events[2].Title)
}

func TestListEvents_LimitOffset(t *testing.T) {
	setupTestDB(t)

	base := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedEvent(t, fmt.Sprintf("event-%d", i), base.AddDate(0, 0, i), nil)
	}

	limit := 2
	offset := 3

	events, err := ListEvents(&limit, &offset)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "event-3", events[0].Title)
	assert.Equal(t, "event-4", events[1].Title)
}

func TestListEvents_DefaultLimitIsFifty(t *testing.T) {
	setupTestDB(t)

	base := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	for i := 0; i < DefaultListLimit+5; i++ {
		seedEvent(t, fmt.Sprintf("event-%d", i), base.Add(time.Duration(i)*time.Hour), nil)
	}

	events, err := ListEvents(nil, nil)
	require.NoError(t, err)
	assert.Len(t, events, DefaultListLimit)
}
