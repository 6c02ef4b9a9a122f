package repositories

import (
	"encoding/json"
	"errors"

	"github.com/stellar-europe/community-hub/db"
	"github.com/stellar-europe/community-hub/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const DefaultListLimit = 50

// CreateEvent inserts a new event row. Focus areas are passed as storage
// strings and marshaled into the jsonb column; an empty slice is stored as
// an empty array, not NULL.
func CreateEvent(event *models.Event, focusAreas []string) error {
	if focusAreas == nil {
		focusAreas = []string{}
	}

	encoded, err := json.Marshal(focusAreas)

	if err != nil {
		return err
	}

	event.StrategicFocusAreas = datatypes.JSON(encoded)

	return db.DB.Create(event).Error
}

// ListEvents returns events ordered by date ascending. Nil limit or offset
// fall back to the defaults (50, 0).
func ListEvents(limit, offset *int) ([]models.Event, error) {
	l := DefaultListLimit
	o := 0

	if limit != nil {
		l = *limit
	}

	if offset != nil {
		o = *offset
	}

	var events []models.Event

	if err := db.DB.Order("date ASC").Limit(l).Offset(o).Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

func FindEventByID(id uint) (*models.Event, error) {
	var event models.Event

	err := db.DB.First(&event, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &event, nil
}

// FocusAreaStrings decodes the jsonb focus-area column back into storage
// strings. A NULL or malformed column reads as empty.
func FocusAreaStrings(event *models.Event) []string {
	if len(event.StrategicFocusAreas) == 0 {
		return nil
	}

	var areas []string

	if err := json.Unmarshal(event.StrategicFocusAreas, &areas); err != nil {
		return nil
	}

	return areas
}
