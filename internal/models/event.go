package models

import (
	"time"

	"gorm.io/datatypes"
)

type Event struct {
	BaseModel

	Title                string    `gorm:"not null"`
	Description          string    `gorm:"not null"`
	EventType            string    `gorm:"not null"` // storage string, see types.EventType
	Date                 time.Time `gorm:"not null;index"`
	Location             string    `gorm:"not null"`
	MaxParticipants      *int
	RegistrationRequired bool   `gorm:"not null"`
	ContactEmail         string `gorm:"not null"`
	ExternalLink         *string
	OrganizerID          uint `gorm:"not null;index"`

	// KPI planning
	StrategicFocusAreas      datatypes.JSON `gorm:"type:jsonb"` // JSON array of storage strings
	MonthlyActiveAmbassadors *int
	MonthlyActiveAccounts    *int
	SCFReferrals             *int
	ContentProduced          *int
	ExpectedAttendance       *int
	SocialGrowthTarget       *int
	TargetAudience           string `gorm:"not null"`
	QuarterlyGoals           string `gorm:"not null"`
	StrategicPurpose         string `gorm:"not null"`
	SuccessMetrics           *string

	// Relationships
	Organizer User `gorm:"foreignKey:OrganizerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
