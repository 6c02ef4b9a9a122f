package models

type User struct {
	BaseModel

	Username      string  `gorm:"not null"`
	Email         string  `gorm:"uniqueIndex;not null"`
	WalletAddress string  `gorm:"uniqueIndex;not null"`
	UserType      string  `gorm:"not null"` // "Ambassador" or "ChapterLead"
	Organization  *string
	Bio           *string

	// Relationships
	OrganizedEvents []Event `gorm:"foreignKey:OrganizerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
