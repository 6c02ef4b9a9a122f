package types

import (
	"errors"
	"fmt"
)

// ErrUnknownVariant is returned when a stored string does not match any
// recognized enumeration value. Callers decide whether to substitute a
// default or drop the entry; the codecs themselves never guess.
var ErrUnknownVariant = errors.New("unknown enum variant")

// UserType is the wire representation of a member's role.
type UserType string

const (
	UserTypeAmbassador  UserType = "Ambassador"
	UserTypeChapterLead UserType = "ChapterLead"
)

// DefaultUserType is substituted on the read path for unrecognized roles.
const DefaultUserType = UserTypeAmbassador

// Storage returns the string persisted for this role.
func (u UserType) Storage() string {
	switch u {
	case UserTypeChapterLead:
		return "ChapterLead"
	default:
		return "Ambassador"
	}
}

// Valid reports whether the wire value is one of the recognized roles.
func (u UserType) Valid() bool {
	return u == UserTypeAmbassador || u == UserTypeChapterLead
}

func ParseUserType(s string) (UserType, error) {
	switch s {
	case "Ambassador":
		return UserTypeAmbassador, nil
	case "ChapterLead":
		return UserTypeChapterLead, nil
	}
	return "", fmt.Errorf("user type %q: %w", s, ErrUnknownVariant)
}

// EventType is the wire representation of an event category.
type EventType string

const (
	EventTypeWorkshop   EventType = "Workshop"
	EventTypeMeetup     EventType = "Meetup"
	EventTypeConference EventType = "Conference"
	EventTypeHackathon  EventType = "Hackathon"
	EventTypeCommunity  EventType = "Community"
)

const DefaultEventType = EventTypeCommunity

// Storage returns the string persisted for this event type. Community
// events are stored under their display name, not the wire name.
func (e EventType) Storage() string {
	switch e {
	case EventTypeWorkshop:
		return "Workshop"
	case EventTypeMeetup:
		return "Meetup"
	case EventTypeConference:
		return "Conference"
	case EventTypeHackathon:
		return "Hackathon"
	default:
		return "Community Event"
	}
}

func (e EventType) Valid() bool {
	switch e {
	case EventTypeWorkshop, EventTypeMeetup, EventTypeConference, EventTypeHackathon, EventTypeCommunity:
		return true
	}
	return false
}

func ParseEventType(s string) (EventType, error) {
	switch s {
	case "Workshop":
		return EventTypeWorkshop, nil
	case "Meetup":
		return EventTypeMeetup, nil
	case "Conference":
		return EventTypeConference, nil
	case "Hackathon":
		return EventTypeHackathon, nil
	case "Community", "Community Event":
		return EventTypeCommunity, nil
	}
	return "", fmt.Errorf("event type %q: %w", s, ErrUnknownVariant)
}

// StrategicFocusArea is one of the categorical tags describing an event's
// strategic contribution.
type StrategicFocusArea string

const (
	FocusCommunityParticipation StrategicFocusArea = "CommunityParticipation"
	FocusOnChainActivity        StrategicFocusArea = "OnChainActivity"
	FocusSCFReferrals           StrategicFocusArea = "SCFReferrals"
	FocusEcosystemCollaboration StrategicFocusArea = "EcosystemCollaboration"
	FocusDeveloperGrowth        StrategicFocusArea = "DeveloperGrowth"
)

// Storage returns the spaced display form persisted for this focus area.
func (f StrategicFocusArea) Storage() string {
	switch f {
	case FocusCommunityParticipation:
		return "Community Participation"
	case FocusOnChainActivity:
		return "On-Chain Activity"
	case FocusSCFReferrals:
		return "SCF Referrals"
	case FocusEcosystemCollaboration:
		return "Ecosystem Collaboration"
	case FocusDeveloperGrowth:
		return "Developer Growth"
	default:
		return string(f)
	}
}

func (f StrategicFocusArea) Valid() bool {
	switch f {
	case FocusCommunityParticipation, FocusOnChainActivity, FocusSCFReferrals,
		FocusEcosystemCollaboration, FocusDeveloperGrowth:
		return true
	}
	return false
}

func ParseStrategicFocusArea(s string) (StrategicFocusArea, error) {
	switch s {
	case "Community Participation":
		return FocusCommunityParticipation, nil
	case "On-Chain Activity":
		return FocusOnChainActivity, nil
	case "SCF Referrals":
		return FocusSCFReferrals, nil
	case "Ecosystem Collaboration":
		return FocusEcosystemCollaboration, nil
	case "Developer Growth":
		return FocusDeveloperGrowth, nil
	}
	return "", fmt.Errorf("focus area %q: %w", s, ErrUnknownVariant)
}

// EncodeFocusAreas maps wire focus areas to their storage strings.
func EncodeFocusAreas(areas []StrategicFocusArea) []string {
	out := make([]string, 0, len(areas))
	for _, a := range areas {
		out = append(out, a.Storage())
	}
	return out
}

// DecodeFocusAreas maps stored strings back to wire focus areas, dropping
// unrecognized entries.
func DecodeFocusAreas(stored []string) []StrategicFocusArea {
	out := make([]StrategicFocusArea, 0, len(stored))
	for _, s := range stored {
		area, err := ParseStrategicFocusArea(s)
		if err != nil {
			continue
		}
		out = append(out, area)
	}
	return out
}
