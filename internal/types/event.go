package types

// KPIEstimates is the fixed set of optional numeric targets attached to an
// event for impact tracking.
type KPIEstimates struct {
	MonthlyActiveAmbassadors *uint `json:"monthly_active_ambassadors"`
	MonthlyActiveAccounts    *uint `json:"monthly_active_accounts"`
	SCFReferrals             *uint `json:"scf_referrals"`
	ContentProduced          *uint `json:"content_produced"`
	ExpectedAttendance       *uint `json:"expected_attendance"`
	SocialGrowthTarget       *uint `json:"social_growth_target"`
}

type EventRequest struct {
	Title                string               `json:"title" binding:"required"`
	Description          string               `json:"description" binding:"required"`
	EventType            EventType            `json:"event_type" binding:"required"`
	Date                 string               `json:"date" binding:"required"` // RFC3339
	Location             string               `json:"location" binding:"required"`
	MaxParticipants      *uint                `json:"max_participants"`
	RegistrationRequired bool                 `json:"registration_required"`
	ContactEmail         string               `json:"contact_email" binding:"required,email"`
	ExternalLink         *string              `json:"external_link"`
	StrategicFocusAreas  []StrategicFocusArea `json:"strategic_focus_areas"`
	KPIEstimates         KPIEstimates         `json:"kpi_estimates"`
	TargetAudience       string               `json:"target_audience" binding:"required"`
	QuarterlyGoals       string               `json:"quarterly_goals" binding:"required"`
	StrategicPurpose     string               `json:"strategic_purpose" binding:"required"`
	SuccessMetrics       *string              `json:"success_metrics"`
}

type EventResponse struct {
	ID                   uint                 `json:"id"`
	Title                string               `json:"title"`
	Description          string               `json:"description"`
	EventType            EventType            `json:"event_type"`
	Date                 string               `json:"date"`
	Location             string               `json:"location"`
	MaxParticipants      *uint                `json:"max_participants"`
	RegistrationRequired bool                 `json:"registration_required"`
	ContactEmail         string               `json:"contact_email"`
	ExternalLink         *string              `json:"external_link"`
	Organizer            string               `json:"organizer"` // username
	CreatedAt            string               `json:"created_at"`
	StrategicFocusAreas  []StrategicFocusArea `json:"strategic_focus_areas"`
	KPIEstimates         KPIEstimates         `json:"kpi_estimates"`
	TargetAudience       string               `json:"target_audience"`
	QuarterlyGoals       string               `json:"quarterly_goals"`
	StrategicPurpose     string               `json:"strategic_purpose"`
	SuccessMetrics       *string              `json:"success_metrics"`
}

type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Total  int             `json:"total"`
}
