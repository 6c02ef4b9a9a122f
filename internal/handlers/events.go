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
	"github.com/stellar-europe/community-hub/internal/utils"
)

// placeholderOrganizerID stands in until event creation carries an
// authenticated caller. TODO: thread the organizer through once signup
// issues a session.
const placeholderOrganizerID = 1

func intPtr(v *uint) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}

func uintPtr(v *int) *uint {
	if v == nil {
		return nil
	}
	u := uint(*v)
	return &u
}

func eventResponse(event *models.Event, organizerUsername string) types.EventResponse {
	eventType, err := types.ParseEventType(event.EventType)

	if err != nil {
		logger.Warn.Printf("event %d has unrecognized type %q, substituting %s", event.ID, event.EventType, types.DefaultEventType)
		eventType = types.DefaultEventType
	}

	// Unrecognized stored focus areas are dropped, not defaulted.
	focusAreas := types.DecodeFocusAreas(repositories.FocusAreaStrings(event))

	return types.EventResponse{
		ID:                   event.ID,
		Title:                event.Title,
		Description:          event.Description,
		EventType:            eventType,
		Date:                 event.Date.Format(time.RFC3339),
		Location:             event.Location,
		MaxParticipants:      uintPtr(event.MaxParticipants),
		RegistrationRequired: event.RegistrationRequired,
		ContactEmail:         event.ContactEmail,
		ExternalLink:         event.ExternalLink,
		Organizer:            organizerUsername,
		CreatedAt:            event.CreatedAt.Format(time.RFC3339),
		StrategicFocusAreas:  focusAreas,
		KPIEstimates: types.KPIEstimates{
			MonthlyActiveAmbassadors: uintPtr(event.MonthlyActiveAmbassadors),
			MonthlyActiveAccounts:    uintPtr(event.MonthlyActiveAccounts),
			SCFReferrals:             uintPtr(event.SCFReferrals),
			ContentProduced:          uintPtr(event.ContentProduced),
			ExpectedAttendance:       uintPtr(event.ExpectedAttendance),
			SocialGrowthTarget:       uintPtr(event.SocialGrowthTarget),
		},
		TargetAudience:   event.TargetAudience,
		QuarterlyGoals:   event.QuarterlyGoals,
		StrategicPurpose: event.StrategicPurpose,
		SuccessMetrics:   event.SuccessMetrics,
	}
}

// CreateEvent registers a community event with its KPI planning block.
func CreateEvent(ctx *gin.Context) {
	var req types.EventRequest

	if err := ctx.BindJSON(&req); err != nil {
		logger.Warn.Printf("create event: failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !req.EventType.Valid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event type"})
		return
	}

	for _, area := range req.StrategicFocusAreas {
		if !area.Valid() {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid strategic focus area"})
			return
		}
	}

	fmt.Printf("New event request: title=%s type=%s date=%s location=%s\n",
		req.Title, req.EventType, req.Date, req.Location)
	logger.Info.Printf("create event request title=%s event_type=%s date=%s", req.Title, req.EventType, req.Date)

	date, err := time.Parse(time.RFC3339, req.Date)

	if err != nil {
		logger.Warn.Printf("create event: invalid date %q: %v", req.Date, err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	event := models.Event{
		Title:                    req.Title,
		Description:              req.Description,
		EventType:                req.EventType.Storage(),
		Date:                     date,
		Location:                 req.Location,
		MaxParticipants:          intPtr(req.MaxParticipants),
		RegistrationRequired:     req.RegistrationRequired,
		ContactEmail:             req.ContactEmail,
		ExternalLink:             req.ExternalLink,
		OrganizerID:              placeholderOrganizerID,
		MonthlyActiveAmbassadors: intPtr(req.KPIEstimates.MonthlyActiveAmbassadors),
		MonthlyActiveAccounts:    intPtr(req.KPIEstimates.MonthlyActiveAccounts),
		SCFReferrals:             intPtr(req.KPIEstimates.SCFReferrals),
		ContentProduced:          intPtr(req.KPIEstimates.ContentProduced),
		ExpectedAttendance:       intPtr(req.KPIEstimates.ExpectedAttendance),
		SocialGrowthTarget:       intPtr(req.KPIEstimates.SocialGrowthTarget),
		TargetAudience:           req.TargetAudience,
		QuarterlyGoals:           req.QuarterlyGoals,
		StrategicPurpose:         req.StrategicPurpose,
		SuccessMetrics:           req.SuccessMetrics,
	}

	if err := repositories.CreateEvent(&event, types.EncodeFocusAreas(req.StrategicFocusAreas)); err != nil {
		internalError(ctx, "events.create", err)
		return
	}

	fmt.Printf("Event created: id=%d title=%s\n", event.ID, event.Title)
	logger.Info.Printf("event created event_id=%d title=%s", event.ID, event.Title)

	ctx.JSON(http.StatusCreated, "Event created successfully!")
}

// ListEvents returns events ordered by ascending date, annotated with the
// organizer's username. The response total is the number of items returned,
// not the table count.
func ListEvents(ctx *gin.Context) {
	limit := utils.GetOptionalIntQuery(ctx, "limit")
	offset := utils.GetOptionalIntQuery(ctx, "offset")

	logger.Info.Printf("list events limit=%v offset=%v", limit, offset)

	events, err := repositories.ListEvents(limit, offset)

	if err != nil {
		// The error is swallowed into an empty-success-shaped body; only
		// the status code reports the failure.
		logger.Error.Printf("op=events.list err=%v", err)
		ctx.JSON(http.StatusInternalServerError, types.EventListResponse{
			Events: []types.EventResponse{},
			Total:  0,
		})
		return
	}

	responses := make([]types.EventResponse, 0, len(events))

	for i := range events {
		organizerUsername := "Unknown"

		// Best-effort secondary lookup; a missing organizer never fails
		// the listing.
		organizer, err := repositories.FindUserByID(events[i].OrganizerID)

		if err == nil && organizer != nil {
			organizerUsername = organizer.Username
		}

		responses = append(responses, eventResponse(&events[i], organizerUsername))
	}

	ctx.JSON(http.StatusOK, types.EventListResponse{
		Events: responses,
		Total:  len(responses),
	})
}
