package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"studio-api/internal/events"

	"github.com/stretchr/testify/require"
)

func TestQuoteSubmittedEvent_Marshal(t *testing.T) {
	budget := "$2000"
	ev := events.QuoteSubmittedEvent{
		EventType:   "quote.submitted",
		QuoteID:     7,
		Name:        "Olena",
		Email:       "olena@example.com",
		ProjectType: "landing",
		Budget:      &budget,
		Description: "New landing page",
		SubmittedAt: time.Now(),
	}

	b, err := json.Marshal(ev)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, "quote.submitted", decoded["event_type"])
	require.Equal(t, "olena@example.com", decoded["email"])
	require.NotContains(t, decoded, "package_id")
}

func TestConsultationSubmittedEvent_Marshal(t *testing.T) {
	ev := events.ConsultationSubmittedEvent{
		EventType:      "consultation.submitted",
		ConsultationID: 3,
		FirstName:      "Ivan",
		LastName:       "Koval",
		Phone:          "+380501112233",
		SubmittedAt:    time.Now(),
	}

	b, err := json.Marshal(ev)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, "consultation.submitted", decoded["event_type"])
	require.NotContains(t, decoded, "telegram")
}

func TestReviewSubmittedEvent_Marshal(t *testing.T) {
	name := "Anon"
	email := "anon@example.com"
	ev := events.ReviewSubmittedEvent{
		EventType:   "review.submitted",
		ReviewID:    11,
		AuthorName:  &name,
		AuthorEmail: &email,
		Rating:      5,
		SubmittedAt: time.Now(),
	}

	b, err := json.Marshal(ev)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, "review.submitted", decoded["event_type"])
	require.Equal(t, float64(5), decoded["rating"])
}
