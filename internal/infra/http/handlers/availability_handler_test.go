package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSlotCounter struct {
	mock.Mock
}

func (m *MockSlotCounter) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockSlotCounter) WeeklySlotCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func getAvailability(h *AvailabilityHandler) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/calendly-availability", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestAvailabilitySuccess(t *testing.T) {
	counter := new(MockSlotCounter)
	counter.On("Configured").Return(true)
	counter.On("WeeklySlotCount", mock.Anything).Return(3, nil)

	rec := getAvailability(NewAvailabilityHandler(counter))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp availabilityResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.NotNil(t, resp.Slots)
	assert.Equal(t, 3, *resp.Slots)
	assert.Empty(t, resp.Error)
}

func TestAvailabilityUnconfiguredDegradesTo200(t *testing.T) {
	counter := new(MockSlotCounter)
	counter.On("Configured").Return(false)

	rec := getAvailability(NewAvailabilityHandler(counter))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp availabilityResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.Nil(t, resp.Slots)
	assert.Equal(t, "API key not configured", resp.Error)

	counter.AssertNotCalled(t, "WeeklySlotCount", mock.Anything)
}

func TestAvailabilityLookupFailureDegradesTo200(t *testing.T) {
	counter := new(MockSlotCounter)
	counter.On("Configured").Return(true)
	counter.On("WeeklySlotCount", mock.Anything).Return(0, assert.AnError)

	rec := getAvailability(NewAvailabilityHandler(counter))

	// The widget is decorative; a Calendly outage must never break the page.
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp availabilityResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.Nil(t, resp.Slots)
	assert.Equal(t, "Failed to fetch availability", resp.Error)
}
