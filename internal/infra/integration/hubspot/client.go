package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.hubapi.com"

type Client struct {
	HTTPClient *http.Client
	apiToken   string
	baseURL    string
}

func NewClient(apiToken string) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		apiToken:   apiToken,
		baseURL:    defaultBaseURL,
	}
}

// UpsertContact creates the contact or patches the existing one, keyed by
// email. Calling it twice with the same email converges to a single CRM
// record, which is what makes the quiz retake path safe.
func (c *Client) UpsertContact(ctx context.Context, props ContactProperties) error {
	if c.apiToken == "" {
		return fmt.Errorf("hubspot not configured")
	}

	contactID, err := c.findContactByEmail(ctx, props.Email, nil)
	if err != nil {
		return fmt.Errorf("contact lookup failed: %w", err)
	}

	payload, _ := json.Marshal(contactPayload{Properties: props})

	var req *http.Request
	if contactID == "" {
		req, err = http.NewRequestWithContext(ctx, "POST", c.baseURL+"/crm/v3/objects/contacts", bytes.NewBuffer(payload))
	} else {
		req, err = http.NewRequestWithContext(ctx, "PATCH", c.baseURL+"/crm/v3/objects/contacts/"+contactID, bytes.NewBuffer(payload))
	}
	if err != nil {
		return err
	}
	c.addAuthHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("contact upsert failed: %d - %s", resp.StatusCode, string(body))
	}

	if contactID == "" {
		log.Printf("✅ HubSpot: contact created for %s (%s)", props.FirstName, props.QuizOutcome)
	} else {
		log.Printf("✅ HubSpot: contact #%s updated for %s (%s)", contactID, props.FirstName, props.QuizOutcome)
	}
	return nil
}

// HasActiveBooking reports whether the contact already has a discovery call
// on the calendar, per the call_status property the booking pipeline sets.
func (c *Client) HasActiveBooking(ctx context.Context, email string) (bool, error) {
	if c.apiToken == "" {
		return false, fmt.Errorf("hubspot not configured")
	}

	status, err := c.findCallStatus(ctx, email)
	if err != nil {
		return false, err
	}
	return status == CallStatusScheduled, nil
}

// UpdateCallStatus patches only the call_status property. Used by the
// booking-confirmed worker once Calendly reports a scheduled call.
func (c *Client) UpdateCallStatus(ctx context.Context, email, status string) error {
	if c.apiToken == "" {
		return fmt.Errorf("hubspot not configured")
	}

	contactID, err := c.findContactByEmail(ctx, email, nil)
	if err != nil {
		return fmt.Errorf("contact lookup failed: %w", err)
	}
	if contactID == "" {
		return fmt.Errorf("no contact for %s", email)
	}

	var payload callStatusPayload
	payload.Properties.CallStatus = status
	body, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, "PATCH", c.baseURL+"/crm/v3/objects/contacts/"+contactID, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	c.addAuthHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("call_status update failed: %d - %s", resp.StatusCode, string(respBody))
	}

	log.Printf("✅ HubSpot: call_status=%q set for %s", status, email)
	return nil
}

func (c *Client) findCallStatus(ctx context.Context, email string) (string, error) {
	result, err := c.search(ctx, email, []string{"call_status"})
	if err != nil {
		return "", err
	}
	if len(result.Results) == 0 {
		return "", nil
	}
	return result.Results[0].Properties["call_status"], nil
}

func (c *Client) findContactByEmail(ctx context.Context, email string, properties []string) (string, error) {
	result, err := c.search(ctx, email, properties)
	if err != nil {
		return "", err
	}
	if len(result.Results) == 0 {
		return "", nil
	}
	return result.Results[0].ID, nil
}

func (c *Client) search(ctx context.Context, email string, properties []string) (*searchResponse, error) {
	reqBody := searchRequest{
		FilterGroups: []filterGroup{{
			Filters: []filter{{PropertyName: "email", Operator: "EQ", Value: email}},
		}},
		Properties: properties,
		Limit:      1,
	}
	payload, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/crm/v3/objects/contacts/search", bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	c.addAuthHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("contact search failed: %d - %s", resp.StatusCode, string(body))
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) addAuthHeaders(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiToken))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}
