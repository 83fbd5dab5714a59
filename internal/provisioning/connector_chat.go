package provisioning

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// ChatConnector calls the live chat API to create space memberships. Every
// failure is translated into a status-coded outcome at this boundary; the raw
// error is logged, never surfaced in the outcome message.
type ChatConnector struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewChatConnector builds the live connector against the configured API base URL.
func NewChatConnector(baseURL string, logger *slog.Logger) *ChatConnector {
	return &ChatConnector{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

type addMemberRequest struct {
	MemberEmail      string `json:"member_email"`
	ServiceAccountID string `json:"service_account_id"`
}

type addMemberResponse struct {
	ResourceName string `json:"resource_name"`
	Message      string `json:"message"`
}

func (c *ChatConnector) AddMember(ctx context.Context, space, email, serviceAccountID string) Outcome {
	body, err := json.Marshal(addMemberRequest{MemberEmail: email, ServiceAccountID: serviceAccountID})
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to encode provisioning request", "space", space, "error", err)
		return Outcome{Status: 500, IsError: true, Message: "Failed to build provisioning request."}
	}

	url := fmt.Sprintf("%s/v1/%s/members", c.baseURL, space)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to build provisioning request", "space", space, "error", err)
		return Outcome{Status: 500, IsError: true, Message: "Failed to build provisioning request."}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "chat API unreachable", "space", space, "error", err)
		return Outcome{
			Status:    503,
			IsError:   true,
			ErrorType: ErrTypeServiceUnavailable,
			Message:   "Chat service is temporarily unavailable.",
		}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		var parsed addMemberResponse
		if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
			c.logger.ErrorContext(ctx, "chat API returned malformed body", "space", space, "error", err)
			return Outcome{Status: 500, IsError: true, Message: "Chat service returned an unreadable response."}
		}
		resource := parsed.ResourceName
		if resource == "" {
			resource = fmt.Sprintf("%s/members/%s", space, email)
		}
		return Outcome{
			Status:       200,
			Message:      fmt.Sprintf("Membership created for %s.", email),
			ResourceName: resource,
		}
	case http.StatusForbidden:
		return Outcome{
			Status:    403,
			IsError:   true,
			ErrorType: ErrTypePermissionDenied,
			Message:   "Chat API rejected the provisioning identity.",
		}
	case http.StatusNotFound:
		return Outcome{
			Status:    404,
			IsError:   true,
			ErrorType: ErrTypeSpaceNotFound,
			Message:   "The specified space was not found.",
		}
	default:
		c.logger.WarnContext(ctx, "chat API returned unexpected status", "space", space, "status", resp.StatusCode)
		return Outcome{
			Status:    resp.StatusCode,
			IsError:   true,
			ErrorType: ErrTypeServiceUnavailable,
			Message:   fmt.Sprintf("Chat service returned status %d.", resp.StatusCode),
		}
	}
}
