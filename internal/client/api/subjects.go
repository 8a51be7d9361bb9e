package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/studytrack/internal/client/models"
)

type createSubjectRequest struct {
	Name string `json:"name"`
}

// ListSubjects returns all subjects of the current user.
func (c *Client) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	var out []models.Subject
	if err := c.doJSON(ctx, "ListSubjects", http.MethodGet, "/subjects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSubject creates a subject and returns the server-assigned record.
func (c *Client) CreateSubject(ctx context.Context, name string) (*models.Subject, error) {
	var out models.Subject
	if err := c.doJSON(ctx, "CreateSubject", http.MethodPost, "/subjects", createSubjectRequest{Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSubject removes a subject. Confirmation is a view concern.
func (c *Client) DeleteSubject(ctx context.Context, id int64) error {
	return c.doJSON(ctx, "DeleteSubject", http.MethodDelete, fmt.Sprintf("/subjects/%d", id), nil, nil)
}
