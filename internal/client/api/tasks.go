package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/studytrack/internal/client/models"
)

// ListTasks returns all tasks of the current user. The backend does not
// scope by date; views filter locally.
func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	var out []models.Task
	if err := c.doJSON(ctx, "ListTasks", http.MethodGet, "/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTask creates a task and returns the server-assigned record.
func (c *Client) CreateTask(ctx context.Context, t models.Task) (*models.Task, error) {
	var out models.Task
	if err := c.doJSON(ctx, "CreateTask", http.MethodPost, "/tasks", t, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTask overwrites a task (PUT /tasks/{id}).
func (c *Client) UpdateTask(ctx context.Context, id int64, t models.Task) (*models.Task, error) {
	var out models.Task
	if err := c.doJSON(ctx, "UpdateTask", http.MethodPut, fmt.Sprintf("/tasks/%d", id), t, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.doJSON(ctx, "DeleteTask", http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil)
}
