package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/dmitrijs2005/studytrack/internal/client/models"
)

type renameFileRequest struct {
	Filename string `json:"filename"`
}

// ListFiles returns the files attached to a subject
// (GET /files/subject/{subjectId}).
func (c *Client) ListFiles(ctx context.Context, subjectID int64) ([]models.FileItem, error) {
	var out []models.FileItem
	path := fmt.Sprintf("/files/subject/%d", subjectID)
	if err := c.doJSON(ctx, "ListFiles", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadFile sends data as a multipart body under the "file" field and
// returns the created record. Size and extension checks happen in the view
// before this call.
func (c *Client) UploadFile(ctx context.Context, subjectID int64, filename string, data []byte) (*models.FileItem, error) {
	const op = "UploadFile"

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("%s: build form: %w", op, err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("%s: build form: %w", op, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%s: build form: %w", op, err)
	}

	path := fmt.Sprintf("/files/subject/%d/upload", subjectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL.JoinPath(path).String(), &buf)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logError(ctx, op, err)
		return nil, transportError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logStatus(ctx, op, resp.StatusCode)
		return nil, statusError(op, resp.StatusCode)
	}

	var out models.FileItem
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}
	return &out, nil
}

// RenameFile updates a file's name (PUT /files/{id}/rename).
func (c *Client) RenameFile(ctx context.Context, id int64, filename string) (*models.FileItem, error) {
	var out models.FileItem
	path := fmt.Sprintf("/files/%d/rename", id)
	if err := c.doJSON(ctx, "RenameFile", http.MethodPut, path, renameFileRequest{Filename: filename}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadFile fetches a file's raw contents (GET /files/download/{id}).
func (c *Client) DownloadFile(ctx context.Context, id int64) ([]byte, error) {
	const op = "DownloadFile"

	resp, err := c.do(ctx, op, http.MethodGet, fmt.Sprintf("/files/download/%d", id), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logStatus(ctx, op, resp.StatusCode)
		return nil, statusError(op, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", op, err)
	}
	return data, nil
}

// DeleteFile removes a file record.
func (c *Client) DeleteFile(ctx context.Context, id int64) error {
	return c.doJSON(ctx, "DeleteFile", http.MethodDelete, fmt.Sprintf("/files/%d", id), nil, nil)
}
