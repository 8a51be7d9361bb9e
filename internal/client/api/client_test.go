package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/studytrack/internal/client/models"
	"github.com/dmitrijs2005/studytrack/internal/common"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, staticTokens{token: "tok-1"}, Options{HTTPClient: &http.Client{}})
	require.NoError(t, err)
	return c
}

func TestNew_EmptyBaseURL(t *testing.T) {
	_, err := New("", staticTokens{}, Options{})
	require.Error(t, err)
}

func TestLogin_ReturnsToken(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "alice", body["username"])
		require.Equal(t, "Strong1!", body["password"])

		_ = json.NewEncoder(w).Encode(AuthResponse{Token: "issued-token"})
	}))

	tok, err := c.Login(context.Background(), "alice", "Strong1!")
	require.NoError(t, err)
	assert.Equal(t, "issued-token", tok)
}

func TestLogin_UnauthorizedMapsToSentinel(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := c.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Login", apiErr.Op)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestRegister_ConflictMapsToAlreadyExists(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))

	err := c.Register(context.Background(), "alice", "Strong1!", "a@b.co")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestTransportFailureMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing is listening anymore

	c, err := New(srv.URL, staticTokens{}, Options{HTTPClient: &http.Client{}})
	require.NoError(t, err)

	_, err = c.ListSubjects(context.Background())
	assert.ErrorIs(t, err, common.ErrorUnavailable)
}

func TestListSubjects(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/subjects", r.URL.Path)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]models.Subject{{ID: 1, Name: "Math"}, {ID: 2, Name: "Physics"}})
	}))

	subjects, err := c.ListSubjects(context.Background())
	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, "Math", subjects[0].Name)
}

func TestCreateSubject(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_ = json.NewEncoder(w).Encode(models.Subject{ID: 7, Name: body["name"]})
	}))

	s, err := c.CreateSubject(context.Background(), "Chemistry")
	require.NoError(t, err)
	assert.Equal(t, int64(7), s.ID)
	assert.Equal(t, "Chemistry", s.Name)
}

func TestDeleteSubject(t *testing.T) {
	var gotPath, gotMethod string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, c.DeleteSubject(context.Background(), 7))
	assert.Equal(t, "/subjects/7", gotPath)
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestListFiles_ScopedBySubject(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/files/subject/3", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]models.FileItem{{ID: 10, Filename: "notes.pdf"}})
	}))

	files, err := c.ListFiles(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "notes.pdf", files[0].Filename)
}

func TestUploadFile_SendsMultipart(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/files/subject/3/upload", r.URL.Path)

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()

		data, err := io.ReadAll(f)
		require.NoError(t, err)
		require.Equal(t, "notes.pdf", hdr.Filename)
		require.Equal(t, []byte("pdf-bytes"), data)

		_ = json.NewEncoder(w).Encode(models.FileItem{ID: 11, Filename: hdr.Filename})
	}))

	item, err := c.UploadFile(context.Background(), 3, "notes.pdf", []byte("pdf-bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(11), item.ID)
}

func TestRenameFile(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/files/10/rename", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_ = json.NewEncoder(w).Encode(models.FileItem{ID: 10, Filename: body["filename"]})
	}))

	item, err := c.RenameFile(context.Background(), 10, "renamed.pdf")
	require.NoError(t, err)
	assert.Equal(t, "renamed.pdf", item.Filename)
}

func TestDownloadFile_ReturnsRawBytes(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/files/download/10", r.URL.Path)
		_, _ = w.Write([]byte{0x25, 0x50, 0x44, 0x46})
	}))

	data, err := c.DownloadFile(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x25, 0x50, 0x44, 0x46}, data)
}

func TestTaskCRUD(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /tasks":
			_ = json.NewEncoder(w).Encode([]models.Task{{ID: 1, Title: "Read", LearningTime: 25, Date: "2026-08-28"}})
		case "POST /tasks":
			var task models.Task
			require.NoError(t, json.NewDecoder(r.Body).Decode(&task))
			task.ID = 2
			_ = json.NewEncoder(w).Encode(task)
		case "PUT /tasks/1":
			var task models.Task
			require.NoError(t, json.NewDecoder(r.Body).Decode(&task))
			task.ID = 1
			_ = json.NewEncoder(w).Encode(task)
		case "DELETE /tasks/1":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))

	ctx := context.Background()

	tasks, err := c.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	created, err := c.CreateTask(ctx, models.Task{Title: "Practice", LearningTime: 40, Date: "2026-08-28"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)

	updated, err := c.UpdateTask(ctx, 1, models.Task{Title: "Read more", LearningTime: 30, Date: "2026-08-28"})
	require.NoError(t, err)
	assert.Equal(t, "Read more", updated.Title)

	require.NoError(t, c.DeleteTask(ctx, 1))
}

func TestCurrentUser(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/me", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.User{Username: "alice", Email: "a@b.co"})
	}))

	u, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
}
