package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/dmitrijs2005/studytrack/internal/client/api"
	"github.com/dmitrijs2005/studytrack/internal/client/config"
	"github.com/dmitrijs2005/studytrack/internal/client/models"
	"github.com/dmitrijs2005/studytrack/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/studytrack/internal/client/services"
	"github.com/dmitrijs2005/studytrack/internal/client/session"
	"github.com/dmitrijs2005/studytrack/internal/common"
	"github.com/dmitrijs2005/studytrack/internal/logging"

	_ "modernc.org/sqlite"
)

// resourceAPI is the slice of the REST client the views need.
type resourceAPI interface {
	ListSubjects(ctx context.Context) ([]models.Subject, error)
	CreateSubject(ctx context.Context, name string) (*models.Subject, error)
	DeleteSubject(ctx context.Context, id int64) error

	ListFiles(ctx context.Context, subjectID int64) ([]models.FileItem, error)
	UploadFile(ctx context.Context, subjectID int64, filename string, data []byte) (*models.FileItem, error)
	RenameFile(ctx context.Context, id int64, filename string) (*models.FileItem, error)
	DownloadFile(ctx context.Context, id int64) ([]byte, error)
	DeleteFile(ctx context.Context, id int64) error

	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, t models.Task) (*models.Task, error)
	UpdateTask(ctx context.Context, id int64, t models.Task) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// themeStore is the slice of the session store the header/theme views need.
type themeStore interface {
	Theme(ctx context.Context) string
	StoreTheme(ctx context.Context, theme string) error
}

type App struct {
	config *config.Config
	auth   services.AuthService
	api    resourceAPI
	themes themeStore
	nav    *Navigator

	db       *sql.DB
	reader   *bufio.Reader
	out      io.Writer
	userName string

	unsubscribe func()
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := newLogger()

	db, err := sql.Open("sqlite", c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open local database: %w", err)
	}
	if err := metadata.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	store, err := session.NewStore(ctx, metadata.NewSQLiteRepository(db), logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	apiClient, err := api.New(c.ServerBaseURL, store, api.Options{
		HTTPClient: &http.Client{Timeout: c.RequestTimeout},
		Logger:     logger,
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	authSvc := services.NewAuthService(apiClient, store, logger)

	app := &App{
		config: c,
		auth:   authSvc,
		api:    apiClient,
		themes: store,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	app.nav = NewNavigator(app.routes(), authSvc, "login", app.out)

	// Forget the cached display name the moment the session dies, wherever
	// that is detected.
	app.unsubscribe = authSvc.OnLoginChange(func(loggedIn bool) {
		if !loggedIn {
			app.userName = ""
		}
	})

	return app, nil
}

func newLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
}

// routes is the application's navigation table: every destination, its
// guard requirement, and its view.
func (a *App) routes() []Route {
	return []Route{
		{Pattern: "login", View: a.loginView},
		{Pattern: "register", View: a.registerView},
		{Pattern: "dashboard", Protected: true, View: a.dashboardView},
		{Pattern: "subjects", Protected: true, View: a.subjectsView},
		{Pattern: "subjects/add", Protected: true, View: a.addSubjectView},
		{Pattern: "subjects/:id", Protected: true, View: a.filesView},
		{Pattern: "subjects/:id/delete", Protected: true, View: a.deleteSubjectView},
		{Pattern: "subjects/:id/upload", Protected: true, View: a.uploadView},
		{Pattern: "subjects/:sid/files/:id/rename", Protected: true, View: a.renameFileView},
		{Pattern: "subjects/:sid/files/:id/download", Protected: true, View: a.downloadFileView},
		{Pattern: "files/:id/delete", Protected: true, View: a.deleteFileView},
		{Pattern: "tasks", Protected: true, View: a.tasksView},
		{Pattern: "tasks/add", Protected: true, View: a.addTaskView},
		{Pattern: "tasks/:id/edit", Protected: true, View: a.editTaskView},
		{Pattern: "tasks/:id/delete", Protected: true, View: a.deleteTaskView},
		{Pattern: "account", Protected: true, View: a.accountView},
		{Pattern: "account/edit", Protected: true, View: a.editAccountView},
		{Pattern: "account/delete", Protected: true, View: a.deleteAccountView},
		{Pattern: "theme", Protected: true, View: a.themeView},
	}
}

// Run starts the interactive session and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to StudyTrack (type 'help' for commands)")

	if !a.auth.IsLoggedIn(ctx) {
		_ = a.nav.Go(ctx, "login")
	} else {
		_ = a.nav.Go(ctx, "dashboard")
	}

	a.runREPL(ctx)
}

// Close releases the login subscription and the local database.
func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func (a *App) status(ctx context.Context) string {
	s := ""
	if a.userName != "" {
		s = a.userName
	}
	if theme := a.themes.Theme(ctx); theme == common.ThemeDark {
		if s != "" {
			s += " "
		}
		s += "dark"
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
