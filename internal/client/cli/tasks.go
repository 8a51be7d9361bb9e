package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dmitrijs2005/studytrack/internal/client/models"
)

func printTasks(w io.Writer, tasks []models.Task) {
	for _, t := range tasks {
		category := ""
		if t.Category != "" {
			category = "  [" + t.Category + "]"
		}
		fmt.Fprintf(w, "%4d  %s  %3d min  %s%s\n", t.ID, t.Date, t.LearningTime, t.Title, category)
	}
}

// tasksView lists all tasks, newest date first as returned by the backend.
func (a *App) tasksView(ctx context.Context, _ map[string]string) error {
	tasks, err := a.api.ListTasks(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to load tasks. Please try again later.")
		return nil
	}
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks yet. Use 'addtask' to create one.")
		return nil
	}
	printTasks(a.out, tasks)
	return nil
}

// addTaskView collects a new task. Title and date are required; the
// learning time must be non-negative. The date defaults to today when left
// empty.
func (a *App) addTaskView(ctx context.Context, _ map[string]string) error {
	title, err := getSimpleText(a.reader, "Task title", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		fmt.Fprintln(a.out, "Task title must not be empty.")
		return nil
	}

	minutes, err := GetInt(a.reader, "Learning time (minutes)", a.out)
	if err != nil {
		return err
	}
	if minutes < 0 {
		fmt.Fprintln(a.out, "Learning time must not be negative.")
		return nil
	}

	date, err := getSimpleText(a.reader, "Date (YYYY-MM-DD, empty for today)", a.out)
	if err != nil {
		return err
	}
	if date == "" {
		date = time.Now().Format(dateLayout)
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		fmt.Fprintln(a.out, "Invalid date, expected YYYY-MM-DD.")
		return nil
	}

	category, err := getSimpleText(a.reader, "Category (optional)", a.out)
	if err != nil {
		return err
	}

	created, err := a.api.CreateTask(ctx, models.Task{Title: title, LearningTime: minutes, Date: date, Category: category})
	if err != nil {
		fmt.Fprintln(a.out, "Failed to create task. Please try again later.")
		return nil
	}
	fmt.Fprintf(a.out, "Created task %d\n", created.ID)
	return nil
}

// editTaskView is the inline edit flow. All changes go to a working copy;
// the original task is only replaced after the server accepts the update,
// so cancelling (or a failed save) leaves the pre-edit values untouched.
func (a *App) editTaskView(ctx context.Context, params map[string]string) error {
	id, err := parseID(params)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	tasks, err := a.api.ListTasks(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to load tasks. Please try again later.")
		return nil
	}

	var original *models.Task
	for i := range tasks {
		if tasks[i].ID == id {
			original = &tasks[i]
			break
		}
	}
	if original == nil {
		fmt.Fprintf(a.out, "Task %d not found.\n", id)
		return nil
	}

	edited := *original

	title, titleChanged, err := InlineEdit(a.reader, "Title", original.Title, a.out)
	if err != nil {
		return err
	}
	edited.Title = title

	minutesStr, minutesChanged, err := InlineEdit(a.reader, "Learning time (minutes)", strconv.Itoa(original.LearningTime), a.out)
	if err != nil {
		return err
	}
	if minutesChanged {
		minutes, convErr := strconv.Atoi(minutesStr)
		if convErr != nil || minutes < 0 {
			fmt.Fprintln(a.out, "Learning time must be a non-negative number. Edit discarded.")
			return nil
		}
		edited.LearningTime = minutes
	}

	date, dateChanged, err := InlineEdit(a.reader, "Date", original.Date, a.out)
	if err != nil {
		return err
	}
	if dateChanged {
		if _, parseErr := time.Parse(dateLayout, date); parseErr != nil {
			fmt.Fprintln(a.out, "Invalid date, expected YYYY-MM-DD. Edit discarded.")
			return nil
		}
		edited.Date = date
	}

	category, categoryChanged, err := InlineEdit(a.reader, "Category", original.Category, a.out)
	if err != nil {
		return err
	}
	edited.Category = category

	if !titleChanged && !minutesChanged && !dateChanged && !categoryChanged {
		fmt.Fprintln(a.out, "Nothing changed.")
		return nil
	}

	ok, err := Confirm(a.reader, "Save changes?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(a.out, "Edit cancelled, task %d unchanged.\n", id)
		return nil
	}

	if _, err := a.api.UpdateTask(ctx, id, edited); err != nil {
		fmt.Fprintf(a.out, "Save failed, task %d unchanged.\n", id)
		return nil
	}
	fmt.Fprintln(a.out, "Task updated.")
	return nil
}

// deleteTaskView removes a task after explicit confirmation.
func (a *App) deleteTaskView(ctx context.Context, params map[string]string) error {
	id, err := parseID(params)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete task %d?", id), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.api.DeleteTask(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Failed to delete task. Please try again later.")
		return nil
	}
	fmt.Fprintln(a.out, "Task deleted.")
	return nil
}
