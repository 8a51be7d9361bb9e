package cli

import (
	"context"
	"fmt"
	"strconv"
)

// parseID converts the captured path parameter into a numeric id.
func parseID(params map[string]string) (int64, error) {
	id, err := strconv.ParseInt(params["id"], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", params["id"])
	}
	return id, nil
}

// subjectsView lists all subjects.
func (a *App) subjectsView(ctx context.Context, _ map[string]string) error {
	subjects, err := a.api.ListSubjects(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to load subjects. Please try again later.")
		return nil
	}

	if len(subjects) == 0 {
		fmt.Fprintln(a.out, "No subjects yet. Use 'addsubject' to create one.")
		return nil
	}
	for _, s := range subjects {
		fmt.Fprintf(a.out, "%4d  %s\n", s.ID, s.Name)
	}
	return nil
}

// addSubjectView prompts for a name and creates the subject.
func (a *App) addSubjectView(ctx context.Context, _ map[string]string) error {
	name, err := getSimpleText(a.reader, "Subject name", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		fmt.Fprintln(a.out, "Subject name must not be empty.")
		return nil
	}

	created, err := a.api.CreateSubject(ctx, name)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to create subject. Please try again later.")
		return nil
	}
	fmt.Fprintf(a.out, "Created subject %d (%s)\n", created.ID, created.Name)
	return nil
}

// deleteSubjectView removes a subject after explicit confirmation.
func (a *App) deleteSubjectView(ctx context.Context, params map[string]string) error {
	id, err := parseID(params)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete subject %d and all its files?", id), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.api.DeleteSubject(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Failed to delete subject. Please try again later.")
		return nil
	}
	fmt.Fprintln(a.out, "Subject deleted.")
	return nil
}
