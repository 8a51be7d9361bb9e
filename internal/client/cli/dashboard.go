package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/studytrack/internal/client/models"
	"github.com/dmitrijs2005/studytrack/internal/common"
)

// dateLayout is the calendar-day format the backend uses for tasks.
const dateLayout = "2006-01-02"

// dashboardView shows the signed-in profile, the tasks due today, and the
// total learning time for the day. The backend returns all tasks; the date
// filter is applied locally.
func (a *App) dashboardView(ctx context.Context, _ map[string]string) error {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			// The session was cleared by the auth service; send the user
			// back to the login screen.
			return a.nav.Go(ctx, "login")
		}
		fmt.Fprintln(a.out, "Failed to fetch user data. Please try again later.")
		return nil
	}
	a.userName = user.Username

	fmt.Fprintf(a.out, "Hello, %s <%s>\n", user.Username, user.Email)

	tasks, err := a.api.ListTasks(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to load tasks. Please try again later.")
		return nil
	}

	today := time.Now().Format(dateLayout)
	todays := filterTasksByDate(tasks, today)

	fmt.Fprintf(a.out, "Today (%s): %d task(s), %d minute(s) of learning\n", today, len(todays), totalLearningTime(todays))
	printTasks(a.out, todays)
	return nil
}

// filterTasksByDate keeps the tasks scheduled on day (YYYY-MM-DD).
func filterTasksByDate(tasks []models.Task, day string) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Date == day {
			out = append(out, t)
		}
	}
	return out
}

// totalLearningTime sums LearningTime over tasks, in minutes.
func totalLearningTime(tasks []models.Task) int {
	sum := 0
	for _, t := range tasks {
		sum += t.LearningTime
	}
	return sum
}
