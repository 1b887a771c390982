package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Rutvikrj26/cpd-events-cli/internal/api"
	"github.com/Rutvikrj26/cpd-events-cli/internal/dates"
	"github.com/Rutvikrj26/cpd-events-cli/internal/forms"
	"github.com/Rutvikrj26/cpd-events-cli/internal/platform"
	"github.com/Rutvikrj26/cpd-events-cli/internal/sanitize"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Browse and manage CPD courses",
}

var (
	coursesListSearch string
	coursesListOrg    string

	coursesListCmd = &cobra.Command{
		Use:   "list",
		Short: "List courses",
		RunE:  runCoursesList,
	}
)

var coursesShowCmd = &cobra.Command{
	Use:   "show <course-uuid>",
	Short: "Show one course in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runCoursesShow,
}

var (
	courseCreateTitle       string
	courseCreatePoints      float64
	courseCreateHours       float64
	courseCreateStart       string
	courseCreateEnd         string
	courseCreateOrg         string
	courseCreateDescription string

	coursesCreateCmd = &cobra.Command{
		Use:   "create",
		Short: "Create a draft course",
		RunE:  runCoursesCreate,
	}
)

var coursesEnrollCmd = &cobra.Command{
	Use:   "enroll <course-uuid>",
	Short: "Enroll yourself in a course",
	Args:  cobra.ExactArgs(1),
	RunE:  runCoursesEnroll,
}

var coursesEnrollmentsCmd = &cobra.Command{
	Use:   "enrollments",
	Short: "List your course enrollments",
	RunE:  runCoursesEnrollments,
}

var coursesCompleteCmd = &cobra.Command{
	Use:   "complete <enrollment-uuid>",
	Short: "Mark an enrollment complete",
	Long: `Marks your enrollment complete. The backend issues the CPD credit
and certificate; check 'cpd credits list' and 'cpd certs list' after.`,
	Args: cobra.ExactArgs(1),
	RunE: runCoursesComplete,
}

func init() {
	coursesListCmd.Flags().StringVar(&coursesListSearch, "search", "", "search term")
	coursesListCmd.Flags().StringVar(&coursesListOrg, "org", "", "filter by organization UUID")

	coursesCreateCmd.Flags().StringVar(&courseCreateTitle, "title", "", "course title (required)")
	coursesCreateCmd.Flags().Float64Var(&courseCreatePoints, "points", 0, "CPD points awarded on completion")
	coursesCreateCmd.Flags().Float64Var(&courseCreateHours, "hours", 0, "estimated duration in hours")
	coursesCreateCmd.Flags().StringVar(&courseCreateStart, "start", "", "start date (optional)")
	coursesCreateCmd.Flags().StringVar(&courseCreateEnd, "end", "", "end date (optional)")
	coursesCreateCmd.Flags().StringVar(&courseCreateOrg, "org", "", "owning organization UUID")
	coursesCreateCmd.Flags().StringVar(&courseCreateDescription, "description", "", "course description")

	coursesCmd.AddCommand(coursesListCmd)
	coursesCmd.AddCommand(coursesShowCmd)
	coursesCmd.AddCommand(coursesCreateCmd)
	coursesCmd.AddCommand(coursesEnrollCmd)
	coursesCmd.AddCommand(coursesEnrollmentsCmd)
	coursesCmd.AddCommand(coursesCompleteCmd)
}

func runCoursesList(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	page, err := app.client.ListCourses(cmd.Context(), api.CourseListOptions{
		Search:       coursesListSearch,
		Organization: coursesListOrg,
	})
	if err != nil {
		return err
	}
	if len(page.Results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No courses found.")
		return nil
	}

	rows := make([][]string, 0, len(page.Results))
	for _, course := range page.Results {
		rows = append(rows, []string{
			course.ID.String(),
			course.Status,
			truncate(sanitize.Text(course.Title), 44),
			formatPoints(course.CPDPoints),
			fmt.Sprint(course.EnrolledCount),
		})
	}
	table(cmd.OutOrStdout(), []string{"UUID", "STATUS", "TITLE", "CPD", "ENROLLED"}, rows)
	return nil
}

func runCoursesShow(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid course UUID %q", args[0])
	}

	course, err := app.client.Course(cmd.Context(), id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", sanitize.Text(course.Title))
	fmt.Fprintf(out, "Status:  %s\n", course.Status)
	fmt.Fprintf(out, "CPD:     %s points across %d modules\n", formatPoints(course.CPDPoints), course.ModuleCount)
	if course.DurationHours > 0 {
		fmt.Fprintf(out, "Length:  %.1f hours\n", course.DurationHours)
	}
	if course.StartDate != nil {
		end := "-"
		if course.EndDate != nil {
			end = formatDate(*course.EndDate)
		}
		fmt.Fprintf(out, "Runs:    %s to %s\n", formatDate(*course.StartDate), end)
	}
	if course.Organization != nil {
		fmt.Fprintf(out, "Org:     %s\n", course.Organization.Name)
	}
	if course.Description != "" {
		fmt.Fprintf(out, "\n%s\n", sanitize.Description(course.Description))
	}
	return nil
}

func runCoursesCreate(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	now := time.Now()
	var startPtr, endPtr *time.Time
	if courseCreateStart != "" {
		start, err := dates.Parse(courseCreateStart, now)
		if err != nil {
			return err
		}
		startPtr = &start
	}
	if courseCreateEnd != "" {
		end, err := dates.Parse(courseCreateEnd, now)
		if err != nil {
			return err
		}
		endPtr = &end
	}

	create := platform.CourseCreate{
		Title:         courseCreateTitle,
		Description:   courseCreateDescription,
		CPDPoints:     courseCreatePoints,
		DurationHours: courseCreateHours,
		StartDate:     startPtr,
		EndDate:       endPtr,
		Organization:  courseCreateOrg,
	}
	if err := forms.Validate(create); err != nil {
		return err
	}

	course, err := app.client.CreateCourse(cmd.Context(), create)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created draft course %s (%s)\n", course.ID, sanitize.Text(course.Title))
	return nil
}

func runCoursesEnroll(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid course UUID %q", args[0])
	}

	enrollment, err := app.client.Enroll(cmd.Context(), id)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Enrolled in %s (enrollment %s)\n",
		sanitize.Text(enrollment.Course.Title), enrollment.ID)
	return nil
}

func runCoursesEnrollments(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	page, err := app.client.MyEnrollments(cmd.Context())
	if err != nil {
		return err
	}
	if len(page.Results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No enrollments.")
		return nil
	}

	rows := make([][]string, 0, len(page.Results))
	for _, e := range page.Results {
		rows = append(rows, []string{
			e.ID.String(),
			truncate(sanitize.Text(e.Course.Title), 44),
			e.Status,
			fmt.Sprintf("%.0f%%", e.Progress),
		})
	}
	table(cmd.OutOrStdout(), []string{"UUID", "COURSE", "STATUS", "PROGRESS"}, rows)
	return nil
}

func runCoursesComplete(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid enrollment UUID %q", args[0])
	}

	enrollment, err := app.client.CompleteEnrollment(cmd.Context(), id)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Completed %s. CPD credit of %s points has been recorded.\n",
		sanitize.Text(enrollment.Course.Title), formatPoints(enrollment.Course.CPDPoints))
	return nil
}
