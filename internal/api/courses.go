package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/Rutvikrj26/cpd-events-cli/internal/platform"
)

// CourseListOptions filter /courses/.
type CourseListOptions struct {
	Search       string
	Organization string
	Status       string
	Page         int
}

func (o CourseListOptions) values() url.Values {
	query := url.Values{}
	if o.Search != "" {
		query.Set("search", o.Search)
	}
	if o.Organization != "" {
		query.Set("organization", o.Organization)
	}
	if o.Status != "" {
		query.Set("status", o.Status)
	}
	if o.Page > 0 {
		query.Set("page", fmt.Sprint(o.Page))
	}
	return query
}

// ListCourses fetches one page of courses.
func (c *Client) ListCourses(ctx context.Context, opts CourseListOptions) (Page[platform.Course], error) {
	page, err := getPage[platform.Course](ctx, c, "/courses/", opts.values())
	if err != nil {
		return Page[platform.Course]{}, fmt.Errorf("list courses: %w", err)
	}
	return page, nil
}

// Course fetches a single course by UUID.
func (c *Client) Course(ctx context.Context, id uuid.UUID) (*platform.Course, error) {
	var course platform.Course
	if err := c.get(ctx, fmt.Sprintf("/courses/%s/", id), nil, &course); err != nil {
		return nil, fmt.Errorf("fetch course: %w", err)
	}
	return &course, nil
}

// CreateCourse creates a draft course.
func (c *Client) CreateCourse(ctx context.Context, create platform.CourseCreate) (*platform.Course, error) {
	var course platform.Course
	if err := c.post(ctx, "/courses/", create, &course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return &course, nil
}

// UpdateCourse applies a partial update to a course.
func (c *Client) UpdateCourse(ctx context.Context, id uuid.UUID, update platform.CourseUpdate) (*platform.Course, error) {
	var course platform.Course
	if err := c.patch(ctx, fmt.Sprintf("/courses/%s/", id), update, &course); err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}
	return &course, nil
}

// Enroll enrolls the caller in a course.
func (c *Client) Enroll(ctx context.Context, courseID uuid.UUID) (*platform.Enrollment, error) {
	var enrollment platform.Enrollment
	if err := c.post(ctx, fmt.Sprintf("/courses/%s/enroll/", courseID), nil, &enrollment); err != nil {
		return nil, fmt.Errorf("enroll in course: %w", err)
	}
	return &enrollment, nil
}

// MyEnrollments lists the caller's course enrollments.
func (c *Client) MyEnrollments(ctx context.Context) (Page[platform.Enrollment], error) {
	page, err := getPage[platform.Enrollment](ctx, c, "/enrollments/", nil)
	if err != nil {
		return Page[platform.Enrollment]{}, fmt.Errorf("list enrollments: %w", err)
	}
	return page, nil
}

// CompleteEnrollment marks an enrollment complete. CPD credit and the
// certificate are issued server-side.
func (c *Client) CompleteEnrollment(ctx context.Context, enrollmentID uuid.UUID) (*platform.Enrollment, error) {
	var enrollment platform.Enrollment
	if err := c.post(ctx, fmt.Sprintf("/enrollments/%s/complete/", enrollmentID), nil, &enrollment); err != nil {
		return nil, fmt.Errorf("complete enrollment: %w", err)
	}
	return &enrollment, nil
}
