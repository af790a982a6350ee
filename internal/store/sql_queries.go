package store

import (
	"time"

	"github.com/MKhiriev/go-course-catalog/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns = []string{
		"id", "first_name", "last_name", "email_address", "password", "created_at", "updated_at",
	}

	courseColumns = []string{
		"id", "user_id", "title", "description", "estimated_time", "materials_needed", "created_at", "updated_at",
	}
)

func createUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(models.User{}.TableName()).
		Columns("first_name", "last_name", "email_address", "password", "created_at", "updated_at").
		Values(user.FirstName, user.LastName, user.EmailAddress, user.Password, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func findUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
}

func createCourseQuery(b sq.StatementBuilderType, course models.Course) (string, []any, error) {
	return b.Insert(models.Course{}.TableName()).
		Columns("user_id", "title", "description", "estimated_time", "materials_needed", "created_at", "updated_at").
		Values(course.UserID, course.Title, course.Description, course.EstimatedTime, course.MaterialsNeeded, course.CreatedAt, course.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func findCourseQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(courseColumns...).
		From(models.Course{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
}

func listCoursesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(courseColumns...).
		From(models.Course{}.TableName()).
		OrderBy("id").
		ToSql()
}

// updateCourseQuery never touches user_id: ownership is fixed at creation.
func updateCourseQuery(b sq.StatementBuilderType, course models.Course, now time.Time) (string, []any, error) {
	return b.Update(models.Course{}.TableName()).
		Set("title", course.Title).
		Set("description", course.Description).
		Set("estimated_time", course.EstimatedTime).
		Set("materials_needed", course.MaterialsNeeded).
		Set("updated_at", now).
		Where(sq.Eq{"id": course.ID}).
		ToSql()
}

func deleteCourseQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(models.Course{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}
