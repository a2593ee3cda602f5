// Package cataloging expone el catálogo de cursos del panel, en dos vistas:
// la del profesor (sus cursos) y la del administrador (todos los cursos con
// contadores de lecciones y estudiantes).
package cataloging

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/studdeo/admin-api/infrastructure/integrator/studdeo"
	studdeodomain "github.com/studdeo/admin-api/infrastructure/integrator/studdeo/domain"
	"github.com/studdeo/admin-api/internal/domain"
	"github.com/studdeo/admin-api/pkg/cache"
	"github.com/studdeo/admin-api/pkg/log"
)

type Cataloger interface {
	ListCourses(ctx context.Context, refresh bool) ([]domain.Course, error)
	GetCourseDetail(ctx context.Context, courseID int, asAdmin bool, refresh bool) (*domain.CourseDetail, error)
	ListAdminCourses(ctx context.Context, refresh bool) ([]domain.CourseSummary, error)
}

type Service struct {
	integrator studdeo.StuddeoIntegrator
	store      *cache.Store
}

func NewService(integrator studdeo.StuddeoIntegrator, store *cache.Store) Cataloger {
	return &Service{
		integrator: integrator,
		store:      store,
	}
}

// ListCourses devuelve los cursos del dueño del token de servicio
func (s *Service) ListCourses(ctx context.Context, refresh bool) ([]domain.Course, error) {
	key := cache.Key("courses")

	if refresh {
		s.store.Delete(key)
	}

	if cached, ok := s.store.Get(key); ok {
		if courses, ok := cached.([]domain.Course); ok {
			return courses, nil
		}
	}

	upstream, err := s.integrator.GetCourses()
	if err != nil {
		return nil, err
	}

	courses := make([]domain.Course, 0, len(upstream))
	for _, course := range upstream {
		courses = append(courses, toCourse(ctx, course))
	}

	s.store.Set(key, courses)

	return courses, nil
}

// GetCourseDetail junta curso, lecciones y estudiantes en paralelo con
// semántica todo-o-nada: si cualquiera de las tres consultas falla, el
// detalle entero falla. Media pantalla de detalle no le sirve a nadie.
func (s *Service) GetCourseDetail(ctx context.Context, courseID int, asAdmin bool, refresh bool) (*domain.CourseDetail, error) {
	key := cache.Key("course-detail", strconv.Itoa(courseID), strconv.FormatBool(asAdmin))

	if refresh {
		s.store.Delete(key)
	}

	if cached, ok := s.store.Get(key); ok {
		if detail, ok := cached.(*domain.CourseDetail); ok {
			return detail, nil
		}
	}

	var (
		courses  []studdeodomain.Course
		lessons  []studdeodomain.Lesson
		students []studdeodomain.Student

		coursesErr  error
		lessonsErr  error
		studentsErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		if asAdmin {
			courses, coursesErr = s.integrator.GetAdministratorCourses()
		} else {
			courses, coursesErr = s.integrator.GetCourses()
		}
	}()

	go func() {
		defer wg.Done()
		if asAdmin {
			lessons, lessonsErr = s.integrator.GetAdministratorCourseLessons(courseID)
		} else {
			lessons, lessonsErr = s.integrator.GetCourseLessons(courseID)
		}
	}()

	go func() {
		defer wg.Done()
		if asAdmin {
			students, studentsErr = s.integrator.GetAdministratorCourseStudents(courseID)
		} else {
			students, studentsErr = s.integrator.GetCourseStudents(courseID)
		}
	}()

	wg.Wait()

	for _, err := range []error{coursesErr, lessonsErr, studentsErr} {
		if err != nil {
			return nil, err
		}
	}

	course, found := findCourse(courses, courseID)
	if !found {
		return nil, fmt.Errorf("curso %d no encontrado", courseID)
	}

	detail := &domain.CourseDetail{
		Course:   toCourse(ctx, course),
		Lessons:  toLessons(lessons),
		Students: toStudents(students),
	}

	s.store.Set(key, detail)

	return detail, nil
}

// ListAdminCourses lista todos los cursos de la plataforma con sus
// contadores. El enriquecimiento es best-effort: si las consultas de un
// curso fallan, sus contadores quedan en cero y el resto de la lista sigue.
func (s *Service) ListAdminCourses(ctx context.Context, refresh bool) ([]domain.CourseSummary, error) {
	key := cache.Key("admin-courses")

	if refresh {
		s.store.Delete(key)
	}

	if cached, ok := s.store.Get(key); ok {
		if summaries, ok := cached.([]domain.CourseSummary); ok {
			return summaries, nil
		}
	}

	upstream, err := s.integrator.GetAdministratorCourses()
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.CourseSummary, 0, len(upstream))
	for _, course := range upstream {
		summary := domain.CourseSummary{Course: toCourse(ctx, course)}

		lessons, err := s.integrator.GetAdministratorCourseLessons(course.ExternalReference)
		if err != nil {
			log.ForContext(ctx).
				WithError(err).
				WithField("course_id", course.ExternalReference).
				Warn("No se pudieron contar las lecciones del curso")
		} else {
			summary.LessonCount = len(lessons)
		}

		students, err := s.integrator.GetAdministratorCourseStudents(course.ExternalReference)
		if err != nil {
			log.ForContext(ctx).
				WithError(err).
				WithField("course_id", course.ExternalReference).
				Warn("No se pudieron contar los estudiantes del curso")
		} else {
			summary.StudentCount = len(students)
		}

		summaries = append(summaries, summary)
	}

	s.store.Set(key, summaries)

	return summaries, nil
}

func findCourse(courses []studdeodomain.Course, courseID int) (studdeodomain.Course, bool) {
	for _, course := range courses {
		if course.ExternalReference == courseID {
			return course, true
		}
	}
	return studdeodomain.Course{}, false
}

func toCourse(ctx context.Context, course studdeodomain.Course) domain.Course {
	var createdAt *time.Time

	parsed, err := course.ParseCreateDate()
	if err != nil {
		log.ForContext(ctx).
			WithError(err).
			WithField("course_id", course.ExternalReference).
			Warn("Curso con fecha de creación ilegible")
	} else {
		createdAt = parsed
	}

	return domain.Course{
		ID:          course.ExternalReference,
		Name:        course.Name,
		Description: course.Description,
		ProductID:   course.ProductID,
		OwnerID:     course.UserID,
		CreatedAt:   createdAt,
	}
}

func toLessons(lessons []studdeodomain.Lesson) []domain.Lesson {
	out := make([]domain.Lesson, 0, len(lessons))
	for _, lesson := range lessons {
		out = append(out, domain.Lesson{
			ID:   lesson.ExternalReference,
			Name: lesson.Name,
		})
	}
	return out
}

func toStudents(students []studdeodomain.Student) []domain.Student {
	out := make([]domain.Student, 0, len(students))
	for _, student := range students {
		out = append(out, domain.Student{
			ID:    student.ExternalReference,
			Name:  student.Name,
			Email: student.Email,
			Phone: student.Phone,
		})
	}
	return out
}
