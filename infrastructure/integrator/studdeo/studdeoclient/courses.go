package studdeoclient

import (
	"fmt"

	studdeodomain "github.com/studdeo/admin-api/infrastructure/integrator/studdeo/domain"
)

// GetCourses lista los cursos visibles para el dueño del token de servicio
func (c *StuddeoClient) GetCourses() ([]studdeodomain.Course, error) {
	var response []studdeodomain.Course

	if err := c.getJSON("/course/", nil, &response); err != nil {
		return nil, err
	}

	return response, nil
}

func (c *StuddeoClient) GetCourseLessons(courseID int) ([]studdeodomain.Lesson, error) {
	var response []studdeodomain.Lesson

	endpoint := fmt.Sprintf("/course/%d/lessons", courseID)
	if err := c.getJSON(endpoint, nil, &response); err != nil {
		return nil, err
	}

	return response, nil
}

func (c *StuddeoClient) GetCourseStudents(courseID int) ([]studdeodomain.Student, error) {
	var response []studdeodomain.Student

	endpoint := fmt.Sprintf("/course/%d/students", courseID)
	if err := c.getJSON(endpoint, nil, &response); err != nil {
		return nil, err
	}

	return response, nil
}

// GetAdministratorCourses lista todos los cursos de la plataforma, sin
// importar el profesor. Requiere que el token de servicio sea de un
// administrador.
func (c *StuddeoClient) GetAdministratorCourses() ([]studdeodomain.Course, error) {
	var response []studdeodomain.Course

	if err := c.getJSON("/administrator/courses", nil, &response); err != nil {
		return nil, err
	}

	return response, nil
}

func (c *StuddeoClient) GetAdministratorCourseLessons(courseID int) ([]studdeodomain.Lesson, error) {
	var response []studdeodomain.Lesson

	endpoint := fmt.Sprintf("/administrator/courses/%d/lessons", courseID)
	if err := c.getJSON(endpoint, nil, &response); err != nil {
		return nil, err
	}

	return response, nil
}

func (c *StuddeoClient) GetAdministratorCourseStudents(courseID int) ([]studdeodomain.Student, error) {
	var response []studdeodomain.Student

	endpoint := fmt.Sprintf("/administrator/courses/%d/students", courseID)
	if err := c.getJSON(endpoint, nil, &response); err != nil {
		return nil, err
	}

	return response, nil
}
