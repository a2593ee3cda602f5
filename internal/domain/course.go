package domain

import "time"

// Course es la vista del panel sobre un curso del core.
type Course struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ProductID   int        `json:"product_id"`
	OwnerID     int        `json:"owner_id"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

type Lesson struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Student struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CourseDetail junta curso, lecciones y estudiantes. Se arma con semántica
// todo-o-nada: si falla cualquiera de las tres consultas, falla el detalle.
type CourseDetail struct {
	Course   Course    `json:"course"`
	Lessons  []Lesson  `json:"lessons"`
	Students []Student `json:"students"`
}

// CourseSummary es la fila de la vista de administrador. Los contadores se
// completan en un loop de enriquecimiento best-effort: si la consulta de un
// curso falla, sus contadores quedan en cero y el resto de la lista sigue.
type CourseSummary struct {
	Course
	LessonCount  int `json:"lesson_count"`
	StudentCount int `json:"student_count"`
}
