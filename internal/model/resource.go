package model

// Resource is a top-level noun of the API path, each backed by one table.
type Resource string

const (
	ResourceStudents    Resource = "students"
	ResourceContents    Resource = "contents"
	ResourceQuizResults Resource = "quiz-results"
)

// Resources lists every resource the router may expose.
var Resources = []Resource{ResourceStudents, ResourceContents, ResourceQuizResults}

// Valid reports whether r is one of the known resources.
func (r Resource) Valid() bool {
	for _, known := range Resources {
		if r == known {
			return true
		}
	}
	return false
}
