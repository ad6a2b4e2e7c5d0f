package domain

// ListFilter is a sparse set of equality predicates applied to list queries.
// Nil fields are ignored; set fields must all match. Limit of 0 means no cap.
type ListFilter struct {
	Subject  *string
	Category *string
	Status   *string
	Limit    int
}
