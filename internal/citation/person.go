package citation

import "strings"

// Person is an author or editor name. Either part may be empty.
type Person struct {
	Family string `json:"family,omitempty"` // Family name (surname)
	Given  string `json:"given,omitempty"`  // Given name(s)
}

// NewPerson builds a Person with both parts trimmed.
func NewPerson(family, given string) Person {
	return Person{
		Family: strings.TrimSpace(family),
		Given:  strings.TrimSpace(given),
	}
}

// IsZero reports whether neither name part is set. Such anonymous persons
// are kept in the record but render nothing.
func (p Person) IsZero() bool {
	return p.Family == "" && p.Given == ""
}
