package models

// Credentials is the body of every signup and signin request.
type Credentials struct {
	Name   string `json:"username"`
	Secret string `json:"password"`
}

// CreateRecordRequest is the body of a record creation request.
type CreateRecordRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateRecordRequest is the body of a partial record update.
// Absent fields are left untouched.
type UpdateRecordRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// IsEmpty reports whether the request changes no field.
func (r UpdateRecordRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil
}
