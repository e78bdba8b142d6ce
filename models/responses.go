package models

// AccessToken is returned by a successful token signin.
type AccessToken struct {
	AccessToken string `json:"accessToken"`
}

// ValidationErrorResponse describes a rejected request body or query.
type ValidationErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppInfo is returned by the version endpoint.
type AppInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
	Stage   string `json:"stage"`
}

// ErrorResponse is the body of every failed request other than a
// validation failure.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}
