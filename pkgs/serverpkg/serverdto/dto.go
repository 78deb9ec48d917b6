package serverdto

////////////////////////////////////////////////////////////////////////////////

// ErrorView is the data handed to the error template when the aggregation
// fails. StatusCode and Data come from the upstream API response.
type ErrorView struct {
	StatusCode int
	Data       string
}
