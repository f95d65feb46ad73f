package models

// Typed errors consumed by helper.GetStatusCode.

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	if e.Message == "" {
		return "not found"
	}
	return e.Message
}

type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string {
	return e.Message
}

type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string {
	return e.Message
}

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	if e.Message == "" {
		return "invalid credentials"
	}
	return e.Message
}
