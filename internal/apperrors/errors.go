package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// Resources belonging to another company are reported identically, so a
// caller cannot probe for their existence.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller's role or ownership does not permit the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidCredentials indicates a failed login. Unknown email and wrong
// password are reported identically.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrInvalidState indicates that the operation is not valid for the current
// entry or week-lock status, e.g. approving a week that is not submitted.
var ErrInvalidState = errors.New("operation not valid for current state")

// ErrEmptyWeek indicates a submit attempt for a week without any time entries.
var ErrEmptyWeek = errors.New("week has no time entries")

// ErrAlreadySubmitted indicates a submit attempt for a week that is already submitted.
var ErrAlreadySubmitted = errors.New("week already submitted")

// ErrAlreadyApproved indicates a submit attempt for a week that is already approved.
var ErrAlreadyApproved = errors.New("week already approved")

// ErrWeekLocked indicates a create/update/delete attempt against a week whose
// lock is SUBMITTED or APPROVED.
var ErrWeekLocked = errors.New("week is locked for editing")
