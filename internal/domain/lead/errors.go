package lead

import "errors"

var (
	ErrLeadNotFound     = errors.New("lead not found")
	ErrDuplicateLead    = errors.New("lead with this phone or email already exists")
	ErrAssigneeInactive = errors.New("assigned user not found or inactive")
)
