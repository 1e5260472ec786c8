package visitor

import "errors"

var (
	ErrVisitorNotFound      = errors.New("Visitor not found")
	ErrVisitorAlreadyInside = errors.New("Visitor is already inside the premises")
)
