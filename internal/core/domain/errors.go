package domain

import "errors"

// ErrRecordNotFound is returned by stores when no record has the requested id.
var ErrRecordNotFound = errors.New("record not found")

// ErrInvalidInput marks input the core refuses outright, such as blank
// message content or an empty banned word.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrSenderNotFound   = errors.New("sender not found")
	ErrSenderExists     = errors.New("sender already exists")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionExists    = errors.New("session already exists")
	ErrMessageNotFound  = errors.New("message not found")
	ErrMessageExists    = errors.New("message already exists")
	ErrContentForbidden = errors.New("content contains banned words")
)

var (
	ErrBannedWordNotFound = errors.New("banned word not found")
	ErrBannedWordExists   = errors.New("banned word already exists")
)
