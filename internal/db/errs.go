package db

import "errors"

var (
	// database errs.
	ErrDBEmpty    = errors.New("database is empty")
	ErrDBNotFound = errors.New("database not found")
)

var (
	// records errs.
	ErrRecordDuplicate     = errors.New("record already exists")
	ErrRecordIDNotProvided = errors.New("no id provided")
	ErrRecordNoMatch       = errors.New("no match found")
	ErrRecordNotFound      = errors.New("no record found")
)
