package domain

import "errors"

var (
	ErrDuplicateWord   = errors.New("word pair already exists")
	ErrWordNotFound    = errors.New("word not found")
	ErrEmptyDictionary = errors.New("dictionary is empty")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrWordTooLong     = errors.New("word is too long")
)
