package utils

import "errors"

var (
	ErrDatabaseError      = errors.New("database error")
	ErrSchoolNotFound     = errors.New("school not found")
	ErrArticleNotFound    = errors.New("article not found")
	ErrCityNotFound       = errors.New("city not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrFileMissing        = errors.New("file missing")
	ErrFileTooLarge       = errors.New("file too large")
	ErrUnsupportedFile    = errors.New("unsupported file type")
	ErrSearchError        = errors.New("search error")
	ErrUploadError        = errors.New("upload error")
)
