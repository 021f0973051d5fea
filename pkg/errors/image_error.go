package errors

import (
	"fmt"

	"image-previewer/pkg/errors/i18n"
)

const (
	CodeInvalidRoot     = "invalid_root"
	CodeInvalidParam    = "invalid_param"
	CodeInvalidOption   = "invalid_option"
	CodeInvalidFit      = "invalid_fit"
	CodeTranscodeFailed = "transcode_failed"
	CodeCannotStat      = "cannot_stat"
	CodeCannotRemove    = "cannot_remove"
)

type ImageError struct {
	Code    string
	Message string
	Err     error
}

func (e *ImageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ImageError) Unwrap() error {
	return e.Err
}

func newError(code string, err error) *ImageError {
	return &ImageError{Code: code, Message: i18n.T(code), Err: err}
}

var (
	ErrInvalidRoot = func(err error) *ImageError {
		return newError(CodeInvalidRoot, err)
	}
	ErrInvalidParam = func(err error) *ImageError {
		return newError(CodeInvalidParam, err)
	}
	ErrInvalidOption = func(err error) *ImageError {
		return newError(CodeInvalidOption, err)
	}
	ErrInvalidFit = func(err error) *ImageError {
		return newError(CodeInvalidFit, err)
	}
	ErrTranscodeFailed = func(err error) *ImageError {
		return newError(CodeTranscodeFailed, err)
	}
	ErrCannotStat = func(err error) *ImageError {
		return newError(CodeCannotStat, err)
	}
	ErrCannotRemove = func(err error) *ImageError {
		return newError(CodeCannotRemove, err)
	}
)
