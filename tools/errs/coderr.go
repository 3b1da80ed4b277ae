package errs

import (
	"strconv"
	"strings"
)

// CodeError is the JSON error body returned by failed API calls.
type CodeError struct {
	Code   int    `json:"code"`
	Msg    string `json:"msg"`
	Detail string `json:"detail,omitempty"`
}

func NewCodeError(code int, msg string) *CodeError {
	return &CodeError{Code: code, Msg: msg}
}

// WithDetail returns a copy carrying extra detail; the receiver is not mutated.
func (e *CodeError) WithDetail(detail string) *CodeError {
	d := detail
	if e.Detail != "" {
		d = e.Detail + ", " + detail
	}
	return &CodeError{Code: e.Code, Msg: e.Msg, Detail: d}
}

func (e *CodeError) Error() string {
	v := make([]string, 0, 3)
	v = append(v, strconv.Itoa(e.Code), e.Msg)
	if e.Detail != "" {
		v = append(v, e.Detail)
	}
	return strings.Join(v, " ")
}

var (
	ErrArgs         = NewCodeError(1001, "invalid argument")
	ErrTokenInvalid = NewCodeError(1002, "token invalid or expired")
	ErrNoPermission = NewCodeError(1003, "no permission")
	ErrNotFound     = NewCodeError(1004, "record not found")
	ErrInternal     = NewCodeError(1500, "internal error")
)
