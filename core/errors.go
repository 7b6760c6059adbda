package core

import (
	"errors"
	"fmt"
	"os"
)

// General error codes
const (
	NOERROR   int = 0
	EMISSING  int = 122 // resource does not exist
	EINVALID  int = 123 // validation failed
	EINTERNAL int = 125 // internal error
)

// Error codes for font and character downloads. The names follow the
// error names of the PCL and PCL XL reference manuals.
const (
	ERANGE          int = 200 // declared size, offset or count out of bounds
	EUNIMPLEMENTED  int = 201 // behaviour intentionally not supported
	EMEMORY         int = 202 // InsufficientMemory
	EINVALIDFONT    int = 203 // structural violation of a font header
	EFONTDATA       int = 204 // IllegalFontData
	EHEADERFIELDS   int = 205 // IllegalFontHeaderFields
	EFSTMISMATCH    int = 206 // character technology differs from font
	ECHARCLASS      int = 207 // UnsupportedCharacterClass
	ECHARFORMAT     int = 208 // UnsupportedCharacterFormat
	ECHARDATA       int = 209 // IllegalCharacterData
	ESEGMENT        int = 210 // IllegalFontSegment
	ENULLSEGMENT    int = 211 // IllegalNullSegmentSize
	EMISSINGSEGMENT int = 212 // MissingRequiredSegment
	EGTSEGMENT      int = 213 // IllegalGlobalTrueTypeSegment
	EGCSEGMENT      int = 214 // IllegalGalleyCharacterSegment
	EVTSEGMENT      int = 215 // IllegalVerticalTxSegment
	EBRSEGMENT      int = 216 // IllegalBitmapResolutionSegment
	EUNDEFINED      int = 217 // FontUndefined
	EEXISTS         int = 218 // FontNameAlreadyExists
	EREPLACE        int = 219 // CannotReplaceCharacter
	EOVERFLOW       int = 220 // InternalOverflow
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EINTERNAL:
		return "internal error"
	case ERANGE:
		return "range check"
	case EUNIMPLEMENTED:
		return "unimplemented"
	case EMEMORY:
		return "insufficient memory"
	case EINVALIDFONT:
		return "invalid font"
	case EFONTDATA:
		return "illegal font data"
	case EHEADERFIELDS:
		return "illegal font header fields"
	case EFSTMISMATCH:
		return "font scaling technology mismatch"
	case ECHARCLASS:
		return "unsupported character class"
	case ECHARFORMAT:
		return "unsupported character format"
	case ECHARDATA:
		return "illegal character data"
	case ESEGMENT:
		return "illegal font segment"
	case ENULLSEGMENT:
		return "illegal null segment size"
	case EMISSINGSEGMENT:
		return "missing required segment"
	case EGTSEGMENT:
		return "illegal global TrueType segment"
	case EGCSEGMENT:
		return "illegal galley character segment"
	case EVTSEGMENT:
		return "illegal vertical tx segment"
	case EBRSEGMENT:
		return "illegal bitmap resolution segment"
	case EUNDEFINED:
		return "font undefined"
	case EEXISTS:
		return "font name already exists"
	case EREPLACE:
		return "cannot replace character"
	case EOVERFLOW:
		return "internal overflow"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type coreError struct {
	error
	code int
	msg  string
}

func (e coreError) Unwrap() error {
	return e.error
}

func (e coreError) Error() string {
	return fmt.Sprintf("[%d] %v: %s", e.code, e.error, e.msg)
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

var _ AppError = coreError{}

// ErrorWithCode adds an error code to err's error chain.
// Unlike pkg/errors, ErrorWithCode will wrap nil error.
func ErrorWithCode(err error, code int) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return coreError{err, code, errorText(code)}
}

// WrapError wraps an error in a core error, featuring an error code and
// a user message.
// If err is nil, an error denoting NOERROR is returned.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	msg := fmt.Sprintf(format, v...)
	return coreError{err, code, msg}
}

// Code returns the status code associated with an error.
// If no status code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If no message is found, it checks StatusCode and returns that message.
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return coreError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// UserError prints an error to stderr, preferring the user message.
func UserError(err error) {
	if e, ok := err.(AppError); ok {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}
