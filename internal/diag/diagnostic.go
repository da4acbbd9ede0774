package diag

import (
	"taml/internal/source"
)

// Diagnostic is one position-tagged finding. Context carries secondary
// text renderers attach after the message (typically the offending
// source fragment).
type Diagnostic struct {
	Severity Severity
	Code     Code
	Span     source.Span
	Message  string
	Context  string
}

func New(sev Severity, code Code, span source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Span:     span,
		Message:  msg,
	}
}

func NewError(code Code, span source.Span, msg string) Diagnostic {
	return New(SevError, code, span, msg)
}

func NewWarning(code Code, span source.Span, msg string) Diagnostic {
	return New(SevWarning, code, span, msg)
}

func (d Diagnostic) WithContext(ctx string) Diagnostic {
	d.Context = ctx
	return d
}
