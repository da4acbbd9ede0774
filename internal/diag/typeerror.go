package diag

import (
	"fmt"

	"taml/internal/source"
)

// TypeError is a semantic condition as a value: a code plus the offending
// name, rendered through a fixed message template. Construction performs no
// control flow; callers propagate it as an ordinary error and may also fold
// it into a Bag with At.
type TypeError struct {
	Code Code
	Name string
}

var typeErrorTemplates = map[Code]string{
	SemUnknownIdentifier:      "unknown identifier: %s",
	SemHasNoMember:            "%s has no member with that name",
	SemNotAStruct:             "%s is not a structure",
	SemDuplicateDefinition:    "duplicate definition of %s",
	SemInvalidType:            "invalid type %s",
	SemNoSuchProcess:          "no such process: %s",
	SemNotATemplate:           "not a template: %s",
	SemNotAProcess:            "%s is not a process",
	SemStrategyNotDeclared:    "strategy not declared: %s",
	SemUnknownDynamicTemplate: "unknown dynamic template %s",
	SemShadowsAVariable:       "%s shadows a variable",
	SemCouldNotLoadLibrary:    "could not load library named %s",
	SemCouldNotLoadFunction:   "could not load function named %s",
	BuildTooManyArguments:     "too many arguments for %s",
	BuildClosedInstance:       "%s accepts no further arguments",
	BuildBadEndpoint:          "%s is not a location or branchpoint",
	BuildUnknownAnchor:        "%s is not an instance line",
}

func (e TypeError) Error() string {
	if tmpl, ok := typeErrorTemplates[e.Code]; ok {
		return fmt.Sprintf(tmpl, e.Name)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Name)
}

// Severity classifies the condition; only the shadowing code is advisory.
func (e TypeError) Severity() Severity {
	if e.Code == SemShadowsAVariable {
		return SevWarning
	}
	return SevError
}

// At converts the condition to a position-tagged diagnostic.
func (e TypeError) At(span source.Span) Diagnostic {
	return New(e.Severity(), e.Code, span, e.Error())
}

func UnknownIdentifierError(name string) TypeError {
	return TypeError{Code: SemUnknownIdentifier, Name: name}
}

func HasNoMemberError(name string) TypeError {
	return TypeError{Code: SemHasNoMember, Name: name}
}

func IsNotAStructError(name string) TypeError {
	return TypeError{Code: SemNotAStruct, Name: name}
}

func DuplicateDefinitionError(name string) TypeError {
	return TypeError{Code: SemDuplicateDefinition, Name: name}
}

func InvalidTypeError(name string) TypeError {
	return TypeError{Code: SemInvalidType, Name: name}
}

func NoSuchProcessError(name string) TypeError {
	return TypeError{Code: SemNoSuchProcess, Name: name}
}

func NotATemplateError(name string) TypeError {
	return TypeError{Code: SemNotATemplate, Name: name}
}

func NotAProcessError(name string) TypeError {
	return TypeError{Code: SemNotAProcess, Name: name}
}

func StrategyNotDeclaredError(name string) TypeError {
	return TypeError{Code: SemStrategyNotDeclared, Name: name}
}

func UnknownDynamicTemplateError(name string) TypeError {
	return TypeError{Code: SemUnknownDynamicTemplate, Name: name}
}

func ShadowsAVariableWarning(name string) TypeError {
	return TypeError{Code: SemShadowsAVariable, Name: name}
}

func CouldNotLoadLibraryError(name string) TypeError {
	return TypeError{Code: SemCouldNotLoadLibrary, Name: name}
}

func CouldNotLoadFunctionError(name string) TypeError {
	return TypeError{Code: SemCouldNotLoadFunction, Name: name}
}

func TooManyArgumentsError(name string) TypeError {
	return TypeError{Code: BuildTooManyArguments, Name: name}
}

func ClosedInstanceError(name string) TypeError {
	return TypeError{Code: BuildClosedInstance, Name: name}
}

func BadEndpointError(name string) TypeError {
	return TypeError{Code: BuildBadEndpoint, Name: name}
}

func UnknownAnchorError(name string) TypeError {
	return TypeError{Code: BuildUnknownAnchor, Name: name}
}
