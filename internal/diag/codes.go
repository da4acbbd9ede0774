package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Construction-contract violations reported by the document itself.
	BuildGeneral          Code = 1000
	BuildTooManyArguments Code = 1001
	BuildClosedInstance   Code = 1002
	BuildBadEndpoint      Code = 1003
	BuildUnknownAnchor    Code = 1004

	// Semantic conditions raised by the type-checking collaborator.
	SemUnknownIdentifier      Code = 2001
	SemHasNoMember            Code = 2002
	SemNotAStruct             Code = 2003
	SemDuplicateDefinition    Code = 2004
	SemInvalidType            Code = 2005
	SemNoSuchProcess          Code = 2006
	SemNotATemplate           Code = 2007
	SemNotAProcess            Code = 2008
	SemStrategyNotDeclared    Code = 2009
	SemUnknownDynamicTemplate Code = 2010
	SemShadowsAVariable       Code = 2011
	SemCouldNotLoadLibrary    Code = 2012
	SemCouldNotLoadFunction   Code = 2013
)

func (c Code) String() string {
	return fmt.Sprintf("TA%04d", uint16(c))
}
