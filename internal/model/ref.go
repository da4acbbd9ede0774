package model

// RefKind says what kind of entity a symbol's back-reference names.
type RefKind uint8

const (
	RefNone RefKind = iota
	RefVariable
	RefFunction
	RefState
	RefBranchpoint
	RefTemplate
	RefInstance
)

// Ref is the back-reference stored in a symbol's data slot. It locates
// the declared entity by owner and index instead of by address, so it
// survives arena growth and document clones. Template is the owning
// template for template-scoped kinds, GlobalScope for document-scoped
// variables and functions, and unused for RefTemplate and RefInstance,
// whose Index carries the document-level ID.
type Ref struct {
	Kind     RefKind
	Template TemplateID
	Index    uint32
}

func (r Ref) IsValid() bool { return r.Kind != RefNone }

// EndpointKind distinguishes the two node kinds an edge may attach to.
type EndpointKind uint8

const (
	EndpointNone EndpointKind = iota
	EndpointState
	EndpointBranchpoint
)

// Endpoint is an edge attachment point: a location or a branchpoint of
// the same template, never both.
type Endpoint struct {
	Kind  EndpointKind
	Index uint32
}

func (e Endpoint) IsValid() bool       { return e.Kind != EndpointNone }
func (e Endpoint) IsState() bool       { return e.Kind == EndpointState }
func (e Endpoint) IsBranchpoint() bool { return e.Kind == EndpointBranchpoint }

// State returns the location ID, or NoStateID for non-location endpoints.
func (e Endpoint) State() StateID {
	if e.Kind != EndpointState {
		return NoStateID
	}
	return StateID(e.Index)
}

// Branchpoint returns the branchpoint ID, or NoBranchpointID.
func (e Endpoint) Branchpoint() BranchpointID {
	if e.Kind != EndpointBranchpoint {
		return NoBranchpointID
	}
	return BranchpointID(e.Index)
}

func StateEndpoint(id StateID) Endpoint {
	return Endpoint{Kind: EndpointState, Index: uint32(id)}
}

func BranchpointEndpoint(id BranchpointID) Endpoint {
	return Endpoint{Kind: EndpointBranchpoint, Index: uint32(id)}
}
