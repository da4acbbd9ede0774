package model

// Document-level IDs address the template and instance arenas. IDs are
// 1-based; the zero value never names a live entity.
type (
	TemplateID uint32
	InstanceID uint32
)

// Template-level IDs address the per-template sequences. They are
// 1-based within their owning template and meaningless without it.
type (
	StateID        uint32
	BranchpointID  uint32
	EdgeID         uint32
	InstanceLineID uint32
	MessageID      uint32
	ConditionID    uint32
	UpdateID       uint32
)

const (
	NoTemplateID TemplateID = 0
	NoInstanceID InstanceID = 0

	NoStateID        StateID        = 0
	NoBranchpointID  BranchpointID  = 0
	NoEdgeID         EdgeID         = 0
	NoInstanceLineID InstanceLineID = 0
	NoMessageID      MessageID      = 0
	NoConditionID    ConditionID    = 0
	NoUpdateID       UpdateID       = 0
)

// GlobalScope addresses the document's own declarations in operations
// that accept either a template or the global block as owner.
const GlobalScope TemplateID = 0

func (id TemplateID) IsValid() bool     { return id != NoTemplateID }
func (id InstanceID) IsValid() bool     { return id != NoInstanceID }
func (id StateID) IsValid() bool        { return id != NoStateID }
func (id BranchpointID) IsValid() bool  { return id != NoBranchpointID }
func (id EdgeID) IsValid() bool         { return id != NoEdgeID }
func (id InstanceLineID) IsValid() bool { return id != NoInstanceLineID }
func (id MessageID) IsValid() bool      { return id != NoMessageID }
func (id ConditionID) IsValid() bool    { return id != NoConditionID }
func (id UpdateID) IsValid() bool       { return id != NoUpdateID }
