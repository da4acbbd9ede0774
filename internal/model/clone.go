package model

// Clone deep-copies the document, its symbol table, expression arena,
// diagnostics and position table. Every ID and handle taken against
// the original resolves to the matching entity in the copy, so the two
// documents can diverge freely afterwards.
func (d *Document) Clone() *Document {
	strings := d.strings.Clone()
	out := &Document{
		strings:   strings,
		table:     d.table.Clone(strings),
		exprs:     d.exprs.Clone(),
		bag:       d.bag.Clone(),
		positions: d.positions.Clone(),

		global: d.global.clone(),

		templateList:  append([]TemplateID(nil), d.templateList...),
		dynamicList:   append([]TemplateID(nil), d.dynamicList...),
		dynamicByName: make(map[string]TemplateID, len(d.dynamicByName)),

		instanceList: append([]InstanceID(nil), d.instanceList...),
		lscList:      append([]InstanceID(nil), d.lscList...),

		procPriority: make(map[string]int, len(d.procPriority)),

		beforeUpdate: d.beforeUpdate,
		afterUpdate:  d.afterUpdate,
		options:      append([]Option(nil), d.options...),

		observer:  d.observer,
		path:      d.path,
		libraries: append([]any(nil), d.libraries...),
		pool:      append([]string(nil), d.pool...),
		poolIndex: make(map[string]int, len(d.poolIndex)),
		supported: d.supported,

		hasUrgentTrans:               d.hasUrgentTrans,
		hasPriorities:                d.hasPriorities,
		hasStrictInv:                 d.hasStrictInv,
		stopsClock:                   d.stopsClock,
		hasStrictLowControlledGuards: d.hasStrictLowControlledGuards,
		hasGuardOnRecvBroadcast:      d.hasGuardOnRecvBroadcast,
		syncUsed:                     d.syncUsed,
		modified:                     d.modified,
	}

	for name, id := range d.dynamicByName {
		out.dynamicByName[name] = id
	}
	for name, priority := range d.procPriority {
		out.procPriority[name] = priority
	}
	for s, at := range d.poolIndex {
		out.poolIndex[s] = at
	}

	if len(d.templates) > 0 {
		out.templates = make([]Template, len(d.templates))
		for i := range d.templates {
			out.templates[i] = d.templates[i].clone()
		}
	}
	if len(d.instances) > 0 {
		out.instances = make([]Instance, len(d.instances))
		for i := range d.instances {
			out.instances[i] = d.instances[i].clone()
		}
	}
	if len(d.processes) > 0 {
		out.processes = make([]Instance, len(d.processes))
		for i := range d.processes {
			out.processes[i] = d.processes[i].clone()
		}
	}
	if len(d.chanPriorities) > 0 {
		out.chanPriorities = make([]ChanPriority, len(d.chanPriorities))
		for i := range d.chanPriorities {
			out.chanPriorities[i] = d.chanPriorities[i].clone()
		}
	}
	if len(d.queries) > 0 {
		out.queries = make([]Query, len(d.queries))
		for i := range d.queries {
			out.queries[i] = d.queries[i].clone()
		}
	}
	return out
}
