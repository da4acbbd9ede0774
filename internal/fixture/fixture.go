// Package fixture builds the example documents the demo commands run
// on. Both builders construct their document through the public model
// API only, so they double as living documentation of it.
package fixture

import (
	"fmt"

	"taml/internal/expr"
	"taml/internal/model"
	"taml/internal/source"
	"taml/internal/symbols"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Errorf("fixture: %w", err))
	}
	return v
}

func sp(start, end uint32) source.Span {
	return source.Span{Start: start, End: end}
}

// TrainGate models the classic railway crossing: two trains approach a
// bridge guarded by a gate that stops all but one of them.
func TrainGate() *model.Document {
	d := model.NewDocument(nil)
	d.SetPath("traingate.tm")
	exprs := d.Exprs()

	appr := must(d.AddVariable(model.GlobalScope, "appr", symbols.NoTypeRef, expr.NoID, sp(10, 14)))
	stop := must(d.AddVariable(model.GlobalScope, "stop", symbols.NoTypeRef, expr.NoID, sp(16, 20)))
	goSig := must(d.AddVariable(model.GlobalScope, "go", symbols.NoTypeRef, expr.NoID, sp(22, 24)))
	leave := must(d.AddVariable(model.GlobalScope, "leave", symbols.NoTypeRef, expr.NoID, sp(26, 31)))

	// Train(id)
	params := d.Table().NewFrame(d.GlobalFrame())
	d.Table().Declare(params, "id", symbols.NoTypeRef, sp(40, 42))
	train := must(d.AddTemplate("Train", params, sp(34, 39), true, "", ""))
	x := must(d.AddVariable(train, "x", symbols.NoTypeRef, expr.NoID, sp(44, 45)))
	clock := func(op expr.Op, bound int64) expr.ID {
		return exprs.Binary(op, exprs.Ident(x.Sym, sp(0, 0)), exprs.Int(bound, sp(0, 0)), sp(0, 0))
	}

	safe := must(d.AddLocation(train, "Safe", expr.NoID, expr.NoID, sp(50, 54)))
	appro := must(d.AddLocation(train, "Appr", clock(expr.OpLe, 20), expr.NoID, sp(56, 60)))
	stopL := must(d.AddLocation(train, "Stop", expr.NoID, expr.NoID, sp(62, 66)))
	start := must(d.AddLocation(train, "Start", clock(expr.OpLe, 15), expr.NoID, sp(68, 73)))
	cross := must(d.AddLocation(train, "Cross", clock(expr.OpLe, 5), expr.NoID, sp(75, 80)))

	tt := d.Template(train)
	tt.Init = tt.State(safe).Sym

	edge := func(src, dst model.StateID, guard, sync expr.ID) {
		id := must(d.AddEdge(train, tt.State(src).Sym, tt.State(dst).Sym, true, ""))
		e := tt.Edge(id)
		e.Guard = guard
		e.Sync = sync
	}
	edge(safe, appro, expr.NoID, exprs.Ident(appr.Sym, sp(0, 0)))
	edge(appro, cross, clock(expr.OpGe, 10), expr.NoID)
	edge(appro, stopL, clock(expr.OpLe, 10), exprs.Ident(stop.Sym, sp(0, 0)))
	edge(stopL, start, expr.NoID, exprs.Ident(goSig.Sym, sp(0, 0)))
	edge(start, cross, clock(expr.OpGe, 7), expr.NoID)
	edge(cross, safe, expr.NoID, exprs.Ident(leave.Sym, sp(0, 0)))

	// Gate
	gate := must(d.AddTemplate("Gate", symbols.NoFrameID, sp(90, 94), true, "", ""))
	free := must(d.AddLocation(gate, "Free", expr.NoID, expr.NoID, sp(96, 100)))
	occ := must(d.AddLocation(gate, "Occ", expr.NoID, expr.NoID, sp(102, 105)))
	gt := d.Template(gate)
	gt.Init = gt.State(free).Sym
	for _, e := range []struct {
		src, dst model.StateID
		sync     *model.Variable
	}{
		{free, occ, appr},
		{occ, free, leave},
	} {
		id := must(d.AddEdge(gate, gt.State(e.src).Sym, gt.State(e.dst).Sym, true, ""))
		gt.Edge(id).Sync = exprs.Ident(e.sync.Sym, sp(0, 0))
	}

	// Instantiation
	for i, name := range []string{"Train1", "Train2"} {
		arg := exprs.Int(int64(i+1), sp(0, 0))
		iid := must(d.AddInstance(name, &d.Template(train).Instance, symbols.NoFrameID, []expr.ID{arg}, sp(110, 116)))
		d.AddProcess(d.Instance(iid), sp(0, 0))
	}
	gid := must(d.AddInstance("MainGate", &d.Template(gate).Instance, symbols.NoFrameID, nil, sp(118, 126)))
	d.AddProcess(d.Instance(gid), sp(0, 0))

	// stop has priority over go when both are ready
	d.BeginChanPriority(exprs.Ident(stop.Sym, sp(0, 0)))
	d.AddChanPriority('<', exprs.Ident(goSig.Sym, sp(0, 0)))

	d.AddQuery(model.Query{
		Formula: "A[] not deadlock",
		Comment: "the crossing never wedges",
		Expectation: model.Expectation{
			ValueType: model.ExpectSymbolic,
			Status:    model.StatusTrue,
		},
	})
	d.AddQuery(model.Query{
		Formula: "E<> Train1.Cross",
		Comment: "the first train can cross",
		Options: []model.Option{{Name: "order", Value: "bfs"}},
		Expectation: model.Expectation{
			ValueType: model.ExpectSymbolic,
			Status:    model.StatusTrue,
		},
	})

	d.AddPosition(0, 0, 1, "traingate.tm")
	d.AddPosition(60, 0, 8, "traingate.tm")
	d.AddPosition(110, 0, 19, "traingate.tm")

	return d
}

// SenderReceiver is a two-party handshake scenario: a prechart request
// followed by an acknowledged reply and a counter update.
func SenderReceiver() *model.Document {
	d := model.NewDocument(nil)
	d.SetPath("handshake.tm")
	exprs := d.Exprs()

	count := must(d.AddVariable(model.GlobalScope, "count", symbols.NoTypeRef, exprs.Int(0, sp(8, 9)), sp(2, 7)))
	reqCh := must(d.AddVariable(model.GlobalScope, "req", symbols.NoTypeRef, expr.NoID, sp(10, 13)))
	ackCh := must(d.AddVariable(model.GlobalScope, "ack", symbols.NoTypeRef, expr.NoID, sp(15, 18)))

	sender := must(d.AddTemplate("Sender", symbols.NoFrameID, sp(12, 18), true, "", ""))
	idle := must(d.AddLocation(sender, "Idle", expr.NoID, expr.NoID, sp(20, 24)))
	busy := must(d.AddLocation(sender, "Busy", expr.NoID, expr.NoID, sp(26, 30)))
	st := d.Template(sender)
	st.Init = st.State(idle).Sym
	must(d.AddEdge(sender, st.State(idle).Sym, st.State(busy).Sym, true, ""))

	receiver := must(d.AddTemplate("Receiver", symbols.NoFrameID, sp(32, 40), true, "", ""))
	wait := must(d.AddLocation(receiver, "Wait", expr.NoID, expr.NoID, sp(42, 46)))
	got := must(d.AddLocation(receiver, "Got", expr.NoID, expr.NoID, sp(48, 51)))
	rt := d.Template(receiver)
	rt.Init = rt.State(wait).Sym
	must(d.AddEdge(receiver, rt.State(wait).Sym, rt.State(got).Sym, true, ""))

	chart := must(d.AddTemplate("Handshake", symbols.NoFrameID, sp(54, 63), false, "universal", ""))

	s := must(d.AddLscInstance("s", &d.Template(sender).Instance, symbols.NoFrameID, nil, sp(66, 67)))
	sLine := d.AddInstanceLine(chart)
	if err := d.BindInstanceLine(chart, sLine, d.Instance(s), symbols.NoFrameID, nil, sp(66, 67)); err != nil {
		panic(fmt.Errorf("fixture: %w", err))
	}
	r := must(d.AddLscInstance("r", &d.Template(receiver).Instance, symbols.NoFrameID, nil, sp(69, 70)))
	rLine := d.AddInstanceLine(chart)
	if err := d.BindInstanceLine(chart, rLine, d.Instance(r), symbols.NoFrameID, nil, sp(69, 70)); err != nil {
		panic(fmt.Errorf("fixture: %w", err))
	}

	sSym := d.Instance(s).Sym
	rSym := d.Instance(r).Sym
	ct := d.Template(chart)

	req := must(d.AddMessage(chart, sSym, rSym, 0, true))
	ack := must(d.AddMessage(chart, rSym, sSym, 1, false))
	ready := must(d.AddCondition(chart, []symbols.SymbolID{rSym}, 1, false, true))
	bump := must(d.AddUpdate(chart, sSym, 2, false))

	ct.Message(req).Label = exprs.Ident(reqCh.Sym, sp(0, 0))
	ct.Message(ack).Label = exprs.Ident(ackCh.Sym, sp(0, 0))
	ct.Condition(ready).Label = exprs.Binary(expr.OpGe, exprs.Ident(count.Sym, sp(0, 0)), exprs.Int(0, sp(0, 0)), sp(0, 0))
	ct.Update(bump).Label = exprs.Binary(expr.OpAdd, exprs.Ident(count.Sym, sp(0, 0)), exprs.Int(1, sp(0, 0)), sp(0, 0))

	d.AddQuery(model.Query{
		Formula: "Handshake.satisfied",
		Comment: "the handshake scenario is realizable",
		Expectation: model.Expectation{
			ValueType: model.ExpectSymbolic,
			Status:    model.StatusMaybeTrue,
		},
	})

	return d
}
