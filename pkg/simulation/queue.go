package simulation

// machineRef is a stable handle into the engine's machine containers,
// resolved through the engine rather than held as a pointer.
type machineRef struct {
	typeIndex int
	ordinal   int
}

var noMachine = machineRef{typeIndex: -1, ordinal: -1}

// repairQueue is a FIFO of machines awaiting an adjuster. A machine appears
// at most once at a time.
type repairQueue struct {
	refs []machineRef
}

func (q *repairQueue) Push(ref machineRef) {
	q.refs = append(q.refs, ref)
}

func (q *repairQueue) Pop() machineRef {
	ref := q.refs[0]
	q.refs = q.refs[1:]
	return ref
}

func (q *repairQueue) Len() int {
	return len(q.refs)
}

func (q *repairQueue) Reset() {
	q.refs = nil
}
