package refinement

// InputKind names the primitive a refinement accepts at the boundary.
type InputKind string

const (
	KindNumber InputKind = "number"
	KindString InputKind = "string"
	KindTime   InputKind = "time"
)

// CheckResult reports the outcome of testing one value against a refinement.
// Value holds the refined value when Valid; Reason holds the validation
// message otherwise.
type CheckResult struct {
	Refinement string
	Input      any
	Valid      bool
	Value      any
	Reason     string
}

// Descriptor is the public view of a catalog entry.
type Descriptor struct {
	Name    string
	Kind    InputKind
	Implies []string
}
