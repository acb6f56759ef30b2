package compare

// Result tags the terminal state of one comparison call.
type Result int

const (
	// ResultStructural means the two sides do not contain the same set of
	// registers (differing lengths or differing address sets).
	ResultStructural Result = iota
	// ResultSameOrder means identical registers in identical positions;
	// DiffCount carries the number of value differences.
	ResultSameOrder
	// ResultReordered means identical registers in different positions;
	// Blocks describes the relocations and DiffCount the value differences.
	ResultReordered
	// ResultError means the branch was abandoned on an internal
	// consistency fault; Err carries the cause.
	ResultError
)

func (r Result) String() string {
	switch r {
	case ResultStructural:
		return "structural-mismatch"
	case ResultSameOrder:
		return "match"
	case ResultReordered:
		return "reordered"
	case ResultError:
		return "error"
	default:
		return "unknown"
	}
}

// Outcome is the authoritative result of one comparison call. It is created
// by Compare, consumed by the caller (typically the report renderer), and
// never persisted by the engine.
type Outcome struct {
	Result   Result `json:"result"`
	LeftLen  int    `json:"left_len"`
	RightLen int    `json:"right_len"`

	// DiffCount is the authoritative number of value differences,
	// always equal to len(ValueDiffs).
	DiffCount  int         `json:"diff_count"`
	ValueDiffs []ValueDiff `json:"value_diffs,omitempty"`

	// Blocks is set for ResultReordered only.
	Blocks []Block `json:"blocks,omitempty"`

	// Partition is set for ResultStructural and lists the unique entries.
	Partition *Partition `json:"partition,omitempty"`

	// LeftDups and RightDups are advisory duplicate scans of each side.
	// They never affect the comparison result.
	LeftDups  []DuplicateGroup `json:"left_dups,omitempty"`
	RightDups []DuplicateGroup `json:"right_dups,omitempty"`

	// Common holds the nested comparison of the common subsequences when a
	// length mismatch left something to compare. The outer result stays
	// ResultStructural no matter what the nested comparison finds.
	Common *Outcome `json:"common,omitempty"`

	// Err is set for ResultError.
	Err error `json:"-"`

	// ErrText mirrors Err for serialized outcomes.
	ErrText string `json:"error,omitempty"`
}

// Clean reports whether the comparison found nothing at all to mention:
// same registers, same order, same values, no duplicates.
func (o Outcome) Clean() bool {
	return o.Result == ResultSameOrder && o.DiffCount == 0 &&
		len(o.LeftDups) == 0 && len(o.RightDups) == 0
}
