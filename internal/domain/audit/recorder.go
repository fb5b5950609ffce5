package audit

import "context"

// Recorder is the write-only audit sink. Implementations must honor the
// ambient transaction when one is present in the context so audit rows commit
// with the state change they describe.
type Recorder interface {
	Record(ctx context.Context, entry *Entry) error
}
