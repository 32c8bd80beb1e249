package traces

import "context"

// fakeGateway implements SpanGateway for tests with configurable return
// values and call tracking.
type fakeGateway struct {
	hasSpans   bool
	hasErr     error
	count      int64
	countErr   error
	probeCalls int
	countCalls int
}

func (f *fakeGateway) HasSpans(context.Context, string) (bool, error) {
	f.probeCalls++
	if f.hasErr != nil {
		return false, f.hasErr
	}
	return f.hasSpans, nil
}

func (f *fakeGateway) CountSpans(context.Context, string) (int64, error) {
	f.countCalls++
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.count, nil
}
