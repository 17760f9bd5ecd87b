package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLN-BookingFlow/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Debug(format string, v ...interface{}) {}
func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type availabilityResult struct {
	occupancy domain.OccupancyMap
	err       error
}

type availabilityCall struct {
	date  string
	reply chan availabilityResult
}

// blockingSalonClient hands every call to the test, which decides when and
// with what to answer. Lets tests interleave in-flight requests.
type blockingSalonClient struct {
	calls chan *availabilityCall
}

func newBlockingSalonClient() *blockingSalonClient {
	return &blockingSalonClient{calls: make(chan *availabilityCall, 8)}
}

func (c *blockingSalonClient) GetAvailability(ctx context.Context, branchID, staffID int64, serviceIDs []int64, date string) (domain.OccupancyMap, error) {
	call := &availabilityCall{date: date, reply: make(chan availabilityResult, 1)}
	c.calls <- call
	res := <-call.reply
	return res.occupancy, res.err
}

func (c *blockingSalonClient) nextCall(t *testing.T) *availabilityCall {
	t.Helper()
	select {
	case call := <-c.calls:
		return call
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for GetAvailability call")
		return nil
	}
}

type resolveResult struct {
	snapshot *Snapshot
	err      error
}

func resolveAsync(r *Resolver, req Request) chan resolveResult {
	out := make(chan resolveResult, 1)
	go func() {
		snap, err := r.Resolve(context.Background(), req)
		out <- resolveResult{snapshot: snap, err: err}
	}()
	return out
}

func awaitResolve(t *testing.T, ch chan resolveResult) resolveResult {
	t.Helper()
	select {
	case res := <-ch:
		return res
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for Resolve to return")
		return resolveResult{}
	}
}

func TestResolver_Resolve_StoresSnapshot(t *testing.T) {
	client := newBlockingSalonClient()
	resolver := NewResolver(client, nopLogger{})

	req := Request{FlowID: "flow-1", BranchID: 1, StaffID: 5, ServiceIDs: []int64{10}, Date: "2025-06-15"}
	resultCh := resolveAsync(resolver, req)

	call := client.nextCall(t)
	assert.Equal(t, "2025-06-15", call.date)
	call.reply <- availabilityResult{occupancy: domain.OccupancyMap{"10:00": 0}}

	res := awaitResolve(t, resultCh)
	require.NoError(t, res.err)
	require.NotNil(t, res.snapshot)
	assert.Equal(t, "2025-06-15", res.snapshot.Date)
	assert.Equal(t, domain.OccupancyMap{"10:00": 0}, res.snapshot.Occupancy)

	current, ok := resolver.Current("flow-1")
	require.True(t, ok)
	assert.Equal(t, res.snapshot, current)
}

func TestResolver_Resolve_SupersededReturnsNewerSnapshot(t *testing.T) {
	client := newBlockingSalonClient()
	resolver := NewResolver(client, nopLogger{})

	first := resolveAsync(resolver, Request{FlowID: "flow-1", BranchID: 1, StaffID: 5, Date: "2025-06-15"})
	firstCall := client.nextCall(t)

	second := resolveAsync(resolver, Request{FlowID: "flow-1", BranchID: 1, StaffID: 5, Date: "2025-06-16"})
	secondCall := client.nextCall(t)

	// newer request finishes first and stores its snapshot
	secondCall.reply <- availabilityResult{occupancy: domain.OccupancyMap{"11:00": 2}}
	secondRes := awaitResolve(t, second)
	require.NoError(t, secondRes.err)

	// the slow early response must not overwrite the newer snapshot
	firstCall.reply <- availabilityResult{occupancy: domain.OccupancyMap{"09:00": 0}}
	firstRes := awaitResolve(t, first)
	require.NoError(t, firstRes.err)
	assert.Equal(t, "2025-06-16", firstRes.snapshot.Date)

	current, ok := resolver.Current("flow-1")
	require.True(t, ok)
	assert.Equal(t, "2025-06-16", current.Date)
	assert.Equal(t, domain.OccupancyMap{"11:00": 2}, current.Occupancy)
}

func TestResolver_Resolve_SupersededWithoutSnapshot(t *testing.T) {
	client := newBlockingSalonClient()
	resolver := NewResolver(client, nopLogger{})

	first := resolveAsync(resolver, Request{FlowID: "flow-1", Date: "2025-06-15"})
	firstCall := client.nextCall(t)

	second := resolveAsync(resolver, Request{FlowID: "flow-1", Date: "2025-06-16"})
	secondCall := client.nextCall(t)

	// superseded request finishes while the newer one is still in flight
	firstCall.reply <- availabilityResult{occupancy: domain.OccupancyMap{"09:00": 0}}
	firstRes := awaitResolve(t, first)
	assert.ErrorIs(t, firstRes.err, ErrSuperseded)
	assert.Nil(t, firstRes.snapshot)

	secondCall.reply <- availabilityResult{occupancy: domain.OccupancyMap{"11:00": 1}}
	secondRes := awaitResolve(t, second)
	require.NoError(t, secondRes.err)
	assert.Equal(t, "2025-06-16", secondRes.snapshot.Date)
}

func TestResolver_Resolve_SupersededErrorDiscarded(t *testing.T) {
	client := newBlockingSalonClient()
	resolver := NewResolver(client, nopLogger{})

	first := resolveAsync(resolver, Request{FlowID: "flow-1", Date: "2025-06-15"})
	firstCall := client.nextCall(t)

	second := resolveAsync(resolver, Request{FlowID: "flow-1", Date: "2025-06-16"})
	secondCall := client.nextCall(t)

	secondCall.reply <- availabilityResult{occupancy: domain.OccupancyMap{"11:00": 1}}
	secondRes := awaitResolve(t, second)
	require.NoError(t, secondRes.err)

	// a failure of a superseded request must not surface to the caller
	firstCall.reply <- availabilityResult{err: errors.New("upstream timeout")}
	firstRes := awaitResolve(t, first)
	require.NoError(t, firstRes.err)
	assert.Equal(t, "2025-06-16", firstRes.snapshot.Date)
}

func TestResolver_Resolve_ErrorPropagatesForLatest(t *testing.T) {
	client := newBlockingSalonClient()
	resolver := NewResolver(client, nopLogger{})

	upstreamErr := errors.New("upstream timeout")
	resultCh := resolveAsync(resolver, Request{FlowID: "flow-1", Date: "2025-06-15"})
	client.nextCall(t).reply <- availabilityResult{err: upstreamErr}

	res := awaitResolve(t, resultCh)
	assert.ErrorIs(t, res.err, upstreamErr)
	assert.Nil(t, res.snapshot)

	_, ok := resolver.Current("flow-1")
	assert.False(t, ok)
}

func TestResolver_FlowsAreIndependent(t *testing.T) {
	client := newBlockingSalonClient()
	resolver := NewResolver(client, nopLogger{})

	first := resolveAsync(resolver, Request{FlowID: "flow-1", Date: "2025-06-15"})
	firstCall := client.nextCall(t)

	// a request on another flow must not supersede flow-1
	second := resolveAsync(resolver, Request{FlowID: "flow-2", Date: "2025-06-16"})
	secondCall := client.nextCall(t)

	secondCall.reply <- availabilityResult{occupancy: domain.OccupancyMap{"11:00": 1}}
	require.NoError(t, awaitResolve(t, second).err)

	firstCall.reply <- availabilityResult{occupancy: domain.OccupancyMap{"09:00": 0}}
	firstRes := awaitResolve(t, first)
	require.NoError(t, firstRes.err)
	assert.Equal(t, "2025-06-15", firstRes.snapshot.Date)
}

func TestResolver_Invalidate(t *testing.T) {
	client := newBlockingSalonClient()
	resolver := NewResolver(client, nopLogger{})

	resultCh := resolveAsync(resolver, Request{FlowID: "flow-1", Date: "2025-06-15"})
	client.nextCall(t).reply <- availabilityResult{occupancy: domain.OccupancyMap{}}
	require.NoError(t, awaitResolve(t, resultCh).err)

	resolver.Invalidate("flow-1")

	_, ok := resolver.Current("flow-1")
	assert.False(t, ok)
}

func TestResolver_Current_UnknownFlow(t *testing.T) {
	resolver := NewResolver(newBlockingSalonClient(), nopLogger{})

	_, ok := resolver.Current("missing")
	assert.False(t, ok)
}
