package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"weles-ai/internal/model"
	"weles-ai/internal/normalize"
)

const (
	generatePath     = "/plugins/weles-ai/generate"
	listPath         = "/plugins/weles-ai/inference/list"
	deliverablesPath = "/plugins/weles-ai/inference/deliverables"

	defaultStatusFanOut = 4
)

var ErrWaitTimeout = errors.New("timed out waiting for work item")

// HighLevelDesign submits a high level design generation built from stories.
// The response describes the new work item and is returned as received.
func (a *API) HighLevelDesign(ctx context.Context, req model.HLDRequest) (json.RawMessage, error) {
	payload, err := normalize.HighLevelDesign(req)
	if err != nil {
		return nil, err
	}
	var out json.RawMessage
	if err := a.postJSON(ctx, generatePath, payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReverseEngineering submits a reverse engineering report for source code.
func (a *API) ReverseEngineering(ctx context.Context, req model.ReverseEngineeringRequest) (json.RawMessage, error) {
	payload, err := normalize.ReverseEngineering(req)
	if err != nil {
		return nil, err
	}
	var out json.RawMessage
	if err := a.postJSON(ctx, generatePath, payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Retrieve fetches one deliverable of a work item.
func (a *API) Retrieve(ctx context.Context, req model.RetrieveRequest) (json.RawMessage, error) {
	var out json.RawMessage
	if err := a.postJSON(ctx, deliverablesPath, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Status looks a single work item up through the list endpoint. An empty
// answer is reported as normalize.ErrWorkItemNotFound.
func (a *API) Status(ctx context.Context, req model.StatusRequest) (model.WorkItemSummary, error) {
	var items []normalize.RawWorkItem
	if err := a.postJSON(ctx, listPath, normalize.StatusFilter(req.ID), &items); err != nil {
		return model.WorkItemSummary{}, err
	}
	return normalize.First(items, req.ID)
}

// List passes the filter through and keeps the service's ordering.
func (a *API) List(ctx context.Context, filter model.ListFilter) ([]model.WorkItemSummary, error) {
	var items []normalize.RawWorkItem
	if err := a.postJSON(ctx, listPath, filter, &items); err != nil {
		return nil, err
	}
	return normalize.SummarizeAll(items), nil
}

// StatusMany runs Status for every id with at most limit requests in flight.
// Results follow the order of ids; the first failure cancels the rest.
func (a *API) StatusMany(ctx context.Context, ids []string, limit int) ([]model.WorkItemSummary, error) {
	if limit <= 0 {
		limit = defaultStatusFanOut
	}
	out := make([]model.WorkItemSummary, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			s, err := a.Status(gctx, model.StatusRequest{ID: id})
			if err != nil {
				return fmt.Errorf("status %s: %w", id, err)
			}
			out[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

type WaitOptions struct {
	Interval time.Duration
	Timeout  time.Duration
	// OnStatus is called whenever the observed status changes.
	OnStatus func(model.WorkItemSummary)
}

// Wait polls Status until the work item reaches DONE or ERROR. A work item
// in ERROR is returned without an error; callers decide how to report it.
func (a *API) Wait(ctx context.Context, id string, opts WaitOptions) (model.WorkItemSummary, error) {
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	var deadline time.Time
	if opts.Timeout > 0 {
		deadline = time.Now().Add(opts.Timeout)
	}
	var last model.Status
	for {
		s, err := a.Status(ctx, model.StatusRequest{ID: id})
		if err != nil {
			return model.WorkItemSummary{}, err
		}
		if s.Status != last {
			last = s.Status
			if opts.OnStatus != nil {
				opts.OnStatus(s)
			}
		}
		if s.Status.Terminal() {
			return s, nil
		}
		sleep := opts.Interval
		if !deadline.IsZero() {
			left := time.Until(deadline)
			if left <= 0 {
				return s, fmt.Errorf("%w %s after %s (last status %s)", ErrWaitTimeout, id, opts.Timeout, s.Status)
			}
			// The last sleep is cut short so one more poll lands on the deadline.
			if left < sleep {
				sleep = left
			}
		}
		timer := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			timer.Stop()
			return s, ctx.Err()
		case <-timer.C:
		}
	}
}
