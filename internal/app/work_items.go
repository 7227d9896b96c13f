package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"weles-ai/internal/client"
	"weles-ai/internal/input"
	"weles-ai/internal/model"
	"weles-ai/internal/output"
)

type RetrieveOptions struct {
	ID       string
	FileName string
	// OutDir, when set, stores the deliverable there instead of printing it.
	OutDir string
}

type WaitOptions struct {
	ID       string
	Interval time.Duration
	Timeout  time.Duration
}

// RunStatus prints one summary for a single id and an ordered list for
// several.
func RunStatus(ctx context.Context, g GlobalOptions, ids []string) error {
	ids = compactIDs(ids)
	if len(ids) == 0 {
		return errors.New("missing id: use --id to provide a work item id")
	}
	s, err := openSession(g)
	if err != nil {
		return err
	}
	defer s.close()

	if len(ids) == 1 {
		res, err := s.api.Status(ctx, model.StatusRequest{ID: ids[0]})
		if err != nil {
			return err
		}
		return output.PrintValue(s.out, res)
	}
	res, err := s.api.StatusMany(ctx, ids, s.settings.StatusConcurrency)
	if err != nil {
		return err
	}
	return output.PrintValue(s.out, res)
}

func RunRetrieve(ctx context.Context, g GlobalOptions, opts RetrieveOptions) error {
	id := strings.TrimSpace(opts.ID)
	fileName := strings.TrimSpace(opts.FileName)
	if id == "" || fileName == "" {
		return errors.New("missing arguments: use --id and --file-name")
	}
	s, err := openSession(g)
	if err != nil {
		return err
	}
	defer s.close()

	res, err := s.api.Retrieve(ctx, model.RetrieveRequest{ID: id, FileName: fileName})
	if err != nil {
		return err
	}
	if strings.TrimSpace(opts.OutDir) == "" {
		return output.PrintJSON(s.out, res)
	}
	p, err := output.WriteDeliverable(opts.OutDir, fileName, res)
	if err != nil {
		return err
	}
	s.log.Info(fmt.Sprintf("saved deliverable %s of %s to %s", fileName, id, p))
	_, err = fmt.Fprintln(s.out, p)
	return err
}

func RunList(ctx context.Context, g GlobalOptions, filters string) error {
	var f model.ListFilter
	if err := input.LoadJSON(filters, "filters", false, &f); err != nil {
		return err
	}
	s, err := openSession(g)
	if err != nil {
		return err
	}
	defer s.close()

	res, err := s.api.List(ctx, f)
	if err != nil {
		return err
	}
	return output.PrintValue(s.out, res)
}

// RunWait polls until the work item is DONE or ERROR. An ERROR outcome is
// printed and then reported as a failure.
func RunWait(ctx context.Context, g GlobalOptions, opts WaitOptions) error {
	id := strings.TrimSpace(opts.ID)
	if id == "" {
		return errors.New("missing id: use --id to provide a work item id")
	}
	s, err := openSession(g)
	if err != nil {
		return err
	}
	defer s.close()

	interval := opts.Interval
	if interval <= 0 {
		interval = s.settings.PollInterval
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = s.settings.PollTimeout
	}
	res, err := s.api.Wait(ctx, id, client.WaitOptions{
		Interval: interval,
		Timeout:  timeout,
		OnStatus: func(ws model.WorkItemSummary) {
			s.log.Event("work_item_status", map[string]any{"id": ws.ID, "status": string(ws.Status)})
		},
	})
	if err != nil {
		if errors.Is(err, client.ErrWaitTimeout) {
			s.log.Warn("wait timed out", err)
		}
		return err
	}
	s.log.Info(fmt.Sprintf("work item %s finished with status %s", res.ID, res.Status))
	if err := output.PrintValue(s.out, res); err != nil {
		return err
	}
	if res.Status == model.StatusError {
		return fmt.Errorf("work item %s finished with status %s", res.ID, res.Status)
	}
	return nil
}

func compactIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
