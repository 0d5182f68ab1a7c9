package main

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ProgressFunc receives the monotonic completion count out of total,
// plus the label of the item that just finished.
type ProgressFunc func(completed, total int, label string)

// CollectInstanceDetails fans the per-instance detail fetch out over a
// bounded worker pool. A failed instance is logged and dropped without
// affecting its siblings, so the result can hold fewer entries than the
// input. Results are sorted by host name.
func CollectInstanceDetails(ctx context.Context, cc *ClientContext, summaries []InstanceSummary, compartmentName string, workers int, progress ProgressFunc) []Instance {
	if workers <= 0 {
		workers = 1
	}

	var mu sync.Mutex
	instances := []Instance{}
	completed := 0

	var g errgroup.Group
	g.SetLimit(workers)

	for _, summary := range summaries {
		summary := summary
		g.Go(func() error {
			instance, err := FetchInstanceDetails(ctx, cc, summary.ID, compartmentName)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Error("Failed to collect instance %s: %v", summary.DisplayName, err)
			} else {
				instances = append(instances, instance)
			}
			completed++
			if progress != nil {
				progress(completed, len(summaries), summary.DisplayName)
			}
			return nil
		})
	}

	// Workers never return errors; they report through the logger and
	// the dropped-result contract instead.
	_ = g.Wait()

	sort.Slice(instances, func(i, j int) bool {
		return instances[i].HostName < instances[j].HostName
	})
	return instances
}
