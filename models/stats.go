package models

import (
	"context"
	"strconv"
	"time"

	"github.com/golang/glog"

	"github.com/microcosm-cc/stash/cache"
)

const statsKey = "stats:last"

// StatsSnapshot is the most recent view of the call counters, written
// by the stats cron job.
type StatsSnapshot struct {
	StoreCalls    int64     `json:"storeCalls"`
	RetrieveCalls int64     `json:"retrieveCalls"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// UpdateStashStats logs the per-method call counters and stores a
// snapshot of them. Run from cron.
func UpdateStashStats() {
	ctx := context.Background()

	snapshot := StatsSnapshot{UpdatedAt: time.Now()}

	for _, method := range []string{MethodStore, MethodRetrieve} {
		value, found := cache.Get(ctx, callCountPrefix+method)
		if !found {
			continue
		}

		n, err := strconv.ParseInt(string(value), 10, 64)
		if err != nil {
			glog.Warningf("ParseInt(%s) %+v", value, err)
			continue
		}

		switch method {
		case MethodStore:
			snapshot.StoreCalls = n
		case MethodRetrieve:
			snapshot.RetrieveCalls = n
		}

		if glog.V(2) {
			glog.Infof("stash: %s called %d times", method, n)
		}
	}

	cache.SetGob(ctx, statsKey, snapshot, 0)
}

// LastStashStats returns the snapshot written by the most recent stats
// cron run, if there has been one.
func LastStashStats(ctx context.Context) (StatsSnapshot, bool) {
	value, found := cache.GetGob(ctx, statsKey, StatsSnapshot{})
	if !found {
		return StatsSnapshot{}, false
	}

	snapshot, ok := value.(StatsSnapshot)
	if !ok {
		return StatsSnapshot{}, false
	}
	return snapshot, true
}
