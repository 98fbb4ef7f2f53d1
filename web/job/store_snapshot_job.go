// Package job contains the scheduled background jobs of volunteer-hub.
package job

import (
	"os"

	"github.com/openschool/volunteer-hub/database"
	"github.com/openschool/volunteer-hub/logger"
)

// StoreSnapshotJob copies both JSON documents to .bak siblings, so a
// corrupted document that gets silently replaced with an empty one can
// still be recovered by hand.
type StoreSnapshotJob struct{}

func NewStoreSnapshotJob() *StoreSnapshotJob {
	return new(StoreSnapshotJob)
}

// Run is the cron Job interface method.
func (j *StoreSnapshotJob) Run() {
	store := database.GetStore()
	if store == nil {
		return
	}

	paths := []string{store.UsersPath(), store.VolunteersPath()}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warning("store snapshot job err:", err)
			continue
		}
		if err := os.WriteFile(path+".bak", data, 0o640); err != nil {
			logger.Warning("store snapshot job err:", err)
		}
	}
	logger.Debug("store snapshot written")
}
