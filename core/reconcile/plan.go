package reconcile

import (
	"sort"
	"time"

	"track-manager/core/assets"
	"track-manager/core/storage"

	mapset "github.com/deckarep/golang-set/v2"
)

// candidate is one name a batch will attempt. asset is nil when the name has no local file.
type candidate struct {
	name  string
	asset *assets.AssetRecord
}

// evaluate applies the staleness rule to one local track. remote is only meaningful
// when found is true.
func evaluate(asset assets.AssetRecord, remote storage.ObjectInfo, found bool, attempt Attempt, hasAttempt bool, tolerance time.Duration, order []SyncReason) SyncStatus {
	status := SyncStatus{
		Name:            asset.Name,
		LocalPath:       asset.Path,
		LocalSizeBytes:  asset.SizeBytes,
		LocalModifiedAt: asset.ModifiedAt,
		RemoteExists:    found,
		SyncError:       attempt.LastError,
	}
	if hasAttempt {
		at := attempt.LastAttempt
		status.LastSyncAttempt = &at
	}

	applies := make(map[SyncReason]bool, 4)
	if !found {
		applies[ReasonNew] = true
	} else {
		size := remote.Size
		modified := remote.LastModified
		status.RemoteSizeBytes = &size
		status.RemoteModifiedAt = &modified

		if remote.Size != asset.SizeBytes {
			applies[ReasonSizeMismatch] = true
		}
		if asset.ModifiedAt.After(remote.LastModified.Add(tolerance)) {
			applies[ReasonModified] = true
		}
	}
	if attempt.LastError != "" {
		applies[ReasonMissing] = true
	}

	for _, reason := range order {
		if applies[reason] {
			status.NeedsSync = true
			status.SyncReason = reason
			break
		}
	}
	return status
}

// statusRank orders failed entries first, then pending ones, then synced ones.
func statusRank(s SyncStatus) int {
	switch {
	case s.SyncError != "":
		return 0
	case s.NeedsSync:
		return 1
	default:
		return 2
	}
}

func sortStatuses(statuses []SyncStatus) {
	sort.SliceStable(statuses, func(i, j int) bool {
		ri, rj := statusRank(statuses[i]), statusRank(statuses[j])
		if ri != rj {
			return ri < rj
		}
		return statuses[i].Name < statuses[j].Name
	})
}

// planAll selects every local track, or only those needing sync, and returns the
// candidates with the complementary skipped names.
func planAll(local []assets.AssetRecord, statuses []SyncStatus, force bool) ([]candidate, []string) {
	byName := make(map[string]*assets.AssetRecord, len(local))
	for i := range local {
		byName[local[i].Name] = &local[i]
	}

	var candidates []candidate
	if force {
		for i := range local {
			candidates = append(candidates, candidate{name: local[i].Name, asset: &local[i]})
		}
	} else {
		for _, s := range statuses {
			if !s.NeedsSync {
				continue
			}
			if asset, ok := byName[s.Name]; ok {
				candidates = append(candidates, candidate{name: s.Name, asset: asset})
			}
		}
	}

	return candidates, skippedNames(local, candidates)
}

// planNamed builds candidates from caller supplied names, deduplicated in order.
func planNamed(local []assets.AssetRecord, names []string) ([]candidate, []string) {
	byName := make(map[string]*assets.AssetRecord, len(local))
	for i := range local {
		byName[local[i].Name] = &local[i]
	}

	seen := mapset.NewThreadUnsafeSet[string]()
	candidates := make([]candidate, 0, len(names))
	for _, name := range names {
		if !seen.Add(name) {
			continue
		}
		candidates = append(candidates, candidate{name: name, asset: byName[name]})
	}

	return candidates, skippedNames(local, candidates)
}

// skippedNames returns the local names that are not candidates, sorted.
func skippedNames(local []assets.AssetRecord, candidates []candidate) []string {
	universe := mapset.NewThreadUnsafeSetWithSize[string](len(local))
	for _, a := range local {
		universe.Add(a.Name)
	}
	selected := mapset.NewThreadUnsafeSetWithSize[string](len(candidates))
	for _, c := range candidates {
		selected.Add(c.name)
	}

	skipped := universe.Difference(selected).ToSlice()
	sort.Strings(skipped)
	return skipped
}
