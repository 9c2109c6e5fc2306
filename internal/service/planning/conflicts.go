package planning

import (
	"github.com/caredesk/homecare-backend-go/internal/domain/assignment"
	"github.com/caredesk/homecare-backend-go/internal/domain/planning"
	"github.com/caredesk/homecare-backend-go/internal/domain/worker"
)

// DetectConflicts runs the pairwise overlap checks and the per-worker
// capacity check over active assignments. O(n²) over the assignment count,
// which is fine at the tens-to-low-hundreds scale this system serves.
// Findings are returned as values; nothing here is an error.
func DetectConflicts(assignments []assignment.Assignment, workers []worker.Worker) []planning.Conflict {
	conflicts := []planning.Conflict{}

	active := make([]assignment.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.IsActive() {
			active = append(active, a)
		}
	}

	for i := 0; i < len(active); i++ {
		for j := i + 1; j < len(active); j++ {
			conflicts = append(conflicts, pairConflicts(active[i], active[j])...)
		}
	}

	conflicts = append(conflicts, capacityConflicts(active, workers)...)
	return conflicts
}

// pairConflicts checks one unordered assignment pair on every weekday. At
// most one conflict is reported per pair and day, even when several slot
// pairs overlap.
func pairConflicts(a, b assignment.Assignment) []planning.Conflict {
	var conflicts []planning.Conflict

	sameWorker := a.WorkerID == b.WorkerID
	sameClient := a.ClientID == b.ClientID && a.WorkerID != b.WorkerID
	if !sameWorker && !sameClient {
		return nil
	}

	for day := assignment.Monday; day <= assignment.Sunday; day++ {
		slotsA := a.Schedule.SlotsOn(day)
		slotsB := b.Schedule.SlotsOn(day)
		if len(slotsA) == 0 || len(slotsB) == 0 {
			continue
		}
		if !anyOverlap(slotsA, slotsB) {
			continue
		}

		if sameWorker {
			conflicts = append(conflicts, planning.Conflict{
				Type:          planning.ConflictWorkerOverlap,
				Day:           day,
				AssignmentIDs: []string{a.ID, b.ID},
				WorkerID:      a.WorkerID,
			})
		} else {
			conflicts = append(conflicts, planning.Conflict{
				Type:          planning.ConflictClientDoubleBook,
				Day:           day,
				AssignmentIDs: []string{a.ID, b.ID},
				ClientID:      a.ClientID,
			})
		}
	}

	return conflicts
}

func anyOverlap(a, b []assignment.TimeSlot) bool {
	for _, s1 := range a {
		for _, s2 := range b {
			if s1.Overlaps(s2) {
				return true
			}
		}
	}
	return false
}

// capacityConflicts flags workers whose combined weekly hours across active
// assignments exceed their committed maximum. Assignments referencing an
// unknown worker are skipped rather than aborting the whole report.
func capacityConflicts(active []assignment.Assignment, workers []worker.Worker) []planning.Conflict {
	totals := make(map[string]float64)
	for _, a := range active {
		totals[a.WorkerID] += WeeklyHours(a.Schedule)
	}

	// Iterate the worker list, not the totals map, to keep report order
	// deterministic between runs.
	var conflicts []planning.Conflict
	for _, w := range workers {
		total, ok := totals[w.ID]
		if !ok {
			continue
		}
		if total > w.MaxWeeklyHours {
			conflicts = append(conflicts, planning.Conflict{
				Type:       planning.ConflictCapacityExceeded,
				WorkerID:   w.ID,
				TotalHours: round1(total),
				MaxHours:   w.MaxWeeklyHours,
			})
		}
	}
	return conflicts
}
