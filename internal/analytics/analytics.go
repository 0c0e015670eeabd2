// Package analytics groups and ranks visit records.
//
// Every function works on records already loaded from the store; nothing is
// cached or persisted between calls.
package analytics

import (
	"sort"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gt-landmarks/internal/models"
)

// TopN is the length of the rankings served by the analytics endpoint.
const TopN = 5

// KeyFunc selects the grouping key of a visit.
type KeyFunc func(v models.Visit) uuid.UUID

// LandmarkKey groups visits by landmark.
func LandmarkKey(v models.Visit) uuid.UUID { return v.LandmarkID }

// UserKey groups visits by user.
func UserKey(v models.Visit) uuid.UUID { return v.UserID }

// Count is the number of visits sharing one key.
type Count struct {
	Key   uuid.UUID
	Count int
}

// CountBy groups visits by key and counts each group.
func CountBy(visits []models.Visit, key KeyFunc) map[uuid.UUID]int {
	counts := make(map[uuid.UUID]int)
	for _, v := range visits {
		counts[key(v)]++
	}
	return counts
}

// ByLandmark returns visit counts per landmark id.
func ByLandmark(visits []models.Visit) map[uuid.UUID]int {
	return CountBy(visits, LandmarkKey)
}

// ByUser returns visit counts per user id.
func ByUser(visits []models.Visit) map[uuid.UUID]int {
	return CountBy(visits, UserKey)
}

// Top returns at most n keys ordered by descending count.
// Equal counts keep the order in which their key first appears in visits.
func Top(visits []models.Visit, key KeyFunc, n int) []Count {
	if n <= 0 {
		return nil
	}

	index := make(map[uuid.UUID]int)
	var counts []Count
	for _, v := range visits {
		k := key(v)
		i, ok := index[k]
		if !ok {
			i = len(counts)
			index[k] = i
			counts = append(counts, Count{Key: k})
		}
		counts[i].Count++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// ImageStats returns the total number of training images and the mean per
// landmark. Landmarks without images count as zero; the mean of no landmarks
// is zero.
func ImageStats(landmarks []models.Landmark) (total int, avg float64) {
	for _, l := range landmarks {
		total += len(l.TrainingImages)
	}
	if len(landmarks) == 0 {
		return 0, 0
	}
	return total, float64(total) / float64(len(landmarks))
}
