package scoring

import (
	"sort"

	"house-competition-system/models"
)

// ComputeStandings folds the full event history into one standing per
// supplied house: gold/silver/bronze counts plus the running point
// total. Ranking is by total points descending, ties broken by house
// name ascending so repeated calls over the same data produce identical
// output (the UI numbers ranks positionally).
//
// Results referencing a house that is not in the supplied set — stale
// rows left by house deletion or seeding drift — are skipped silently.
// A reporting query must survive partial referential inconsistency in
// historical data rather than blank the whole table.
//
// O(H + E·3); recomputed from scratch on every call. At tens of houses
// and hundreds of events there is nothing worth caching.
func ComputeStandings(houses []models.House, events []models.Event) []models.HouseStanding {
	byHouse := make(map[string]*models.HouseStanding, len(houses))
	standings := make([]models.HouseStanding, len(houses))
	for i, h := range houses {
		standings[i] = models.HouseStanding{House: h}
		byHouse[h.ID] = &standings[i]
	}

	for _, event := range events {
		for _, result := range event.Results {
			standing, ok := byHouse[result.HouseID]
			if !ok {
				continue // orphaned result, see doc comment
			}
			switch result.Position {
			case 1:
				standing.Gold++
			case 2:
				standing.Silver++
			case 3:
				standing.Bronze++
			}
			standing.TotalPoints += result.Points
		}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].TotalPoints != standings[j].TotalPoints {
			return standings[i].TotalPoints > standings[j].TotalPoints
		}
		return standings[i].House.Name < standings[j].House.Name
	})
	return standings
}
