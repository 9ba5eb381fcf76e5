package usecase

import (
	"math"

	"github.com/ridelabs/drivescore/internal/pkg/models"
	"github.com/ridelabs/drivescore/internal/utils"
)

// scoreEngine holds the score state of one session and applies the per-tick
// update rule. It is not safe for concurrent use; the owning session
// serializes access.
type scoreEngine struct {
	cfg models.ScoringConfig

	points         int
	multiplier     float64
	roadStreakSecs float64
	distanceOnRoad float64
	lastPosition   *models.Coordinate
	onRoad         bool
}

func newScoreEngine(cfg models.ScoringConfig) *scoreEngine {
	return &scoreEngine{
		cfg:        cfg,
		multiplier: 1.0,
	}
}

// update applies one classified motion sample.
//
// The first call after creation or reset only records the baseline position.
// Moves at or below the jitter threshold record the position without moving
// any points, so a stationary vehicle accrues nothing from float noise.
func (e *scoreEngine) update(pos models.Coordinate, onRoad bool, speed, deltaSeconds float64) {
	if e.lastPosition == nil {
		e.lastPosition = &pos
		e.onRoad = onRoad
		return
	}

	distance := utils.DistanceMeters(*e.lastPosition, pos)
	if distance > e.cfg.JitterThresholdMeters {
		if onRoad {
			e.scoreOnRoad(distance, speed, deltaSeconds)
		} else {
			e.scoreOffRoad(distance)
		}
	}

	e.lastPosition = &pos
	e.onRoad = onRoad
}

func (e *scoreEngine) scoreOnRoad(distance, speed, deltaSeconds float64) {
	basePoints := distance * e.cfg.PointsPerMeter
	speedBonus := math.Min(speed/e.cfg.SpeedBonusDivisor, e.cfg.SpeedBonusCap)
	// An on-road update never reduces points
	if earned := math.Floor(basePoints * e.multiplier * speedBonus); earned > 0 {
		e.points += int(earned)
	}
	e.distanceOnRoad += distance

	e.roadStreakSecs += deltaSeconds
	if e.roadStreakSecs >= e.cfg.MultiplierRampSeconds {
		e.multiplier = math.Min(e.multiplier+e.cfg.MultiplierStep, e.cfg.MultiplierMax)
		e.roadStreakSecs = 0
	}
}

func (e *scoreEngine) scoreOffRoad(distance float64) {
	penalty := int(math.Floor(distance * e.cfg.OffRoadPenaltyRate))
	e.points -= penalty
	if e.points < 0 {
		e.points = 0
	}
	e.multiplier = 1.0
	e.roadStreakSecs = 0
}

// reset returns the engine to its zero baseline
func (e *scoreEngine) reset() {
	e.points = 0
	e.multiplier = 1.0
	e.roadStreakSecs = 0
	e.distanceOnRoad = 0
	e.lastPosition = nil
	e.onRoad = false
}

// Achievement labels and their thresholds. The two point tiers are mutually
// exclusive by construction of the ranges; the distance label is independent.
const (
	AchievementPointCollector = "Point Collector"
	AchievementPointHoarder   = "Point Hoarder"
	AchievementRoadWarrior    = "Road Warrior"

	pointCollectorMin = 1000
	pointCollectorMax = 2000
	pointHoarderMin   = 5000
	roadWarriorMeters = 1000.0
)

// achievements evaluates the thresholds against the current state. Pure
// query, nothing is cached or mutated.
func (e *scoreEngine) achievements() []string {
	var earned []string
	if e.points >= pointCollectorMin && e.points < pointCollectorMax {
		earned = append(earned, AchievementPointCollector)
	}
	if e.points >= pointHoarderMin {
		earned = append(earned, AchievementPointHoarder)
	}
	if e.distanceOnRoad >= roadWarriorMeters {
		earned = append(earned, AchievementRoadWarrior)
	}
	return earned
}
