package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ridelabs/drivescore/internal/pkg/logger"
	"github.com/ridelabs/drivescore/internal/pkg/models"
	"github.com/ridelabs/drivescore/services/roadclass"
	"github.com/ridelabs/drivescore/services/scoring"
)

const janitorInterval = time.Minute

// session is one scoring session. The tick sequence counter orders
// asynchronous classification completions: a completion whose sequence is
// not newer than the last applied one is stale and gets dropped.
type session struct {
	id string

	mu          sync.Mutex
	engine      *scoreEngine
	lastApplied uint64
	lastActive  time.Time

	nextSeq uint64 // atomic
}

// SessionManager implements scoring.ScoringUC. It drives the classifier
// asynchronously per tick and owns the session registry.
type SessionManager struct {
	classifier roadclass.RoadClassifier
	events     scoring.ScoreEventsGW
	tracks     scoring.TrackRepo
	sink       scoring.StatusSink
	cfg        models.ScoringConfig

	mu       sync.RWMutex
	sessions map[string]*session

	statusMu     sync.Mutex
	statusPushed bool
	lastMode     roadclass.Mode

	stop     chan struct{}
	stopOnce sync.Once
}

// NewSessionManager creates the scoring session manager. events and tracks
// may be nil when the corresponding backends are disabled; sink must not be
// nil (use scoring.NopStatusSink).
func NewSessionManager(classifier roadclass.RoadClassifier, events scoring.ScoreEventsGW, tracks scoring.TrackRepo, sink scoring.StatusSink, cfg models.ScoringConfig) *SessionManager {
	m := &SessionManager{
		classifier: classifier,
		events:     events,
		tracks:     tracks,
		sink:       sink,
		cfg:        cfg,
		sessions:   make(map[string]*session),
		stop:       make(chan struct{}),
	}
	// Seed the transition baseline so a classifier that degrades on its
	// very first query still reads as an error, not a configured fallback
	m.lastMode = classifier.Mode()
	go m.janitor()
	return m
}

// Stop halts the idle-session janitor
func (m *SessionManager) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
}

// CreateSession starts a new scoring session with a fresh score state
func (m *SessionManager) CreateSession(ctx context.Context) (*models.ScoreSnapshot, error) {
	s := &session{
		id:         uuid.New().String(),
		engine:     newScoreEngine(m.cfg),
		lastActive: time.Now(),
	}

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	logger.Info("Session created", logger.String("session_id", s.id))
	return m.snapshotLocked(s), nil
}

// EndSession removes a session
func (m *SessionManager) EndSession(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[sessionID]; !ok {
		return fmt.Errorf("session %s not found", sessionID)
	}
	delete(m.sessions, sessionID)
	logger.Info("Session ended", logger.String("session_id", sessionID))
	return nil
}

// SubmitTick accepts one motion sample and schedules its classification.
// The tick loop is never blocked on the network round trip; the score update
// lands when the classification resolves, and only if no newer completion
// has been applied in the meantime.
func (m *SessionManager) SubmitTick(ctx context.Context, sessionID string, sample models.TickSample) (*models.ScoreSnapshot, error) {
	s, err := m.session(sessionID)
	if err != nil {
		return nil, err
	}

	seq := atomic.AddUint64(&s.nextSeq, 1)

	s.mu.Lock()
	s.lastActive = time.Now()
	snapshot := m.snapshot(s)
	s.mu.Unlock()

	go m.classifyAndApply(s, seq, sample)

	return snapshot, nil
}

// classifyAndApply resolves the on-road classification for a tick and
// applies it to the session unless a newer tick already landed
func (m *SessionManager) classifyAndApply(s *session, seq uint64, sample models.TickSample) {
	// Not tied to the request context: the tick response returns
	// immediately while classification is still in flight.
	ctx := context.Background()

	onRoad := m.classifier.Classify(ctx, sample.Latitude, sample.Longitude)
	m.pushStatus()

	s.mu.Lock()
	if seq <= s.lastApplied {
		s.mu.Unlock()
		logger.Debug("Dropping stale classification",
			logger.String("session_id", s.id),
			logger.Uint64("seq", seq))
		return
	}
	s.engine.update(sample.Coordinate(), onRoad, sample.Speed, sample.DeltaSeconds)
	s.lastApplied = seq
	snapshot := m.snapshot(s)
	s.mu.Unlock()

	if m.events != nil {
		event := models.ScoreUpdatedEvent{
			SessionID:      s.id,
			Seq:            seq,
			Points:         snapshot.Points,
			Multiplier:     snapshot.Multiplier,
			DistanceOnRoad: snapshot.DistanceOnRoad,
			OnRoad:         snapshot.OnRoad,
			Timestamp:      time.Now().UTC(),
		}
		if err := m.events.PublishScoreUpdated(ctx, event); err != nil {
			logger.Warn("Failed to publish score event",
				logger.String("session_id", s.id),
				logger.ErrorField(err))
		}
	}

	if m.tracks != nil {
		point := models.TrackPoint{
			Latitude:  sample.Latitude,
			Longitude: sample.Longitude,
			OnRoad:    onRoad,
			Timestamp: time.Now().UTC(),
		}
		if err := m.tracks.AppendPoint(ctx, s.id, point); err != nil {
			logger.Warn("Failed to record track point",
				logger.String("session_id", s.id),
				logger.ErrorField(err))
		}
	}
}

// pushStatus reflects classifier health into the display sink and the event
// stream, once at startup and again on every mode transition
func (m *SessionManager) pushStatus() {
	mode := m.classifier.Mode()

	m.statusMu.Lock()
	transition := !m.statusPushed || mode != m.lastMode
	wasLive := m.lastMode == roadclass.ModeLive
	m.statusPushed = true
	m.lastMode = mode
	m.statusMu.Unlock()

	if !transition {
		return
	}

	label, color := "Real Roads API", "green"
	if mode == roadclass.ModeFallback {
		label, color = "Fallback Mode", "orange"
		if wasLive {
			// A live session degrading mid-flight is an API failure,
			// not a configured fallback
			label, color = "API Error", "red"
		}
	}

	m.sink.UpdateAPIStatus(label, color)

	if m.events != nil {
		event := models.ClassifierStatusEvent{
			Label:     label,
			Color:     color,
			Mode:      string(mode),
			Timestamp: time.Now().UTC(),
		}
		if err := m.events.PublishClassifierStatus(context.Background(), event); err != nil {
			logger.Warn("Failed to publish classifier status", logger.ErrorField(err))
		}
	}
}

// GetScore returns the current score state of a session
func (m *SessionManager) GetScore(ctx context.Context, sessionID string) (*models.ScoreSnapshot, error) {
	s, err := m.session(sessionID)
	if err != nil {
		return nil, err
	}
	return m.snapshotLocked(s), nil
}

// GetAchievements returns the achievement labels currently satisfied
func (m *SessionManager) GetAchievements(ctx context.Context, sessionID string) ([]string, error) {
	s, err := m.session(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.achievements(), nil
}

// Reset returns a session's score state to its zero baseline. Classifications
// still in flight from before the reset are dropped by the sequence check.
func (m *SessionManager) Reset(ctx context.Context, sessionID string) error {
	s, err := m.session(sessionID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.engine.reset()
	s.lastApplied = atomic.LoadUint64(&s.nextSeq)
	s.lastActive = time.Now()
	s.mu.Unlock()

	logger.Info("Session reset", logger.String("session_id", sessionID))
	return nil
}

// GetTrack returns the most recent trail points of a session
func (m *SessionManager) GetTrack(ctx context.Context, sessionID string, limit int) ([]models.TrackPoint, error) {
	if _, err := m.session(sessionID); err != nil {
		return nil, err
	}
	if m.tracks == nil {
		return nil, nil
	}
	return m.tracks.GetTrack(ctx, sessionID, limit)
}

func (m *SessionManager) session(sessionID string) (*session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}
	return s, nil
}

// snapshot reads the engine state; callers must hold s.mu
func (m *SessionManager) snapshot(s *session) *models.ScoreSnapshot {
	return &models.ScoreSnapshot{
		SessionID:      s.id,
		Points:         s.engine.points,
		Multiplier:     s.engine.multiplier,
		DistanceOnRoad: s.engine.distanceOnRoad,
		OnRoad:         s.engine.onRoad,
		ClassifierMode: string(m.classifier.Mode()),
		UpdatedAt:      s.lastActive,
	}
}

func (m *SessionManager) snapshotLocked(s *session) *models.ScoreSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return m.snapshot(s)
}

// janitor sweeps idle sessions
func (m *SessionManager) janitor() {
	idle := time.Duration(m.cfg.SessionIdleSeconds) * time.Second
	if idle <= 0 {
		return
	}

	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case now := <-ticker.C:
			m.sweepIdle(now, idle)
		}
	}
}

func (m *SessionManager) sweepIdle(now time.Time, idle time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range m.sessions {
		s.mu.Lock()
		expired := now.Sub(s.lastActive) > idle
		s.mu.Unlock()

		if expired {
			delete(m.sessions, id)
			logger.Info("Idle session expired", logger.String("session_id", id))
		}
	}
}
