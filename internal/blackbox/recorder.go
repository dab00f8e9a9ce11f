package blackbox

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// chunkInterval - период съема аудио-фрагмента в цикле записи
const chunkInterval = 100 * time.Millisecond

// Chunk - один фрагмент записи в кольцевом буфере
type Chunk struct {
	Timestamp  time.Time `json:"timestamp"`
	Index      int       `json:"index"`
	DurationMs int       `json:"duration_ms"`
}

// Summary - итог остановленной записи
type Summary struct {
	RecordingID string        `json:"recording_id"`
	IncidentID  string        `json:"incident_id"`
	StartedAt   time.Time     `json:"started_at"`
	StoppedAt   time.Time     `json:"stopped_at"`
	Duration    time.Duration `json:"duration"`
	ChunkCount  int           `json:"chunk_count"`
}

// recording - одна активная запись "черного ящика"
type recording struct {
	mu          sync.Mutex
	recordingID string
	incidentID  string
	startedAt   time.Time
	buffer      []Chunk // кольцевой буфер последних bufferSize фрагментов
	bufferSize  int
	nextIndex   int
	stop        chan struct{}
	done        chan struct{}
}

// Manager управляет записями "черного ящика" по инцидентам.
// В демо фрагменты симулируются; в реальной системе сюда шел бы звук
// с микрофона устройства.
type Manager struct {
	mu            sync.Mutex
	recordings    map[string]*recording
	bufferSeconds int
	logger        *logrus.Logger
}

// NewManager создает менеджер записей с кольцевым буфером заданной длины
func NewManager(bufferSeconds int, logger *logrus.Logger) *Manager {
	if bufferSeconds <= 0 {
		bufferSeconds = 60
	}
	return &Manager{
		recordings:    make(map[string]*recording),
		bufferSeconds: bufferSeconds,
		logger:        logger,
	}
}

// Start запускает запись для инцидента и возвращает идентификатор записи.
// Повторный запуск для того же инцидента возвращает уже активную запись.
func (m *Manager) Start(incidentID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if rec, ok := m.recordings[incidentID]; ok {
		m.logger.WithField("incident_id", incidentID).Warn("Black box recording already in progress")
		return rec.recordingID, nil
	}

	now := time.Now().UTC()
	rec := &recording{
		recordingID: fmt.Sprintf("recording_%s_%s", incidentID, now.Format("20060102_150405")),
		incidentID:  incidentID,
		startedAt:   now,
		bufferSize:  m.bufferSeconds * int(time.Second/chunkInterval),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
	m.recordings[incidentID] = rec

	go rec.loop()

	m.logger.WithFields(logrus.Fields{
		"incident_id":  incidentID,
		"recording_id": rec.recordingID,
		"buffer_sec":   m.bufferSeconds,
	}).Info("Black box recording started")
	return rec.recordingID, nil
}

// Stop останавливает запись инцидента и возвращает итог.
// Если записи нет, возвращает (nil, nil) - остановка без старта не ошибка.
func (m *Manager) Stop(incidentID string) (*Summary, error) {
	m.mu.Lock()
	rec, ok := m.recordings[incidentID]
	if ok {
		delete(m.recordings, incidentID)
	}
	m.mu.Unlock()

	if !ok {
		m.logger.WithField("incident_id", incidentID).Warn("No active black box recording found")
		return nil, nil
	}

	close(rec.stop)
	<-rec.done

	rec.mu.Lock()
	summary := &Summary{
		RecordingID: rec.recordingID,
		IncidentID:  rec.incidentID,
		StartedAt:   rec.startedAt,
		StoppedAt:   time.Now().UTC(),
		ChunkCount:  len(rec.buffer),
	}
	rec.mu.Unlock()
	summary.Duration = summary.StoppedAt.Sub(summary.StartedAt)

	m.logger.WithFields(logrus.Fields{
		"incident_id":  incidentID,
		"recording_id": summary.RecordingID,
		"chunks":       summary.ChunkCount,
	}).Info("Black box recording stopped")
	return summary, nil
}

// loop - фоновый цикл записи, набивает кольцевой буфер до остановки
func (r *recording) loop() {
	defer close(r.done)

	ticker := time.NewTicker(chunkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case t := <-ticker.C:
			r.mu.Lock()
			chunk := Chunk{
				Timestamp:  t.UTC(),
				Index:      r.nextIndex,
				DurationMs: int(chunkInterval / time.Millisecond),
			}
			r.nextIndex++
			if len(r.buffer) >= r.bufferSize {
				// Кольцевой буфер: вытесняем самый старый фрагмент
				r.buffer = append(r.buffer[1:], chunk)
			} else {
				r.buffer = append(r.buffer, chunk)
			}
			r.mu.Unlock()
		}
	}
}
