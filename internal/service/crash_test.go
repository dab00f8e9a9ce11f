package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vish-34/PulseIQ/internal/blackbox"
	"github.com/vish-34/PulseIQ/internal/config"
	"github.com/vish-34/PulseIQ/internal/insurance"
	"github.com/vish-34/PulseIQ/internal/models"
	"github.com/vish-34/PulseIQ/internal/registry"
	"github.com/vish-34/PulseIQ/internal/service"
	"github.com/vish-34/PulseIQ/internal/service/mocks"
	"github.com/vish-34/PulseIQ/internal/webhook"
	webhookmocks "github.com/vish-34/PulseIQ/internal/webhook/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		ConsciousnessWindow:    60 * time.Millisecond,
		ConsciousnessPollEvery: 10 * time.Millisecond,
		TransportDuration:      60 * time.Millisecond,
		TransportPollEvery:     10 * time.Millisecond,
		SwarmTimeout:           time.Second,
		HospitalArrivalRadiusM: 100,
		DefaultPreauthAmount:   50000,
		FamilyEmail:            "family@example.com",
		FamilyPhone:            "+10000000001",
		HospitalEmail:          "er@example.com",
		HospitalPhone:          "+10000000002",
	}
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

type crashFixture struct {
	svc       *service.CrashService
	detector  *mocks.MockTriangulator
	store     *mocks.MockIncidentStore
	locator   *mocks.MockHospitalLocator
	notifier  *mocks.MockNotifier
	policies  *mocks.MockPolicyService
	tokens    *mocks.MockTokenIssuer
	recorder  *mocks.MockRecorder
	publisher *webhookmocks.MockEventPublisher
	registry  *registry.CancelRegistry
}

func newCrashFixture(t *testing.T, cfg *config.Config) *crashFixture {
	ctrl := gomock.NewController(t)
	f := &crashFixture{
		detector:  mocks.NewMockTriangulator(ctrl),
		store:     mocks.NewMockIncidentStore(ctrl),
		locator:   mocks.NewMockHospitalLocator(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
		policies:  mocks.NewMockPolicyService(ctrl),
		tokens:    mocks.NewMockTokenIssuer(ctrl),
		recorder:  mocks.NewMockRecorder(ctrl),
		publisher: webhookmocks.NewMockEventPublisher(ctrl),
		registry:  registry.NewCancelRegistry(testLogger()),
	}
	f.svc = service.NewCrashService(
		cfg, testLogger(), f.detector, f.store, f.registry,
		f.locator, f.notifier, f.policies, f.tokens, f.recorder, f.publisher,
	)
	return f
}

func criticalReading() *models.CrashReading {
	after := 45.0
	return &models.CrashReading{
		UserID:         "user_001",
		GForce:         5.2,
		HeartRate:      145,
		HeartRateAfter: &after,
		VoiceDecibels:  0.0,
		GPS:            models.GPSLocation{Lat: 19.1680, Lon: 72.8500},
		BloodType:      "O+",
		Allergies:      []string{"penicillin"},
		UserConsent:    true,
	}
}

func TestHandleCrash_NonCriticalReturnsToIdle(t *testing.T) {
	f := newCrashFixture(t, testConfig())

	var saved *models.Incident
	f.store.EXPECT().Save(gomock.Any()).Do(func(inc *models.Incident) { saved = inc })
	f.detector.EXPECT().Triangulate(gomock.Any()).Return(false, "MONITOR_MODE - Impact threshold not met (G-Force: 2.1G)")
	f.recorder.EXPECT().Start(gomock.Any()).Return("recording_1", nil)
	f.recorder.EXPECT().Stop(gomock.Any()).Return(nil, nil)

	var events []webhook.IncidentEvent
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e webhook.IncidentEvent) error {
			events = append(events, e)
			return nil
		})

	reading := criticalReading()
	reading.GForce = 2.1
	outcome, err := f.svc.HandleCrash(context.Background(), reading)

	require.NoError(t, err)
	assert.Equal(t, service.OutcomeNonCritical, outcome.Outcome)
	assert.Contains(t, outcome.Status, "MONITOR_MODE")
	assert.Nil(t, outcome.Swarm)

	require.NotNil(t, saved)
	assert.Equal(t, models.StateIdle, saved.State())
	require.Len(t, events, 1)
	assert.Equal(t, webhook.EventNonCritical, events[0].Event)
	assert.Empty(t, f.registry.ActiveIncidents())
}

func TestHandleCrash_CompletedHappyPath(t *testing.T) {
	f := newCrashFixture(t, testConfig())

	var saved *models.Incident
	f.store.EXPECT().Save(gomock.Any()).Do(func(inc *models.Incident) { saved = inc })
	f.detector.EXPECT().Triangulate(gomock.Any()).Return(true, "CRITICAL_EVENT_CONFIRMED")
	f.recorder.EXPECT().Start(gomock.Any()).Return("recording_1", nil)
	f.recorder.EXPECT().Stop(gomock.Any()).Return(&blackbox.Summary{RecordingID: "recording_1", ChunkCount: 12}, nil)

	// Уведомление семьи: авария (email + звонок + SMS) и прибытие (email + SMS)
	f.notifier.EXPECT().SendEmail(gomock.Any(), "family@example.com", gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.notifier.EXPECT().MakeVoiceCall(gomock.Any(), "+10000000001", gomock.Any()).Return(nil, nil)
	f.notifier.EXPECT().SendSMS(gomock.Any(), "+10000000001", gomock.Any()).Return(nil, nil).Times(2)

	h := &models.Hospital{
		ID:         "h1",
		Name:       "City Trauma Center",
		GPS:        models.GPSLocation{Lat: 19.1700, Lon: 72.8510},
		DistanceKm: 1.2,
	}
	f.locator.EXPECT().FindNearest(gomock.Any(), gomock.Any()).Return(h, nil)

	policy := &insurance.Policy{
		PolicyNumber:   "POL-2024-001234",
		Provider:       "HealthCare Insurance Ltd",
		CoverageAmount: 500000,
		Active:         true,
		UserID:         "user_001",
	}
	f.policies.EXPECT().LookupPolicy(gomock.Any(), "user_001").Return(policy, nil)
	f.policies.EXPECT().VerifyCoverage(gomock.Any(), 50000.0, "POL-2024-001234").Return(true, nil)

	// Первый проход с плейсхолдером, второй - с больницей от диспетчера
	f.tokens.EXPECT().GeneratePreauthToken(gomock.Any(), "POL-2024-001234", 50000.0, "pending", gomock.Any()).
		Return("PREAUTH_20260901_AAAAAA", nil)
	f.tokens.EXPECT().GeneratePreauthToken(gomock.Any(), "POL-2024-001234", 50000.0, "h1", gomock.Any()).
		Return("PREAUTH_20260901_BBBBBB", nil)

	// Передача в приемное отделение
	f.notifier.EXPECT().SendEmail(gomock.Any(), "er@example.com", gomock.Any(), gomock.Any()).Return(nil)
	f.notifier.EXPECT().SendSMS(gomock.Any(), "+10000000002", gomock.Any()).Return(nil, nil)

	var events []webhook.IncidentEvent
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e webhook.IncidentEvent) error {
			events = append(events, e)
			return nil
		}).Times(3)

	outcome, err := f.svc.HandleCrash(context.Background(), criticalReading())

	require.NoError(t, err)
	assert.Equal(t, service.OutcomeCompleted, outcome.Outcome)
	assert.Equal(t, service.StatusProtocolCompleted, outcome.Status)
	assert.True(t, outcome.FamilyNotified)
	require.NotNil(t, outcome.Swarm)
	require.NotNil(t, outcome.Swarm.Dispatch)
	assert.Equal(t, "h1", outcome.Swarm.Dispatch.Hospital.ID)
	require.NotNil(t, outcome.Swarm.Preauth)
	assert.Equal(t, "PREAUTH_20260901_BBBBBB", outcome.Swarm.Preauth.Token)
	assert.Equal(t, "h1", outcome.Swarm.Preauth.HospitalID)
	require.NotNil(t, outcome.Swarm.Medical)
	assert.Equal(t, "O+", outcome.Swarm.Medical.Dashboard.BloodType)
	assert.NotEmpty(t, outcome.Swarm.Medical.QR)
	require.NotNil(t, outcome.BlackBox)
	assert.Equal(t, "recording_1", outcome.BlackBox.RecordingID)

	require.NotNil(t, saved)
	assert.Equal(t, models.StateCompleted, saved.State())
	assert.NotNil(t, saved.ConfirmedAt())

	require.Len(t, events, 3)
	assert.Equal(t, webhook.EventCriticalConfirmed, events[0].Event)
	assert.Equal(t, webhook.EventHospitalArrived, events[1].Event)
	assert.Equal(t, webhook.EventCompleted, events[2].Event)
	assert.Empty(t, f.registry.ActiveIncidents())
}

func TestHandleCrash_CancelledDuringConsciousnessWindow(t *testing.T) {
	cfg := testConfig()
	cfg.ConsciousnessWindow = 2 * time.Second
	cfg.ConsciousnessPollEvery = 20 * time.Millisecond
	f := newCrashFixture(t, cfg)

	var saved *models.Incident
	f.store.EXPECT().Save(gomock.Any()).Do(func(inc *models.Incident) { saved = inc })
	f.detector.EXPECT().Triangulate(gomock.Any()).Return(true, "CRITICAL_EVENT_CONFIRMED")
	f.recorder.EXPECT().Start(gomock.Any()).Return("recording_1", nil)
	f.recorder.EXPECT().Stop(gomock.Any()).Return(nil, nil)

	var events []webhook.IncidentEvent
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e webhook.IncidentEvent) error {
			events = append(events, e)
			return nil
		})

	done := make(chan *service.CrashOutcome, 1)
	go func() {
		outcome, err := f.svc.HandleCrash(context.Background(), criticalReading())
		assert.NoError(t, err)
		done <- outcome
	}()

	// Ждем регистрации инцидента, затем отменяем
	require.Eventually(t, func() bool {
		return len(f.svc.ActiveIncidents()) == 1
	}, time.Second, 10*time.Millisecond)
	require.True(t, f.svc.CancelIncident(f.svc.ActiveIncidents()[0]))

	var outcome *service.CrashOutcome
	select {
	case outcome = <-done:
	case <-time.After(time.Second):
		t.Fatal("HandleCrash did not return after cancellation")
	}

	assert.Equal(t, service.OutcomeCancelled, outcome.Outcome)
	assert.Equal(t, models.StateIdle, saved.State())
	assert.Nil(t, saved.ConfirmedAt())
	require.Len(t, events, 1)
	assert.Equal(t, webhook.EventCancelled, events[0].Event)
	assert.Empty(t, f.svc.ActiveIncidents())
}

func TestHandleCrash_DispatchFailureDoesNotAbortOtherAgents(t *testing.T) {
	f := newCrashFixture(t, testConfig())

	f.store.EXPECT().Save(gomock.Any())
	f.detector.EXPECT().Triangulate(gomock.Any()).Return(true, "CRITICAL_EVENT_CONFIRMED")
	f.recorder.EXPECT().Start(gomock.Any()).Return("recording_1", nil)
	f.recorder.EXPECT().Stop(gomock.Any()).Return(nil, nil)

	f.notifier.EXPECT().SendEmail(gomock.Any(), "family@example.com", gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.notifier.EXPECT().MakeVoiceCall(gomock.Any(), "+10000000001", gomock.Any()).Return(nil, nil)
	f.notifier.EXPECT().SendSMS(gomock.Any(), "+10000000001", gomock.Any()).Return(nil, nil).Times(2)

	f.locator.EXPECT().FindNearest(gomock.Any(), gomock.Any()).Return(nil, errors.New("places api unavailable"))

	policy := &insurance.Policy{PolicyNumber: "POL-2024-001234", Provider: "HealthCare Insurance Ltd", Active: true}
	f.policies.EXPECT().LookupPolicy(gomock.Any(), "user_001").Return(policy, nil)
	f.policies.EXPECT().VerifyCoverage(gomock.Any(), 50000.0, "POL-2024-001234").Return(true, nil)
	// Без больницы от диспетчера второй проход не выполняется
	f.tokens.EXPECT().GeneratePreauthToken(gomock.Any(), "POL-2024-001234", 50000.0, "pending", gomock.Any()).
		Return("PREAUTH_20260901_AAAAAA", nil)

	f.notifier.EXPECT().SendEmail(gomock.Any(), "er@example.com", gomock.Any(), gomock.Any()).Return(nil)
	f.notifier.EXPECT().SendSMS(gomock.Any(), "+10000000002", gomock.Any()).Return(nil, nil)

	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	outcome, err := f.svc.HandleCrash(context.Background(), criticalReading())

	require.NoError(t, err)
	assert.Equal(t, service.OutcomeCompleted, outcome.Outcome)
	require.NotNil(t, outcome.Swarm.Dispatch)
	assert.Contains(t, outcome.Swarm.Dispatch.Error, "places api unavailable")
	assert.Nil(t, outcome.Swarm.Dispatch.Hospital)
	require.NotNil(t, outcome.Swarm.Medical)
	assert.Empty(t, outcome.Swarm.Medical.Error)
	require.NotNil(t, outcome.Swarm.Preauth)
	assert.Equal(t, "PREAUTH_20260901_AAAAAA", outcome.Swarm.Preauth.Token)
	assert.Equal(t, "pending", outcome.Swarm.Preauth.HospitalID)
}

func TestHandleCrash_AllFamilyChannelsFail(t *testing.T) {
	f := newCrashFixture(t, testConfig())

	f.store.EXPECT().Save(gomock.Any())
	f.detector.EXPECT().Triangulate(gomock.Any()).Return(true, "CRITICAL_EVENT_CONFIRMED")
	f.recorder.EXPECT().Start(gomock.Any()).Return("recording_1", nil)
	f.recorder.EXPECT().Stop(gomock.Any()).Return(nil, nil)

	f.notifier.EXPECT().SendEmail(gomock.Any(), "family@example.com", gomock.Any(), gomock.Any()).Return(errors.New("smtp down")).Times(2)
	f.notifier.EXPECT().MakeVoiceCall(gomock.Any(), "+10000000001", gomock.Any()).Return(nil, errors.New("twilio down"))
	f.notifier.EXPECT().SendSMS(gomock.Any(), "+10000000001", gomock.Any()).Return(nil, errors.New("twilio down")).Times(2)

	h := &models.Hospital{ID: "h1", GPS: models.GPSLocation{Lat: 19.1700, Lon: 72.8510}}
	f.locator.EXPECT().FindNearest(gomock.Any(), gomock.Any()).Return(h, nil)

	policy := &insurance.Policy{PolicyNumber: "POL-2024-001234", Active: true}
	f.policies.EXPECT().LookupPolicy(gomock.Any(), "user_001").Return(policy, nil)
	f.policies.EXPECT().VerifyCoverage(gomock.Any(), 50000.0, "POL-2024-001234").Return(true, nil)
	f.tokens.EXPECT().GeneratePreauthToken(gomock.Any(), "POL-2024-001234", 50000.0, "pending", gomock.Any()).
		Return("PREAUTH_20260901_AAAAAA", nil)
	f.tokens.EXPECT().GeneratePreauthToken(gomock.Any(), "POL-2024-001234", 50000.0, "h1", gomock.Any()).
		Return("PREAUTH_20260901_BBBBBB", nil)

	f.notifier.EXPECT().SendEmail(gomock.Any(), "er@example.com", gomock.Any(), gomock.Any()).Return(nil)
	f.notifier.EXPECT().SendSMS(gomock.Any(), "+10000000002", gomock.Any()).Return(nil, nil)

	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	outcome, err := f.svc.HandleCrash(context.Background(), criticalReading())

	// Отказ всех каналов уведомления семьи не прерывает протокол
	require.NoError(t, err)
	assert.Equal(t, service.OutcomeCompleted, outcome.Outcome)
	assert.False(t, outcome.FamilyNotified)
}

func TestIncidentStatusAndLogs(t *testing.T) {
	f := newCrashFixture(t, testConfig())

	incident := models.NewIncident("inc_lookup")
	incident.Transition(models.StateMonitoring, "Sensor reading received", nil)
	f.store.EXPECT().GetByID("inc_lookup").Return(incident, nil).Times(2)
	f.store.EXPECT().GetByID("inc_missing").Return(nil, errors.New("incident with id inc_missing not found")).Times(2)

	status, err := f.svc.IncidentStatus("inc_lookup")
	require.NoError(t, err)
	assert.Equal(t, "inc_lookup", status.IncidentID)
	assert.Equal(t, models.StateMonitoring, status.State)

	logs, err := f.svc.IncidentLogs("inc_lookup", 10)
	require.NoError(t, err)
	assert.NotEmpty(t, logs)

	_, err = f.svc.IncidentStatus("inc_missing")
	assert.Error(t, err)
	_, err = f.svc.IncidentLogs("inc_missing", 10)
	assert.Error(t, err)
}
