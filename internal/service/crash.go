package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vish-34/PulseIQ/internal/blackbox"
	"github.com/vish-34/PulseIQ/internal/config"
	"github.com/vish-34/PulseIQ/internal/hospital"
	"github.com/vish-34/PulseIQ/internal/insurance"
	"github.com/vish-34/PulseIQ/internal/medical"
	"github.com/vish-34/PulseIQ/internal/models"
	"github.com/vish-34/PulseIQ/internal/notifier"
	"github.com/vish-34/PulseIQ/internal/registry"
	"github.com/vish-34/PulseIQ/internal/webhook"
)

//go:generate mockgen -source=crash.go -destination=mocks/crash_mock.go -package=mocks

// Triangulator принимает решение о критичности по показаниям датчиков
type Triangulator interface {
	Triangulate(reading *models.CrashReading) (bool, string)
}

// IncidentStore - хранилище инцидентов
type IncidentStore interface {
	Save(incident *models.Incident)
	GetByID(id string) (*models.Incident, error)
	Count() int
}

// HospitalLocator подбирает ближайший травмоцентр к точке аварии
type HospitalLocator interface {
	FindNearest(ctx context.Context, gps models.GPSLocation) (*models.Hospital, error)
}

// Notifier - каналы уведомлений (email, SMS, голосовой вызов)
type Notifier interface {
	SendEmail(ctx context.Context, to, subject, body string) error
	SendSMS(ctx context.Context, to, text string) (*notifier.DeliveryReceipt, error)
	MakeVoiceCall(ctx context.Context, to, text string) (*notifier.DeliveryReceipt, error)
}

// PolicyService - поиск полиса и проверка покрытия
type PolicyService interface {
	LookupPolicy(ctx context.Context, userID string) (*insurance.Policy, error)
	VerifyCoverage(ctx context.Context, amount float64, policyNumber string) (bool, error)
}

// TokenIssuer выпускает токены предавторизации оплаты
type TokenIssuer interface {
	GeneratePreauthToken(ctx context.Context, policyNumber string, amount float64, hospitalID, incidentID string) (string, error)
}

// Recorder - черный ящик: кольцевая запись телеметрии инцидента
type Recorder interface {
	Start(incidentID string) (string, error)
	Stop(incidentID string) (*blackbox.Summary, error)
}

// Orchestrator - интерфейс оркестратора реагирования для HTTP-слоя
type Orchestrator interface {
	HandleCrash(ctx context.Context, reading *models.CrashReading) (*CrashOutcome, error)
	CancelIncident(incidentID string) bool
	CancelAll() int
	ActiveIncidents() []string
	IncidentStatus(incidentID string) (*models.IncidentStatus, error)
	IncidentLogs(incidentID string, limit int) ([]models.TransitionLogEntry, error)
	IncidentCount() int
}

// CrashService - оркестратор реагирования на аварию: ведет инцидент по
// конечному автомату от срабатывания датчиков до прибытия в больницу
type CrashService struct {
	cfg       *config.Config
	log       *logrus.Logger
	detector  Triangulator
	store     IncidentStore
	registry  *registry.CancelRegistry
	locator   HospitalLocator
	notifier  Notifier
	policies  PolicyService
	tokens    TokenIssuer
	recorder  Recorder
	publisher webhook.EventPublisher
}

// NewCrashService создает новый CrashService
func NewCrashService(
	cfg *config.Config,
	log *logrus.Logger,
	detector Triangulator,
	store IncidentStore,
	cancelRegistry *registry.CancelRegistry,
	locator HospitalLocator,
	notifier Notifier,
	policies PolicyService,
	tokens TokenIssuer,
	recorder Recorder,
	publisher webhook.EventPublisher,
) *CrashService {
	return &CrashService{
		cfg:       cfg,
		log:       log,
		detector:  detector,
		store:     store,
		registry:  cancelRegistry,
		locator:   locator,
		notifier:  notifier,
		policies:  policies,
		tokens:    tokens,
		recorder:  recorder,
		publisher: publisher,
	}
}

// HandleCrash проводит инцидент через весь протокол реагирования.
// Блокируется до завершения протокола; отмена приходит через реестр
// отмен и проверяется на каждой точке опроса.
func (s *CrashService) HandleCrash(ctx context.Context, reading *models.CrashReading) (*CrashOutcome, error) {
	incidentID := "inc_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	incident := models.NewIncident(incidentID)
	incident.AttachReading(reading)
	s.store.Save(incident)

	s.log.WithFields(logrus.Fields{
		"service":     "CrashService",
		"method":      "HandleCrash",
		"incident_id": incidentID,
		"g_force":     reading.GForce,
	}).Info("Crash trigger received")

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.registry.Register(incidentID, cancel)
	defer s.registry.Unregister(incidentID)

	incident.Transition(models.StateMonitoring, "Sensor reading received", map[string]any{
		"g_force":        reading.GForce,
		"heart_rate":     reading.HeartRate,
		"voice_decibels": reading.VoiceDecibels,
	})

	if _, err := s.recorder.Start(incidentID); err != nil {
		s.log.WithFields(logrus.Fields{
			"service":     "CrashService",
			"incident_id": incidentID,
			"error":       err.Error(),
		}).Warn("Failed to start black box recording")
	}

	critical, status := s.detector.Triangulate(reading)
	if !critical {
		_, _ = s.recorder.Stop(incidentID)
		incident.Transition(models.StateIdle, status, nil)
		s.publish(incident, webhook.EventNonCritical, status, nil)
		return &CrashOutcome{IncidentID: incidentID, Outcome: OutcomeNonCritical, Status: status}, nil
	}

	incident.Transition(models.StateTriangulationPending, "All confirmations present, awaiting user response", nil)
	if cancelled := s.consciousnessWindow(runCtx, incident); cancelled {
		_, _ = s.recorder.Stop(incidentID)
		incident.Transition(models.StateIdle, "Cancelled during consciousness window", nil)
		s.publish(incident, webhook.EventCancelled, "CANCELLED", nil)
		return &CrashOutcome{IncidentID: incidentID, Outcome: OutcomeCancelled, Status: "CANCELLED"}, nil
	}

	incident.Transition(models.StateCriticalConfirmed, "No user response within window, critical event confirmed", nil)
	s.publish(incident, webhook.EventCriticalConfirmed, "CRITICAL_EVENT_CONFIRMED", map[string]any{
		"gps": reading.GPS,
	})

	familyNotified := s.notifyFamily(runCtx, incident)
	incident.SetMetadata("family_notified", familyNotified)

	incident.Transition(models.StateAgentsRunning, "Launching response agents", nil)
	swarm := s.runSwarm(runCtx, incident, reading)
	if swarm.Dispatch != nil && swarm.Dispatch.Hospital != nil {
		incident.SetHospitalGPS(swarm.Dispatch.Hospital.GPS)
	}

	if cancelled := s.transportLoop(runCtx, incident, reading, swarm); cancelled {
		summary, _ := s.recorder.Stop(incidentID)
		incident.Transition(models.StateCompleted, "Cancelled during transport", nil)
		s.publish(incident, webhook.EventCancelled, "CANCELLED", nil)
		return &CrashOutcome{
			IncidentID:     incidentID,
			Outcome:        OutcomeCancelled,
			Status:         "CANCELLED",
			FamilyNotified: familyNotified,
			Swarm:          swarm,
			BlackBox:       summary,
		}, nil
	}

	incident.Transition(models.StateHospitalMode, "Arrived within hospital geofence", nil)
	s.publish(incident, webhook.EventHospitalArrived, "HOSPITAL_MODE", nil)
	s.notifyHospital(runCtx, incident, swarm)
	s.notifyFamilyArrival(runCtx, incident, swarm)

	summary, err := s.recorder.Stop(incidentID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"service":     "CrashService",
			"incident_id": incidentID,
			"error":       err.Error(),
		}).Warn("Failed to stop black box recording")
	}
	if summary != nil {
		incident.SetMetadata("blackbox_recording_id", summary.RecordingID)
	}

	incident.Transition(models.StateCompleted, "Incident response completed", nil)
	s.publish(incident, webhook.EventCompleted, "COMPLETED", nil)

	return &CrashOutcome{
		IncidentID:     incidentID,
		Outcome:        OutcomeCompleted,
		Status:         StatusProtocolCompleted,
		FamilyNotified: familyNotified,
		Swarm:          swarm,
		BlackBox:       summary,
	}, nil
}

// consciousnessWindow ждет ответа пользователя в течение окна, опрашивая
// отмену на каждом тике. Реестр отмен сигнализирует через cancel-функцию
// хэндла, поэтому запрос отмены наблюдается здесь как ctx.Done().
// Возвращает true, если инцидент был отменен до истечения окна.
func (s *CrashService) consciousnessWindow(ctx context.Context, incident *models.Incident) bool {
	deadline := time.Now().Add(s.cfg.ConsciousnessWindow)
	ticker := time.NewTicker(s.cfg.ConsciousnessPollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return true
		case <-ticker.C:
			if !time.Now().Before(deadline) {
				return false
			}
		}
	}
}

// notifyFamily уведомляет семью по всем каналам. Лучший из возможных
// результат: успех, если сработал хотя бы один канал.
func (s *CrashService) notifyFamily(ctx context.Context, incident *models.Incident) bool {
	reading := incident.Reading()
	message := fmt.Sprintf(
		"EMERGENCY: a severe crash involving your family member was detected at lat %.4f, lon %.4f. Emergency services have been dispatched.",
		reading.GPS.Lat, reading.GPS.Lon,
	)

	emailErr := s.notifier.SendEmail(ctx, s.cfg.FamilyEmail, "Emergency crash alert", message)
	_, callErr := s.notifier.MakeVoiceCall(ctx, s.cfg.FamilyPhone, message)
	_, smsErr := s.notifier.SendSMS(ctx, s.cfg.FamilyPhone, message)

	for channel, err := range map[string]error{"email": emailErr, "call": callErr, "sms": smsErr} {
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"service":     "CrashService",
				"incident_id": incident.ID(),
				"channel":     channel,
				"error":       err.Error(),
			}).Warn("Family notification channel failed")
		}
	}

	notified := emailErr == nil || callErr == nil || smsErr == nil
	s.log.WithFields(logrus.Fields{
		"service":     "CrashService",
		"incident_id": incident.ID(),
		"notified":    notified,
	}).Info("Family notification finished")
	return notified
}

// notifyFamilyArrival сообщает семье о прибытии в больницу. Как и аварийное
// уведомление - лучший из возможных, отказ каналов только логируется.
func (s *CrashService) notifyFamilyArrival(ctx context.Context, incident *models.Incident, swarm *SwarmResult) {
	hospitalName := "the nearest trauma center"
	if swarm.Dispatch != nil && swarm.Dispatch.Hospital != nil {
		hospitalName = swarm.Dispatch.Hospital.Name
	}
	message := fmt.Sprintf("Update: your family member has arrived at %s and is receiving care.", hospitalName)

	if err := s.notifier.SendEmail(ctx, s.cfg.FamilyEmail, "Hospital arrival update", message); err != nil {
		s.log.WithFields(logrus.Fields{
			"service":     "CrashService",
			"incident_id": incident.ID(),
			"error":       err.Error(),
		}).Warn("Family arrival email failed")
	}
	if _, err := s.notifier.SendSMS(ctx, s.cfg.FamilyPhone, message); err != nil {
		s.log.WithFields(logrus.Fields{
			"service":     "CrashService",
			"incident_id": incident.ID(),
			"error":       err.Error(),
		}).Warn("Family arrival SMS failed")
	}
}

// runSwarm запускает трех агентов параллельно: диспетчер подбирает
// больницу, медицинский агент собирает панель для приемного отделения,
// страховой агент проверяет полис и выпускает предавторизацию. Агенты
// независимы, общий дедлайн задается SwarmTimeout.
func (s *CrashService) runSwarm(ctx context.Context, incident *models.Incident, reading *models.CrashReading) *SwarmResult {
	swarmCtx, cancel := context.WithTimeout(ctx, s.cfg.SwarmTimeout)
	defer cancel()

	started := time.Now()
	result := &SwarmResult{}
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		result.Dispatch = s.dispatchAgent(swarmCtx, reading)
	}()
	go func() {
		defer wg.Done()
		result.Medical = s.medicalAgent(incident.ID(), reading)
	}()
	go func() {
		defer wg.Done()
		result.Preauth = s.preauthAgent(swarmCtx, incident.ID(), reading)
	}()
	wg.Wait()

	// Второй проход страхового агента: предавторизация перевыпускается
	// под больницу, которую выбрал диспетчер
	if result.Preauth != nil && result.Preauth.Error == "" &&
		result.Dispatch != nil && result.Dispatch.Hospital != nil {
		s.refinePreauth(swarmCtx, incident.ID(), result.Preauth, result.Dispatch.Hospital)
	}

	result.Duration = time.Since(started)
	s.log.WithFields(logrus.Fields{
		"service":     "CrashService",
		"incident_id": incident.ID(),
		"duration":    result.Duration.String(),
	}).Info("Response agents finished")
	return result
}

func (s *CrashService) dispatchAgent(ctx context.Context, reading *models.CrashReading) *DispatchResult {
	h, err := s.locator.FindNearest(ctx, reading.GPS)
	if err != nil {
		return &DispatchResult{Error: err.Error()}
	}
	// ETA из расчета средней скорости 40 км/ч по городу
	eta := h.DistanceKm / 40.0 * 60.0
	return &DispatchResult{Hospital: h, ETAMinutes: eta}
}

func (s *CrashService) medicalAgent(incidentID string, reading *models.CrashReading) *MedicalResult {
	dashboard := medical.BuildDashboard(incidentID, reading)
	qr, err := medical.RenderQR(dashboard)
	if err != nil {
		return &MedicalResult{Dashboard: dashboard, Error: err.Error()}
	}
	return &MedicalResult{Dashboard: dashboard, QR: qr}
}

func (s *CrashService) preauthAgent(ctx context.Context, incidentID string, reading *models.CrashReading) *PreauthResult {
	userID := reading.UserID
	if userID == "" {
		userID = "user_001"
	}

	policy, err := s.policies.LookupPolicy(ctx, userID)
	if err != nil {
		return &PreauthResult{Error: err.Error()}
	}

	amount := s.cfg.DefaultPreauthAmount
	covered, err := s.policies.VerifyCoverage(ctx, amount, policy.PolicyNumber)
	if err != nil {
		return &PreauthResult{PolicyNumber: policy.PolicyNumber, Provider: policy.Provider, Error: err.Error()}
	}
	if !covered {
		return &PreauthResult{PolicyNumber: policy.PolicyNumber, Provider: policy.Provider, Amount: amount, Covered: false}
	}

	token, err := s.tokens.GeneratePreauthToken(ctx, policy.PolicyNumber, amount, "pending", incidentID)
	if err != nil {
		return &PreauthResult{PolicyNumber: policy.PolicyNumber, Provider: policy.Provider, Amount: amount, Covered: true, Error: err.Error()}
	}
	return &PreauthResult{
		PolicyNumber: policy.PolicyNumber,
		Provider:     policy.Provider,
		Amount:       amount,
		Covered:      true,
		Token:        token,
		HospitalID:   "pending",
	}
}

func (s *CrashService) refinePreauth(ctx context.Context, incidentID string, preauth *PreauthResult, h *models.Hospital) {
	token, err := s.tokens.GeneratePreauthToken(ctx, preauth.PolicyNumber, preauth.Amount, h.ID, incidentID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"service":     "CrashService",
			"incident_id": incidentID,
			"hospital_id": h.ID,
			"error":       err.Error(),
		}).Warn("Failed to refine pre-authorization for assigned hospital")
		return
	}
	preauth.Token = token
	preauth.HospitalID = h.ID
	s.log.WithFields(logrus.Fields{
		"service":     "CrashService",
		"incident_id": incidentID,
		"hospital_id": h.ID,
	}).Info("Pre-authorization refined for assigned hospital")
}

// transportLoop симулирует движение к больнице: позиция интерполируется
// от точки аварии к больнице, прибытие фиксируется по геозоне либо по
// истечении длительности поездки. Отмена, как и в consciousnessWindow,
// приходит от реестра через cancel-функцию хэндла и проверяется на каждом
// тике как ctx.Done(). Возвращает true при отмене.
func (s *CrashService) transportLoop(ctx context.Context, incident *models.Incident, reading *models.CrashReading, swarm *SwarmResult) bool {
	var target *models.GPSLocation
	if swarm.Dispatch != nil && swarm.Dispatch.Hospital != nil {
		gps := swarm.Dispatch.Hospital.GPS
		target = &gps
	}

	started := time.Now()
	ticker := time.NewTicker(s.cfg.TransportPollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return true
		case <-ticker.C:
			elapsed := time.Since(started)
			if elapsed >= s.cfg.TransportDuration {
				return false
			}
			if target == nil {
				continue
			}
			progress := float64(elapsed) / float64(s.cfg.TransportDuration)
			current := models.GPSLocation{
				Lat: reading.GPS.Lat + (target.Lat-reading.GPS.Lat)*progress,
				Lon: reading.GPS.Lon + (target.Lon-reading.GPS.Lon)*progress,
			}
			if hospital.WithinGeofence(current, *target, s.cfg.HospitalArrivalRadiusM) {
				s.log.WithFields(logrus.Fields{
					"service":     "CrashService",
					"incident_id": incident.ID(),
				}).Info("Vehicle entered hospital geofence")
				return false
			}
		}
	}
}

// notifyHospital передает приемному отделению панель пациента и токен
// предавторизации. Лучший из возможных: отказ каналов только логируется.
func (s *CrashService) notifyHospital(ctx context.Context, incident *models.Incident, swarm *SwarmResult) {
	var sb strings.Builder
	sb.WriteString("Incoming patient, incident " + incident.ID() + ".\n")
	if swarm.Medical != nil {
		d := swarm.Medical.Dashboard
		sb.WriteString(fmt.Sprintf("Blood type: %s. Allergies: %s.\n", d.BloodType, strings.Join(d.Allergies, ", ")))
	}
	if swarm.Preauth != nil && swarm.Preauth.Token != "" {
		sb.WriteString("Payment pre-authorization: " + swarm.Preauth.Token + ".\n")
	}
	body := sb.String()

	if err := s.notifier.SendEmail(ctx, s.cfg.HospitalEmail, "Incoming trauma patient", body); err != nil {
		s.log.WithFields(logrus.Fields{
			"service":     "CrashService",
			"incident_id": incident.ID(),
			"error":       err.Error(),
		}).Warn("Hospital email notification failed")
	}
	if _, err := s.notifier.SendSMS(ctx, s.cfg.HospitalPhone, body); err != nil {
		s.log.WithFields(logrus.Fields{
			"service":     "CrashService",
			"incident_id": incident.ID(),
			"error":       err.Error(),
		}).Warn("Hospital SMS notification failed")
	}
}

// publish отправляет событие жизненного цикла в очередь вебхуков.
// Используется отдельный контекст: публикация должна пройти и после
// отмены инцидента.
func (s *CrashService) publish(incident *models.Incident, eventType, status string, details map[string]any) {
	if s.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	event := webhook.IncidentEvent{
		IncidentID: incident.ID(),
		Event:      eventType,
		State:      incident.State(),
		Status:     status,
		Timestamp:  time.Now().UTC(),
		Details:    details,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.WithFields(logrus.Fields{
			"service":     "CrashService",
			"incident_id": incident.ID(),
			"event":       eventType,
			"error":       err.Error(),
		}).Warn("Failed to publish incident event")
	}
}

// CancelIncident запрашивает отмену активного инцидента
func (s *CrashService) CancelIncident(incidentID string) bool {
	return s.registry.RequestCancel(incidentID)
}

// CancelAll запрашивает отмену всех активных инцидентов
func (s *CrashService) CancelAll() int {
	return s.registry.CancelAll()
}

// ActiveIncidents возвращает идентификаторы активных инцидентов
func (s *CrashService) ActiveIncidents() []string {
	return s.registry.ActiveIncidents()
}

// IncidentCount возвращает общее число инцидентов в хранилище
func (s *CrashService) IncidentCount() int {
	return s.store.Count()
}

// IncidentStatus возвращает снимок состояния инцидента
func (s *CrashService) IncidentStatus(incidentID string) (*models.IncidentStatus, error) {
	incident, err := s.store.GetByID(incidentID)
	if err != nil {
		return nil, err
	}
	status := incident.Status()
	return &status, nil
}

// IncidentLogs возвращает последние записи журнала переходов инцидента
func (s *CrashService) IncidentLogs(incidentID string, limit int) ([]models.TransitionLogEntry, error) {
	incident, err := s.store.GetByID(incidentID)
	if err != nil {
		return nil, err
	}
	return incident.RecentLogs(limit), nil
}
