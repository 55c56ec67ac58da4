// Package scheduler agrupa las tareas periódicas de la consola: el digest de
// stock bajo y el despacho de recordatorios de citas.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mazvaris/optiapp/internal/application/lens"
	"github.com/mazvaris/optiapp/internal/application/usecase"
	"github.com/mazvaris/optiapp/pkg/logger"
)

// Ventana de recordatorios: citas dentro de las próximas 24 horas.
const reminderWindow = 24 * time.Hour

// Scheduler administra las tareas programadas.
type Scheduler struct {
	cron          *cron.Cron
	gridUC        *lens.GridUseCase
	appointmentUC *usecase.AppointmentUseCase
	log           *logger.Logger
}

// NewScheduler construye el scheduler.
func NewScheduler(gridUC *lens.GridUseCase, appointmentUC *usecase.AppointmentUseCase, log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:          cron.New(),
		gridUC:        gridUC,
		appointmentUC: appointmentUC,
		log:           log,
	}
}

// Start registra las tareas y arranca el cron.
func (s *Scheduler) Start() {
	s.log.Info().Msg("iniciando scheduler")

	// Digest de stock bajo todos los días a las 07:00.
	if _, err := s.cron.AddFunc("0 7 * * *", s.lowStockDigest); err != nil {
		s.log.Error().Err(err).Msg("no se pudo programar el digest de stock bajo")
	}

	// Recordatorios de citas cada hora en punto.
	if _, err := s.cron.AddFunc("0 * * * *", s.sendAppointmentReminders); err != nil {
		s.log.Error().Err(err).Msg("no se pudieron programar los recordatorios de citas")
	}

	s.cron.Start()
}

// Stop detiene el cron.
func (s *Scheduler) Stop() {
	s.log.Info().Msg("deteniendo scheduler")
	s.cron.Stop()
}

func (s *Scheduler) lowStockDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cells, err := s.gridUC.LowStockCells(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("digest de stock bajo fallido")
		return
	}
	if len(cells) == 0 {
		s.log.Info().Msg("digest de stock: sin celdas bajas ni agotadas")
		return
	}
	ev := s.log.Warn().Int("cells", len(cells))
	for key, cell := range cells {
		ev = ev.Str(key, cell.Level)
	}
	ev.Msg("digest de stock: celdas bajas o agotadas")
}

func (s *Scheduler) sendAppointmentReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	sent, err := s.appointmentUC.SendDueReminders(ctx, reminderWindow)
	if err != nil {
		s.log.Error().Err(err).Msg("despacho de recordatorios fallido")
		return
	}
	if sent > 0 {
		s.log.Info().Int("sent", sent).Msg("recordatorios de citas enviados")
	}
}
