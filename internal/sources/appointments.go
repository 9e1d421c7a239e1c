package sources

import (
	"context"
	"fmt"

	"github.com/casamatriz/mirror-middleware/internal/db/pgtypes"
	"github.com/casamatriz/mirror-middleware/internal/db/sqlc"
)

//go:generate mockgen -destination=mocks/mock_appointments.go -package=mocks -source=appointments.go AppointmentSource

// AppointmentSource reads citas from the secondary store
type AppointmentSource interface {
	// FetchAppointments returns every cita, in no particular order
	FetchAppointments(ctx context.Context) ([]Appointment, error)
	// ListAppointmentsDesc returns every cita, newest id first
	ListAppointmentsDesc(ctx context.Context) ([]Appointment, error)
}

// DBAppointmentSource is the AppointmentSource backed by the secondary pool
type DBAppointmentSource struct {
	queries *sqlc.Queries
}

var _ AppointmentSource = (*DBAppointmentSource)(nil)

// NewDBAppointmentSource creates a source reading through db
func NewDBAppointmentSource(db sqlc.DBTX) (*DBAppointmentSource, error) {
	if db == nil {
		return nil, fmt.Errorf("secondary database is required")
	}
	return &DBAppointmentSource{queries: sqlc.New(db)}, nil
}

// FetchAppointments implements AppointmentSource
func (s *DBAppointmentSource) FetchAppointments(ctx context.Context) ([]Appointment, error) {
	rows, err := s.queries.ListCitas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read citas: %w", err)
	}

	out := make([]Appointment, 0, len(rows))
	for _, r := range rows {
		out = append(out, Appointment{
			ID:          int64(r.ID),
			Patient:     r.Paciente,
			Description: pgtypes.PtrFromText(r.Descripcion),
			Date:        pgtypes.PtrFromTimestamp(r.Fecha),
		})
	}
	return out, nil
}

// ListAppointmentsDesc implements AppointmentSource
func (s *DBAppointmentSource) ListAppointmentsDesc(ctx context.Context) ([]Appointment, error) {
	rows, err := s.queries.ListCitasDesc(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read citas: %w", err)
	}

	out := make([]Appointment, 0, len(rows))
	for _, r := range rows {
		out = append(out, Appointment{
			ID:          int64(r.ID),
			Patient:     r.Paciente,
			Description: pgtypes.PtrFromText(r.Descripcion),
			Date:        pgtypes.PtrFromTimestamp(r.Fecha),
		})
	}
	return out, nil
}
