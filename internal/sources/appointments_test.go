package sources_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casamatriz/mirror-middleware/database"
	"github.com/casamatriz/mirror-middleware/internal/sources"
)

func TestNewDBAppointmentSource(t *testing.T) {
	t.Parallel()

	_, err := sources.NewDBAppointmentSource(nil)
	require.Error(t, err)
}

func TestDBAppointmentSource(t *testing.T) {
	t.Parallel()

	pool, cleanupFunc := database.SetupSecondaryTestDB(t)
	t.Cleanup(cleanupFunc)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `INSERT INTO citas (paciente, descripcion, fecha) VALUES
		('Ana', 'control', '2026-05-04 09:30:00'),
		('Luis', NULL, NULL)`)
	require.NoError(t, err)

	s, err := sources.NewDBAppointmentSource(pool)
	require.NoError(t, err)

	all, err := s.FetchAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	desc, err := s.ListAppointmentsDesc(ctx)
	require.NoError(t, err)
	require.Len(t, desc, 2)

	assert.Equal(t, "Luis", desc[0].Patient)
	assert.Nil(t, desc[0].Description)
	assert.Nil(t, desc[0].Date)

	assert.Equal(t, "Ana", desc[1].Patient)
	require.NotNil(t, desc[1].Description)
	assert.Equal(t, "control", *desc[1].Description)
	require.NotNil(t, desc[1].Date)
	assert.Equal(t, 9, desc[1].Date.Hour())
}

func TestDBAppointmentSource_MissingTable(t *testing.T) {
	t.Parallel()

	pool, _, cleanupFunc := database.SetupTestDBContainer(t, context.Background())
	t.Cleanup(cleanupFunc)

	s, err := sources.NewDBAppointmentSource(pool)
	require.NoError(t, err)

	_, err = s.FetchAppointments(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read citas")
}
