package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFechaEnPasado(t *testing.T) {
	hoy := time.Date(2026, 9, 1, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		nombre string
		fecha  time.Time
		pasada bool
	}{
		{"ayer", time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC), true},
		{"hoy a la madrugada", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), false},
		{"hoy más tarde", time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC), false},
		{"mañana", time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), false},
		{"el año pasado", time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), true},
	}
	for _, tt := range tests {
		t.Run(tt.nombre, func(t *testing.T) {
			assert.Equal(t, tt.pasada, FechaEnPasado(tt.fecha, hoy))
		})
	}
}

func TestEmailValido(t *testing.T) {
	assert.True(t, EmailValido("ana@example.com"))
	assert.True(t, EmailValido("juan.perez+cumple@uner.edu.ar"))
	assert.False(t, EmailValido("sin-arroba"))
	assert.False(t, EmailValido("dos@@example.com"))
	assert.False(t, EmailValido("con espacios@example.com"))
	assert.False(t, EmailValido("sindominio@"))
}

func TestCelularValido(t *testing.T) {
	assert.True(t, CelularValido("+54 343 4975585"))
	assert.True(t, CelularValido("(0343) 497-5585"))
	assert.False(t, CelularValido("123"))
	assert.False(t, CelularValido("no es un número"))
}

func TestTipoUsuarioValido(t *testing.T) {
	assert.True(t, TipoUsuarioValido(TipoUsuarioMinimo))
	assert.True(t, TipoUsuarioValido(TipoUsuarioMaximo))
	assert.False(t, TipoUsuarioValido(-1))
	assert.False(t, TipoUsuarioValido(TipoUsuarioMaximo+1))
}

func TestImporteServicioValido(t *testing.T) {
	assert.True(t, ImporteServicioValido(0))
	assert.True(t, ImporteServicioValido(8000))
	assert.True(t, ImporteServicioValido(ImporteMaximoServicio))
	assert.False(t, ImporteServicioValido(-0.01))
	assert.False(t, ImporteServicioValido(ImporteMaximoServicio+1))
}

func TestImporteCatalogoValido(t *testing.T) {
	assert.False(t, ImporteCatalogoValido(0))
	assert.True(t, ImporteCatalogoValido(ImporteMinimo))
	assert.True(t, ImporteCatalogoValido(8000))
	assert.False(t, ImporteCatalogoValido(ImporteMaximoServicio+1))
}

func TestReservaUpdateCambiaTerna(t *testing.T) {
	tematica := "Espacio"
	assert.False(t, ReservaUpdate{Tematica: &tematica}.CambiaTerna())

	salon := int64(1)
	assert.True(t, ReservaUpdate{SalonID: &salon}.CambiaTerna())

	fecha := time.Now()
	assert.True(t, ReservaUpdate{FechaReserva: &fecha}.CambiaTerna())

	turno := int64(2)
	assert.True(t, ReservaUpdate{TurnoID: &turno}.CambiaTerna())
}

func TestUpdatesVacios(t *testing.T) {
	assert.True(t, ReservaUpdate{}.Vacio())
	assert.True(t, SalonUpdate{}.Vacio())
	assert.True(t, TurnoUpdate{}.Vacio())
	assert.True(t, ServicioUpdate{}.Vacio())
	assert.True(t, UsuarioUpdate{}.Vacio())

	importe := 100.0
	assert.False(t, SalonUpdate{Importe: &importe}.Vacio())
	assert.False(t, ServicioUpdate{Importe: &importe}.Vacio())
}
