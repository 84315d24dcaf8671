package domain

import (
	"regexp"
	"time"
)

// Usuario una cuenta del sistema. NombreUsuario es un email único;
// Contrasenia guarda el hash bcrypt, nunca el texto plano.
type Usuario struct {
	ID            int64
	Nombre        string
	Apellido      string
	NombreUsuario string
	Contrasenia   string
	TipoUsuario   int
	Celular       *string
	Foto          *string
	Activo        bool
	Creado        time.Time
	Modificado    time.Time
}

// UsuarioUpdate campos opcionales para la actualización parcial de un usuario.
// Contrasenia, si viene, llega en texto plano y el servicio la hashea.
type UsuarioUpdate struct {
	Nombre      *string
	Apellido    *string
	Contrasenia *string
	TipoUsuario *int
	Celular     *string
	Foto        *string
}

// Vacio indica que no se envió ningún campo para actualizar.
func (u UsuarioUpdate) Vacio() bool {
	return u.Nombre == nil && u.Apellido == nil && u.Contrasenia == nil &&
		u.TipoUsuario == nil && u.Celular == nil && u.Foto == nil
}

var (
	emailRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	celularRegex = regexp.MustCompile(`^[0-9+\-\s()]{6,20}$`)
)

// EmailValido valida la forma del nombre de usuario (debe ser un email).
func EmailValido(s string) bool {
	return emailRegex.MatchString(s)
}

// CelularValido valida la forma del número de celular.
func CelularValido(s string) bool {
	return celularRegex.MatchString(s)
}

// TipoUsuarioValido chequea el rango permitido del rol.
func TipoUsuarioValido(t int) bool {
	return t >= TipoUsuarioMinimo && t <= TipoUsuarioMaximo
}
