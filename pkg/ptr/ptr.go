// Package ptr tiene helpers para trabajar con punteros en structs de
// actualización parcial.
package ptr

// Ptr devuelve un puntero a v.
func Ptr[T any](v T) *T {
	return &v
}
