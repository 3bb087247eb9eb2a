package domain

import "fmt"

// ValidationError indica que el registro de entrada no sirve para analizar (ausente o corto).
// Es el unico error que aborta el reporte completo.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Reason
}

// SectionError describe la falla de una seccion puntual del reporte.
// El orquestador lo absorbe y usa el valor por defecto de la seccion.
type SectionError struct {
	Section string
	Err     error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("section %s: %v", e.Section, e.Err)
}

func (e *SectionError) Unwrap() error {
	return e.Err
}
