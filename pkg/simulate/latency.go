// Package simulate aporta la latencia de red simulada del modo demo: la API
// mock no tiene red real, pero cada operación resuelve tras una espera fija
// para que la UI ejercite sus estados de carga.
package simulate

import "time"

// Latency es la espera simulada por operación. Cero la desactiva (tests).
type Latency time.Duration

// Wait bloquea una vez por operación. A propósito no acepta contexto: una
// llamada abandonada por el caller igual aplica su efecto sobre el store.
func (l Latency) Wait() {
	if l > 0 {
		time.Sleep(time.Duration(l))
	}
}
