package lens

import "errors"

// ErrNoActionableCells indica que el lote no contiene ninguna celda con cantidad
// positiva: condición de no-op, se reporta al usuario en vez de procesar nada.
var ErrNoActionableCells = errors.New("el lote no contiene celdas con cantidad positiva")
