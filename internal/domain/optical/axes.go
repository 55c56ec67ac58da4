// Package optical contiene la lógica pura de la grilla de stock de lentes:
// ejes SPH/CYL, claves de celda, índice por celda, rangos masivos, filtros y
// clasificación de nivel de stock. Sin dependencias de persistencia ni HTTP.
package optical

import "github.com/shopspring/decimal"

// Dimensiones fijas de la grilla.
const (
	SphereSteps   = 33 // -6.00 .. +10.00, paso 0.50
	CylinderSteps = 17 // 0.00 .. 4.00, paso 0.25
)

var (
	sphereStart   = decimal.New(-600, -2)
	sphereStep    = decimal.New(50, -2)
	cylinderStart = decimal.Zero
	cylinderStep  = decimal.New(25, -2)
)

// SphereAxis devuelve los valores del eje SPH en orden ascendente.
// Progresión aritmética: -6.00, -5.50, ..., +10.00. Siempre una copia nueva.
func SphereAxis() []decimal.Decimal {
	return axis(sphereStart, sphereStep, SphereSteps)
}

// CylinderAxis devuelve los valores del eje CYL en orden ascendente.
// Progresión aritmética: 0.00, 0.25, ..., 4.00. Siempre una copia nueva.
func CylinderAxis() []decimal.Decimal {
	return axis(cylinderStart, cylinderStep, CylinderSteps)
}

func axis(start, step decimal.Decimal, count int) []decimal.Decimal {
	values := make([]decimal.Decimal, 0, count)
	v := start
	for i := 0; i < count; i++ {
		values = append(values, v)
		v = v.Add(step)
	}
	return values
}
