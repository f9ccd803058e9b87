package component

import "go-hex-defense/pkg/hexmap"

// Building is a placed structure that fires along its facing.
type Building struct {
	DefID  string     // ID из определений построек
	Hex    hexmap.Hex // Гекс, на котором стоит постройка
	Facing float64    // Направление стрельбы в радианах
	Range  int        // Радиус наведения в гексах, 0 — без наведения
}
