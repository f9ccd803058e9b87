package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID      string // ID из определений врагов
	Laps       int    // Сколько раз враг уже прошёл маршрут целиком
	ReachedEnd bool   // Достиг ли враг конца пути
}
