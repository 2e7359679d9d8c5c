package wager

import "time"

// truncateDay normaliza o instante para a meia-noite UTC do dia civil.
// Toda aritmética de "dias desde o início" usa dias de calendário truncados,
// nunca subtração bruta de milissegundos (evita deriva de fuso/DST).
func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween retorna o número de dias civis entre a e b (b - a).
func daysBetween(a, b time.Time) int {
	return int(truncateDay(b).Sub(truncateDay(a)).Hours() / 24)
}
