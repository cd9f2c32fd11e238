// Package fuzztests houses Go fuzz harnesses for the formatting pipeline
// (source -> lexer -> parser -> patch -> render). Они ищут паники, зависания
// и нестабильный вывод на произвольных входах.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
