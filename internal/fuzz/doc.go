// Package fuzztests houses Go fuzz harnesses that exercise the front end
// (source -> lexer -> parser). Its goal is to smoke test robustness and guard
// against panics, hangs and broken tree invariants on arbitrary inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через лексер/парсер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
