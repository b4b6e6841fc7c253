package parsers

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Артефакты локали, которые мешают числовому парсингу извлечённого текста.
var extraSymbolsReplacer = strings.NewReplacer(
	" ", "",
	"₽", "",
	"%", "",
	"\r", "",
	"\t", "",
)

// ClearExtraSymbols приводит извлечённый текст к виду, пригодному для
// числового парсинга: NFKD-нормализация (неразрывные и узкие пробелы
// становятся обычными), удаление пробелов, знака рубля, процента, CR и
// табуляции, обрезка краёв, запятая → точка, юникодный минус → дефис.
// Операция идемпотентна и никогда не возвращает ошибку.
func ClearExtraSymbols(text string) string {
	text = norm.NFKD.String(text)
	text = extraSymbolsReplacer.Replace(text)
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, ",", ".")
	return strings.ReplaceAll(text, "−", "-")
}
