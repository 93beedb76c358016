package view

// Тексты ответов на админские команды.
const (
	StartMessage = `👋 <b>Sale watcher</b>

Бот следит за витриной и присылает алерт, когда магазин уходит в распродажу.

Команды:
/status — состояние последнего цикла
/check — внеочередная проверка витрины`

	StatusTemplate = `📊 <b>Статус</b>

🛍 <b>Распродажа:</b> %s
🔎 <b>Последний цикл:</b> %s
🧾 <b>Сигнатура топа:</b> %s
🕒 <b>Запущен:</b> %s`

	CheckStarted   = "🔄 Проверяю витрину..."
	CheckDone      = "✅ Проверка завершена"
	CheckFailed    = "❌ Проверка не удалась: %v"
	StatusNoCycles = "ещё не было"
)
