package web

import (
	"github.com/gofiber/fiber/v2"
)

type page struct {
	Path        string
	Title       string
	Description string
	Form        bool

	handle func(s *server, c *fiber.Ctx) error
}

var pages = []page{
	{
		Path:        "/weekday",
		Title:       "Определение дня недели",
		Description: "Введите дату и узнайте, на какой день недели она приходится.",
		Form:        true,
		handle:      (*server).handleWeekday,
	},
	{
		Path:        "/pipeline",
		Title:       "Конвейер функций",
		Description: "Строка проходит через trim, mb_strtolower и ucfirst.",
		Form:        true,
		handle:      (*server).handlePipeline,
	},
	{
		Path:        "/split",
		Title:       "Преобразование строки в массив",
		Description: "Числа через запятую превращаются в массив.",
		Form:        true,
		handle:      (*server).handleSplit,
	},
	{
		Path:        "/threshold",
		Title:       "Ключи выше порога",
		Description: "Поиск ключей элементов массива со значениями больше порога.",
		Form:        true,
		handle:      (*server).handleThreshold,
	},
	{
		Path:        "/stack",
		Title:       "Стек операций",
		Description: "LIFO-стек операций с журналом, хранится в сессии.",
		Form:        true,
		handle:      (*server).handleStack,
	},
	{
		Path:        "/duplicates",
		Title:       "Анализ массива с дубликатами",
		Description: "Поиск повторяющихся значений и статистика массива.",
		Form:        true,
		handle:      (*server).handleDuplicates,
	},
	{
		Path:        "/shop",
		Title:       "Интернет-магазин",
		Description: "Каталог, скидки и корзина покупателя.",
		Form:        true,
		handle:      (*server).handleShop,
	},
	{
		Path:        "/gallery",
		Title:       "Галерея искусств",
		Description: "Оценка картин, скульптур и цифрового искусства.",
		handle:      (*server).handleGallery,
	},
	{
		Path:        "/assets",
		Title:       "Финансовые инструменты",
		Description: "Акции, облигации и криптовалюта с моделированием роста цены.",
		Form:        true,
		handle:      (*server).handleAssets,
	},
}

type indexPage struct {
	Pages []page
}

func (s *server) handleIndex(c *fiber.Ctx) error {
	return c.Render("index", indexPage{Pages: pages})
}
