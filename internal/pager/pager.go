package pager

// DefaultSize — количество записей на странице по умолчанию.
const DefaultSize = 10

// Page возвращает страницу number (нумерация с 1) размером size.
// Если number == nil, возвращаются все элементы.
// Страница за пределами списка показывает первую страницу, а не пустой результат.
func Page[T any](items []T, number *int, size int) []T {
	if number == nil {
		return items
	}
	if size <= 0 {
		size = DefaultSize
	}

	// Номер сравнивается с числом страниц до умножения: произведение может переполнить int.
	start := 0
	if n := max(*number-1, 0); n < (len(items)+size-1)/size {
		start = n * size
	}
	end := min(len(items), start+size)
	return items[start:end]
}
