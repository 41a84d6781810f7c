package listing

// Ellipsis marks a gap in a PageWindow.
const Ellipsis = 0

const maxPagesToShow = 5

// PageWindow lists the page numbers a pagination control shows around current.
// The first and last pages are always present; gaps are marked with Ellipsis.
//
//	PageWindow(1, 10)  -> 1 2 3 4 … 10
//	PageWindow(5, 10)  -> 1 … 4 5 6 … 10
//	PageWindow(10, 10) -> 1 … 7 8 9 10
func PageWindow(current, totalPages int) []int {
	if totalPages < 1 {
		return []int{}
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	pages := make([]int, 0, maxPagesToShow+2)
	if totalPages <= maxPagesToShow {
		for i := 1; i <= totalPages; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	pages = append(pages, 1)

	start := max(2, current-1)
	end := min(totalPages-1, current+1)
	if current <= 2 {
		end = 4
	} else if current >= totalPages-1 {
		start = totalPages - 3
	}

	if start > 2 {
		pages = append(pages, Ellipsis)
	}
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	if end < totalPages-1 {
		pages = append(pages, Ellipsis)
	}

	return append(pages, totalPages)
}
