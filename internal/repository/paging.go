package repository

func pageLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 10
	}
	return limit
}

func pageOffset(page int, limit int) int {
	if page <= 1 {
		return 0
	}
	return (page - 1) * pageLimit(limit)
}

func sortColumn(requested string, allowed map[string]bool) string {
	if allowed[requested] {
		return requested
	}
	return "created_at"
}
