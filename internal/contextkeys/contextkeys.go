package contextkeys

type key string

// Ключи значений, которые middleware кладут в контекст запроса.
const (
	Login key = "login"
	ID    key = "id"
)
