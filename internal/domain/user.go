package domain

type User struct {
	ID    int64
	Name  string
	Email string
}

// UserPatch carries the fields of a partial update; nil means unchanged.
type UserPatch struct {
	Name  *string
	Email *string
}
