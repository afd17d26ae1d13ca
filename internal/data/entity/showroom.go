package entity

type Showroom struct {
	Base
	Name     string `db:"name"`
	Capacity int    `db:"capacity"`
}
