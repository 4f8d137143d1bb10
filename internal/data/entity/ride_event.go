package entity

type RideEvent struct {
	BaseSimple
	RideID      int64  `db:"id_ride"`
	Description string `db:"description"`
}
