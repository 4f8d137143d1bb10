package entity

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleRider  UserRole = "rider"
	RoleDriver UserRole = "driver"
)

type User struct {
	Base
	Username     string   `db:"username"`
	PasswordHash string   `db:"password"`
	FirstName    string   `db:"first_name"`
	LastName     string   `db:"last_name"`
	Email        string   `db:"email"`
	Phone        string   `db:"phone"`
	Role         UserRole `db:"role"`
}
