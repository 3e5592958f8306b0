package dto

import "github.com/ChadMaddela/Course-Booking-Backend/internal/feature/users/domain/entity"

// UserItem is the JSON shape of a user returned by profile endpoints.
// The password field is part of the contract but is always blanked.
type UserItem struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	MobileNo  string `json:"mobileNo"`
	Password  string `json:"password"`
	IsAdmin   bool   `json:"isAdmin"`
}

// NewUserItem converts a user entity into its response shape with the
// password blanked.
func NewUserItem(u *entity.User) UserItem {
	return UserItem{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		MobileNo:  u.MobileNo,
		Password:  "",
		IsAdmin:   u.IsAdmin,
	}
}
