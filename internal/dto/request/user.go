package request

type UserRequest struct {
	Username  string `json:"username" validate:"required,max=150,username"`
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name" validate:"required,max=150"`
	Email     string `json:"email" validate:"required,email,max=150"`
	Phone     string `json:"phone" validate:"required,max=150"`
	Role      string `json:"role" validate:"omitempty,oneof=admin rider driver"`
	Password  string `json:"password" validate:"required,max=128"`
}

// UserPatchRequest carries only the fields the client sent.
type UserPatchRequest struct {
	Username  *string `json:"username" validate:"omitnil,min=1,max=150,username"`
	FirstName *string `json:"first_name" validate:"omitnil,min=1,max=150"`
	LastName  *string `json:"last_name" validate:"omitnil,min=1,max=150"`
	Email     *string `json:"email" validate:"omitnil,email,max=150"`
	Phone     *string `json:"phone" validate:"omitnil,min=1,max=150"`
	Role      *string `json:"role" validate:"omitnil,oneof=admin rider driver"`
	Password  *string `json:"password" validate:"omitnil,min=1,max=128"`
}

// AsPatch turns a full replacement into a patch. An omitted role keeps the
// stored one.
func (r UserRequest) AsPatch() UserPatchRequest {
	patch := UserPatchRequest{
		Username:  &r.Username,
		FirstName: &r.FirstName,
		LastName:  &r.LastName,
		Email:     &r.Email,
		Phone:     &r.Phone,
		Password:  &r.Password,
	}
	if r.Role != "" {
		patch.Role = &r.Role
	}
	return patch
}
