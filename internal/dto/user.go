package dto

// AddStudentRequest is the payload for POST /api/add_user.
type AddStudentRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email"`
	Class    string `json:"class"`
}

// AddFacultyRequest is the payload for POST /api/add_faculty.
type AddFacultyRequest struct {
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// ChangePasswordRequest is the payload for POST /api/change_password.
// Any authenticated role may call it.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// LoginForm carries the landing-page login form fields.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
	Role     string `form:"role" validate:"required"`
}
