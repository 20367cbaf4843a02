package dtos

// Form payloads bound from HTML form submissions.

type RegisterForm struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
	Role     string `form:"role" binding:"required"`
}

type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type JobForm struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	Salary      string `form:"salary" binding:"required"`
	Location    string `form:"location" binding:"required"`
	Company     string `form:"company" binding:"required"`
}
