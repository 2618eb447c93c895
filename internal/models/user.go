package models

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStaff    Role = "staff"
	RoleUser     Role = "user"
	RoleResident Role = "resident"
)

type UserProfile struct {
	Name          string  `json:"name"`
	ContactNumber string  `json:"contact_number"`
	Address       string  `json:"address"`
	CivilStatus   string  `json:"civil_status"`
	Birthdate     string  `json:"birthdate"`
	Role          Role    `json:"role"`
	Image         *string `json:"image,omitempty"`
}

type User struct {
	ID       ID           `json:"id"`
	Username string       `json:"username"`
	Email    string       `json:"email"`
	Profile  *UserProfile `json:"profile,omitempty"`
}

// Role возвращает роль из профиля или пустую строку
func (u *User) Role() Role {
	if u == nil || u.Profile == nil {
		return ""
	}
	return u.Profile.Role
}

// UserUpdateInput - частичное обновление пользователя администратором
type UserUpdateInput struct {
	Email         *string `json:"email,omitempty"`
	Name          *string `json:"name,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty"`
	Address       *string `json:"address,omitempty"`
	CivilStatus   *string `json:"civil_status,omitempty"`
	Role          *Role   `json:"role,omitempty"`
	Image         *Upload `json:"-"`
}

// LoginInput - учетные данные для /api/token/
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse - ответ /api/token/. Токены могут прийти только в cookie.
type LoginResponse struct {
	Access  string `json:"access,omitempty"`
	Refresh string `json:"refresh,omitempty"`
	Message string `json:"message,omitempty"`
	User    *User  `json:"user,omitempty"`
}

type RegisterInput struct {
	Name            string `json:"name"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	ContactNumber   string `json:"contact_number"`
	Address         string `json:"address"`
	CivilStatus     string `json:"civil_status"`
	Birthdate       string `json:"birthdate"`
}
