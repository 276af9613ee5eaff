package user

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email" example:"agent@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
	Name     string `json:"name" binding:"required,min=2" example:"John Doe"`
	Role     Role   `json:"role" binding:"required,oneof=agent client" example:"agent"`
	Phone    string `json:"phone" example:"1234567890"`

	// Required for agents, rejected for everyone else.
	LicenseNumber string `json:"licenseNumber" binding:"required_if=Role agent,excluded_unless=Role agent" example:"TX-123456"`
	Brokerage     string `json:"brokerage" binding:"required_if=Role agent,excluded_unless=Role agent" example:"BS Realty LLC"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email" example:"agent@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
	Role     Role   `json:"role" binding:"required,oneof=agent client admin" example:"agent"`
}
