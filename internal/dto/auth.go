package dto

type LoginRequestDTO struct {
	Username    string `json:"username" example:"ALICE"`
	IsPerformer bool   `json:"is_performer" example:"false"`
	Passphrase  string `json:"passphrase,omitempty"`
}

type LoginResponseDTO struct {
	Status     string  `json:"status" example:"success"`
	Message    string  `json:"message" example:"Welcome to the market, ALICE"`
	Token      string  `json:"token"`
	User       UserDTO `json:"user"`
	Created    bool    `json:"created" example:"true"`
	Privileged bool    `json:"privileged" example:"false"`
}

type SessionStatusResponseDTO struct {
	Status           string `json:"status" example:"success"`
	Username         string `json:"username" example:"ALICE"`
	Privileged       bool   `json:"privileged" example:"false"`
	Expires          bool   `json:"expires" example:"true"`
	RemainingSeconds int64  `json:"remaining_seconds" example:"287"`
}

type MessageResponseDTO struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"Logged out"`
}
