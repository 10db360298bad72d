package models

// Account roles assigned at registration time.
const (
	RoleCitizen = "Citizen"
	RoleOfficer = "Law Enforcement Officer"
)

// Account represents an account record as stored by the hosted platform.
// The platform owns the record and assigns the identifier; this process
// only creates the record and flips its verification flag.
type Account struct {
	ID                  string `json:"id,omitempty"`
	FullName            string `json:"full_name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	PasswordHash        string `json:"password_hash"`
	Role                string `json:"role"`
	Anonymous           bool   `json:"is_anonymous"`
	OfficerVerification *bool  `json:"officer_verification,omitempty"`
	Verified            bool   `json:"verification_status"`
}

// RegisterRequest is the payload for POST /register.
// Anonymous and IsOfficer are pointers so a missing flag can be told apart
// from an explicit false.
type RegisterRequest struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	Anonymous *bool  `json:"anonymous"`
	IsOfficer *bool  `json:"isOfficer"`
}

// SendOTPRequest is the payload for POST /send-otp
type SendOTPRequest struct {
	Phone string `json:"phone"`
}

// VerifyOTPRequest is the payload for POST /verify-otp
type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	Token string `json:"token"`
}
